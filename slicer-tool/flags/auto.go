package flags

import (
	"os"
	"path/filepath"

	"github.com/freakmaxi/kertish-slicer/basics/common"
	"github.com/freakmaxi/kertish-slicer/basics/errors"
	"github.com/freakmaxi/kertish-slicer/slicer"
	"github.com/freakmaxi/kertish-slicer/slicer/part"
	"go.uber.org/zap"
)

const autoTargetName = "rebuilt_archive.zip"

type autoCommand struct {
	env  *environment
	args []string

	folder string
}

// NewAuto creates the execution used when the tool runs without a command in a folder
// holding the parts
func NewAuto(env *environment, args []string) Execution {
	return &autoCommand{
		env:  env,
		args: args,
	}
}

func (a *autoCommand) Parse() error {
	if len(a.args) > 0 {
		return errors.ErrShowUsage
	}

	folder := a.folder
	if len(folder) == 0 {
		var err error
		folder, err = os.Getwd()
		if err != nil {
			return err
		}
	}

	found := false
	errStop := errors.ErrNoPartsFound
	if err := part.Traverse(folder, func(string) error {
		found = true
		return errStop
	}); err != nil && err != errStop {
		return err
	}
	if !found {
		return errors.ErrShowUsage
	}

	a.folder = folder
	return nil
}

func (a *autoCommand) PrintUsage() {
}

func (a *autoCommand) Name() string {
	return "auto"
}

func (a *autoCommand) Execute() error {
	target := filepath.Join(a.folder, autoTargetName)

	written, err := slicer.NewRebuilder(a.env.workers, a.env.logger).Rebuild(a.folder, target)
	if err != nil {
		return err
	}
	a.env.output.Printf("Auto rebuilt archive: %s | %s\n", target, common.SizeToString(written))

	if _, err := slicer.NewCleaner(a.env.logger).RemoveParts(a.folder); err != nil {
		return err
	}

	if a.env.remover == nil {
		return nil
	}
	if err := a.env.remover.RemoveSelf(); err != nil {
		a.env.logger.Warn("Self removal is failed", zap.Error(err))
		return err
	}
	return nil
}
