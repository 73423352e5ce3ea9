package flags

import (
	"fmt"
	"strings"

	"github.com/freakmaxi/kertish-slicer/basics/common"
	"github.com/freakmaxi/kertish-slicer/basics/errors"
	toolCommon "github.com/freakmaxi/kertish-slicer/slicer-tool/common"
	"github.com/freakmaxi/kertish-slicer/slicer"
)

type rebuildCommand struct {
	env  *environment
	args []string

	clean  bool
	source string
	target string
}

func NewRebuild(env *environment, args []string) Execution {
	return &rebuildCommand{
		env:  env,
		args: args,
	}
}

func (r *rebuildCommand) Parse() error {
	for len(r.args) > 0 {
		arg := r.args[0]
		switch arg {
		case "-c":
			r.args = r.args[1:]
			r.clean = true
			continue
		case "-h":
			return errors.ErrShowUsage
		default:
			if strings.Index(arg, "-") == 0 {
				return fmt.Errorf("unsupported argument for rebuild command")
			}
		}
		break
	}

	if len(r.args) != 2 {
		return fmt.Errorf("rebuild command needs parts folder and target file parameters")
	}

	r.source = r.args[0]
	r.target = r.args[1]

	return nil
}

func (r *rebuildCommand) PrintUsage() {
	r.env.output.Println("  rebuild     Rebuild the file from the parts.")
	r.env.output.Println("              Ex: rebuild [arguments] [parts folder] [target file]")
	r.env.output.Println("")
	r.env.output.Println("arguments:")
	r.env.output.Println("  -c          removes the parts after successful rebuild")
	r.env.output.Println("")
}

func (r *rebuildCommand) Name() string {
	return "rebuild"
}

func (r *rebuildCommand) Execute() error {
	anim := toolCommon.NewAnimation(r.env.output, "rebuilding...")
	anim.Start()

	written, err := slicer.NewRebuilder(r.env.workers, r.env.logger).Rebuild(r.source, r.target)
	if err != nil {
		anim.Cancel()
		return err
	}
	anim.Stop()

	r.env.output.Printf("Rebuilt file to: %s | %s\n", r.target, common.SizeToString(written))

	if !r.clean {
		return nil
	}

	removed, err := slicer.NewCleaner(r.env.logger).RemoveParts(r.source)
	if err != nil {
		return err
	}
	r.env.output.Printf("Removed %d part(s) from: %s\n", removed, r.source)

	return nil
}
