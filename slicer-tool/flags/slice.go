package flags

import (
	"fmt"
	"os"
	"strings"

	"github.com/freakmaxi/kertish-slicer/basics/common"
	"github.com/freakmaxi/kertish-slicer/basics/errors"
	toolCommon "github.com/freakmaxi/kertish-slicer/slicer-tool/common"
	"github.com/freakmaxi/kertish-slicer/slicer"
)

type sliceCommand struct {
	env  *environment
	args []string

	first    string
	second   string
	partSize uint64
}

func NewSlice(env *environment, args []string) Execution {
	return &sliceCommand{
		env:  env,
		args: args,
	}
}

func (s *sliceCommand) Parse() error {
	if len(s.args) > 0 && strings.Compare(s.args[0], "-h") == 0 {
		return errors.ErrShowUsage
	}

	if len(s.args) < 3 || len(s.args) > 4 {
		return fmt.Errorf("slice command needs source, target, size and optionally unit parameters")
	}

	unit := ""
	if len(s.args) == 4 {
		unit = s.args[3]
		if !common.IsUnit(unit) {
			return fmt.Errorf("unit %s is not supported, use one of b, kb, mb, gb", unit)
		}
	}

	partSize, err := common.ParseSize(s.args[2], unit)
	if err != nil {
		return err
	}

	s.first = s.args[0]
	s.second = s.args[1]
	s.partSize = partSize

	return nil
}

func (s *sliceCommand) PrintUsage() {
	s.env.output.Println("  slice       Slice the file into the parts.")
	s.env.output.Println("              Ex: slice [source file] [target folder] [size] [unit]")
	s.env.output.Println("")
	s.env.output.Println("units:")
	s.env.output.Println("  b           bytes (default)")
	s.env.output.Println("  kb          kilobytes")
	s.env.output.Println("  mb          megabytes")
	s.env.output.Println("  gb          gigabytes")
	s.env.output.Println("")
	s.env.output.Println("the order of source file and target folder can be swapped, the existing")
	s.env.output.Println("file between them is taken as the source.")
	s.env.output.Println("")
}

func (s *sliceCommand) Name() string {
	return "slice"
}

func (s *sliceCommand) Execute() error {
	source, target, err := s.sourceTarget()
	if err != nil {
		return err
	}

	anim := toolCommon.NewAnimation(s.env.output, "slicing...")
	anim.Start()

	count, err := slicer.NewSplitter(s.env.workers, s.env.logger).Split(source, target, s.partSize)
	if err != nil {
		anim.Cancel()
		return err
	}
	anim.Stop()

	s.env.output.Printf("Sliced file: %s into: %s | %d part(s) of %s\n", source, target, count, common.SizeToString(s.partSize))
	return nil
}

func (s *sliceCommand) sourceTarget() (string, string, error) {
	if isFile(s.first) {
		return s.first, s.second, nil
	}
	if isFile(s.second) {
		return s.second, s.first, nil
	}
	return "", "", fmt.Errorf("source file can not be found, neither %s nor %s is an existing file", s.first, s.second)
}

func isFile(p string) bool {
	info, err := os.Stat(p)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
