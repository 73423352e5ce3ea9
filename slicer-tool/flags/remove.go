package flags

import (
	"fmt"
	"strings"

	"github.com/freakmaxi/kertish-slicer/basics/errors"
	"github.com/freakmaxi/kertish-slicer/slicer"
)

type removeCommand struct {
	env  *environment
	args []string

	confirm bool
	target  string
}

func NewRemove(env *environment, args []string) Execution {
	return &removeCommand{
		env:     env,
		args:    args,
		confirm: true,
	}
}

func (r *removeCommand) Parse() error {
	for len(r.args) > 0 {
		arg := r.args[0]
		switch arg {
		case "-f":
			r.args = r.args[1:]
			r.confirm = false
			continue
		case "-h":
			return errors.ErrShowUsage
		default:
			if strings.Index(arg, "-") == 0 {
				return fmt.Errorf("unsupported argument for rm command")
			}
		}
		break
	}

	if len(r.args) != 1 {
		return fmt.Errorf("rm command needs parts folder parameter")
	}
	r.target = r.args[0]

	return nil
}

func (r *removeCommand) PrintUsage() {
	r.env.output.Println("  rm          Remove the parts in the folder.")
	r.env.output.Println("              Ex: rm [arguments] [parts folder]")
	r.env.output.Println("")
	r.env.output.Println("arguments:")
	r.env.output.Println("  -f          skip confirmation and removes")
	r.env.output.Println("")
}

func (r *removeCommand) Name() string {
	return "rm"
}

func (r *removeCommand) Execute() error {
	if r.confirm {
		r.env.output.Printf("You are about to remove the parts in %s\n", r.target)
		if !r.env.output.Confirm("Do you want to continue?") {
			return nil
		}
	}

	removed, err := slicer.NewCleaner(r.env.logger).RemoveParts(r.target)
	if err != nil {
		return err
	}
	r.env.output.Printf("Removed %d part(s) from: %s\n", removed, r.target)

	return nil
}
