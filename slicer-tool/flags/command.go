package flags

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/freakmaxi/kertish-slicer/basics/errors"
	"github.com/freakmaxi/kertish-slicer/basics/terminal"
	"github.com/freakmaxi/kertish-slicer/slicer-tool/selfremove"
	"go.uber.org/zap"
)

type Command struct {
	version string

	filename string
	args     []string
	keepSelf bool
	env      *environment
	command  Execution
}

// NewCommand prepares the command line handling of the tool. workers is the default value
// that can be overridden by --workers option
func NewCommand(version string, args []string, workers int, output terminal.Output, logger *zap.Logger) *Command {
	filename := "kertish-slicer"
	if len(args) > 0 {
		filename = filepath.Base(args[0])
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	mrArgs := make([]string, 0)
	if 1 < len(args) {
		mrArgs = args[1:]
	}

	return &Command{
		version:  version,
		filename: filename,
		args:     mrArgs,
		env: &environment{
			workers: workers,
			output:  output,
			logger:  logger,
		},
	}
}

func (c *Command) printUsageHeader() {
	c.env.output.Printf("Kertish-slicer (v%s) usage: \n", c.version)
	c.env.output.Println("")
}

func (c *Command) printUsage() {
	c.printUsageHeader()
	c.env.output.Printf("   %s [options] command [arguments] parameters\n", c.filename)
	c.env.output.Println("")
	c.env.output.Println("options:")
	c.env.output.Println("  --workers     Parallel part writing/reading count. Default: 1 or SLICER_WORKERS")
	c.env.output.Println("  --keep-self   Does not remove the executable after automatic rebuilding")
	c.env.output.Println("  --help        Prints this usage documentation")
	c.env.output.Println("  --version     Prints release version")
	c.env.output.Println("")
	c.env.output.Println("commands:")
	c.env.output.Println("  slice     Slice the file into the parts.")
	c.env.output.Println("  rebuild   Rebuild the file from the parts.")
	c.env.output.Println("  ls        List the parts in the folder.")
	c.env.output.Println("  rm        Remove the parts in the folder.")
	c.env.output.Println("")
	c.env.output.Printf("Running without a command rebuilds the parts in the current folder into %s,\n", autoTargetName)
	c.env.output.Println("removes the parts and the executable itself.")
	c.env.output.Println("")
}

func (c *Command) Parse() bool {
	for i := 0; i < len(c.args); i++ {
		arg := c.args[i]

		switch arg {
		case "--workers":
			if i+1 == len(c.args) {
				c.env.output.Println("--workers requires value")
				c.env.output.Println("")
				c.printUsage()
				return false
			}

			i++
			workers, err := strconv.Atoi(c.args[i])
			if err != nil || workers < 1 {
				c.env.output.Println("--workers should be a positive number")
				c.env.output.Println("")
				c.printUsage()
				return false
			}
			c.env.workers = workers
			continue
		case "--keep-self":
			c.keepSelf = true
			continue
		case "--help":
			c.printUsage()
			return false
		case "--version":
			c.env.output.Printf("%s\n", c.version)
			return false
		}

		switch arg {
		case "slice", "rebuild", "ls", "rm":
			mrArgs := make([]string, 0)
			if i+1 < len(c.args) {
				mrArgs = c.args[i+1:]
			}
			return c.prepare(arg, mrArgs)
		}

		c.env.output.Printf("%s is not a supported command\n", arg)
		c.env.output.Println("")
		c.printUsage()
		return false
	}

	return c.prepare("auto", []string{})
}

func (c *Command) prepare(name string, args []string) bool {
	if name == "auto" && !c.keepSelf {
		c.env.remover = selfremove.NewRemover(c.env.logger)
	}

	var err error
	c.command, err = newExecution(c.env, name, args)
	if err != nil {
		c.env.output.Println(err.Error())
		c.env.output.Println("")
		c.printUsage()
		return false
	}

	if err := c.command.Parse(); err != nil {
		if err != errors.ErrShowUsage {
			c.env.output.Println(err.Error())
			c.env.output.Println("")
		}
		if c.command.Name() == "auto" {
			c.printUsage()
			return false
		}
		c.printUsageHeader()
		c.command.PrintUsage()
		return false
	}

	return true
}

func (c *Command) Execute() error {
	if c.command == nil {
		return fmt.Errorf("command is not parsed")
	}
	return c.command.Execute()
}
