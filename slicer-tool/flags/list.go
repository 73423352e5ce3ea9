package flags

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/freakmaxi/kertish-slicer/basics/common"
	"github.com/freakmaxi/kertish-slicer/basics/errors"
	"github.com/freakmaxi/kertish-slicer/slicer"
	"github.com/freakmaxi/kertish-slicer/slicer/part"
	"github.com/mattn/go-runewidth"
)

type listCommand struct {
	env  *environment
	args []string

	source string
}

func NewList(env *environment, args []string) Execution {
	return &listCommand{
		env:  env,
		args: args,
	}
}

func (l *listCommand) Parse() error {
	if len(l.args) > 0 && strings.Index(l.args[0], "-") == 0 {
		if strings.Compare(l.args[0], "-h") == 0 {
			return errors.ErrShowUsage
		}
		return fmt.Errorf("unsupported argument for ls command")
	}

	switch len(l.args) {
	case 0:
		l.source = "."
	case 1:
		l.source = l.args[0]
	default:
		return fmt.Errorf("ls command needs only parts folder parameter")
	}

	return nil
}

func (l *listCommand) PrintUsage() {
	l.env.output.Println("  ls          List the parts in the folder ordered by their index.")
	l.env.output.Println("              Ex: ls [parts folder]")
	l.env.output.Println("")
}

func (l *listCommand) Name() string {
	return "ls"
}

func (l *listCommand) Execute() error {
	parts, err := slicer.NewRebuilder(l.env.workers, l.env.logger).Scan(l.source)
	if err != nil {
		return err
	}

	l.print(parts)
	return nil
}

func (l *listCommand) print(parts part.Parts) {
	nameWidth := runewidth.StringWidth("name")
	for _, p := range parts {
		if w := runewidth.StringWidth(filepath.Base(p.Path)); w > nameWidth {
			nameWidth = w
		}
	}
	indexWidth := len(strconv.Itoa(len(parts)))
	if indexWidth < len("index") {
		indexWidth = len("index")
	}

	l.env.output.Printf("%s  %*s  %10s\n", runewidth.FillRight("name", nameWidth), indexWidth, "index", "size")
	for _, p := range parts {
		l.env.output.Printf(
			"%s  %*d  %10s\n",
			runewidth.FillRight(filepath.Base(p.Path), nameWidth),
			indexWidth,
			p.Index,
			common.SizeToString(uint64(p.PayloadSize())),
		)
	}
	l.env.output.Printf("total %d part(s), %s\n", len(parts), common.SizeToString(parts.TotalSize()))
}
