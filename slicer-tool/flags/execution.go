package flags

import (
	"fmt"

	"github.com/freakmaxi/kertish-slicer/basics/terminal"
	"github.com/freakmaxi/kertish-slicer/slicer-tool/selfremove"
	"go.uber.org/zap"
)

// Execution interface is the command definition of the tool
type Execution interface {
	Parse() error
	PrintUsage()
	Name() string

	Execute() error
}

type environment struct {
	workers int
	output  terminal.Output
	remover selfremove.Remover
	logger  *zap.Logger
}

func newExecution(env *environment, command string, args []string) (Execution, error) {
	switch command {
	case "slice":
		return NewSlice(env, args), nil
	case "rebuild":
		return NewRebuild(env, args), nil
	case "ls":
		return NewList(env, args), nil
	case "rm":
		return NewRemove(env, args), nil
	case "auto":
		return NewAuto(env, args), nil
	}

	return nil, fmt.Errorf("unsupported command")
}
