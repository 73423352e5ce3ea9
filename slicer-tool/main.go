package main

import (
	"os"
	"strconv"

	"github.com/freakmaxi/kertish-slicer/basics/log"
	"github.com/freakmaxi/kertish-slicer/basics/terminal"
	"github.com/freakmaxi/kertish-slicer/slicer-tool/flags"
	"go.uber.org/zap"
)

var version = "XX.X.XXXX"

func main() {
	logger, _ := log.NewLogger("tool")
	defer func() { _ = logger.Sync() }()

	output := terminal.NewStdOut()

	workers := 1
	workersString := os.Getenv("SLICER_WORKERS")
	if len(workersString) > 0 {
		w, err := strconv.Atoi(workersString)
		if err != nil || w < 1 {
			logger.Error("SLICER_WORKERS should be a positive number", zap.String("value", workersString))
			os.Exit(10)
		}
		workers = w
	}

	command := flags.NewCommand(version, os.Args, workers, output, logger)
	if !command.Parse() {
		os.Exit(1)
	}

	if err := command.Execute(); err != nil {
		output.Println(err.Error())
		os.Exit(2)
	}
}
