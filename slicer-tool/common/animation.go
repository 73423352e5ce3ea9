package common

import (
	"time"

	"github.com/freakmaxi/kertish-slicer/basics/terminal"
)

const spinInterval = time.Millisecond * 100

var spinChars = []string{"/", "-", "\\", "|"}

// Animation is the spinner shown on the output while a long operation is in progress
type Animation struct {
	output terminal.Output
	header string

	result   chan string
	finished chan struct{}
}

func NewAnimation(output terminal.Output, header string) *Animation {
	return &Animation{
		output:   output,
		header:   header,
		result:   make(chan string),
		finished: make(chan struct{}),
	}
}

// Start prints the header and spins until Stop or Cancel is called
func (a *Animation) Start() {
	a.output.Printf("%s |", a.header)

	go a.spin()
}

func (a *Animation) spin() {
	defer close(a.finished)

	ticker := time.NewTicker(spinInterval)
	defer ticker.Stop()

	for step := 0; ; step++ {
		select {
		case result := <-a.result:
			a.output.Remove(1)
			a.output.Println(result)
			return
		case <-ticker.C:
			a.output.Remove(1)
			a.output.Print(spinChars[step%len(spinChars)])
		}
	}
}

// Stop ends the spinner marking the operation as successful
func (a *Animation) Stop() {
	a.finish("ok.")
}

// Cancel ends the spinner marking the operation as failed
func (a *Animation) Cancel() {
	a.finish("failed.")
}

func (a *Animation) finish(result string) {
	a.result <- result
	<-a.finished
}
