package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

type stdout struct {
	writer io.Writer
	reader *bufio.Reader

	column int
}

// NewStdOut creates the Output interface working on the process standard output and input
func NewStdOut() Output {
	return NewOutput(os.Stdout, os.Stdin)
}

// NewOutput creates the Output interface on the given writer and reader
func NewOutput(writer io.Writer, reader io.Reader) Output {
	return &stdout{
		writer: writer,
		reader: bufio.NewReader(reader),
		column: 0,
	}
}

func (s *stdout) Println(input string) {
	_, _ = fmt.Fprintln(s.writer, input)
	s.column = 0
}

func (s *stdout) Printf(format string, args ...interface{}) {
	s.Print(fmt.Sprintf(format, args...))
}

func (s *stdout) Print(input string) {
	if len(input) == 0 {
		return
	}

	_, _ = fmt.Fprint(s.writer, input)
	if input[len(input)-1] != '\n' {
		s.column += len(input)
		return
	}
	s.column = 0
}

// Remove moves the cursor back on the active line
func (s *stdout) Remove(size int) {
	if s.column-size < 0 {
		size = s.column
	}
	if size == 0 {
		return
	}
	_, _ = fmt.Fprintf(s.writer, "\033[%dD", size)
	s.column -= size
}

// Confirm asks the question and waits for y/N answer. Anything except y or Y is no
func (s *stdout) Confirm(question string) bool {
	s.Printf("%s (y/N) ", question)

	char, _, err := s.reader.ReadRune()
	if err != nil {
		s.Println("")
		return false
	}

	switch char {
	case 'Y', 'y':
		return true
	}
	return false
}

var _ Output = &stdout{}
