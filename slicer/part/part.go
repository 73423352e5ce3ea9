package part

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Extension is the reserved file extension of the part files
const Extension = ".bin"

// Part struct is to hold the part file information collected from its header
type Part struct {
	Index uint32
	Path  string
	Size  int64
}

// PayloadSize returns the length of the source bytes kept in the part
func (p *Part) PayloadSize() int64 {
	return p.Size - HeaderSize
}

// Name creates the file name of the part. The name is only for identification, the order
// of the part is always taken from its header
func Name(index uint32) string {
	return fmt.Sprintf("part_%d%s", index, Extension)
}

// IsPartFile checks if the file name carries the part extension
func IsPartFile(name string) bool {
	return strings.Compare(filepath.Ext(name), Extension) == 0
}
