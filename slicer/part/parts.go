package part

import (
	"fmt"

	"github.com/freakmaxi/kertish-slicer/basics/errors"
)

// Parts is the definition of the pointer array of Part struct
type Parts []*Part

func (p Parts) Len() int           { return len(p) }
func (p Parts) Less(i, j int) bool { return p[i].Index < p[j].Index }
func (p Parts) Swap(i, j int)      { p[i], p[j] = p[j], p[i] }

// Validate checks the sorted parts are forming the complete set with the indices from 0 to len-1
func (p Parts) Validate() error {
	if len(p) == 0 {
		return errors.ErrNoPartsFound
	}

	for i := 1; i < len(p); i++ {
		if p[i-1].Index == p[i].Index {
			return errors.NewPartError("validate", int64(p[i].Index), p[i].Path,
				fmt.Errorf("%w: also in %s", errors.ErrDuplicateIndex, p[i-1].Path))
		}
	}

	for i, current := range p {
		if uint64(current.Index) != uint64(i) {
			return errors.NewPartError("validate", int64(i), current.Path,
				fmt.Errorf("%w: part %d is missing", errors.ErrIncompletePartSet, i))
		}
	}

	return nil
}

// TotalSize calculates the length of the file that the parts will be rebuilt into
func (p Parts) TotalSize() uint64 {
	total := uint64(0)
	for _, current := range p {
		total += uint64(current.PayloadSize())
	}
	return total
}
