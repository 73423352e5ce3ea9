package errors

import "fmt"

// NoIndex is used when the failure is not related to a specific part (source or target file)
const NoIndex int64 = -1

// PartError struct is to report the failed operation together with the part and the file path
// it was working on
type PartError struct {
	Op    string
	Index int64
	Path  string
	Err   error
}

// NewPartError wraps the err with the part details
func NewPartError(op string, index int64, path string, err error) error {
	return &PartError{
		Op:    op,
		Index: index,
		Path:  path,
		Err:   err,
	}
}

func (p *PartError) Error() string {
	if p.Index == NoIndex {
		return fmt.Sprintf("%s %s: %s", p.Op, p.Path, p.Err)
	}
	return fmt.Sprintf("%s part %d (%s): %s", p.Op, p.Index, p.Path, p.Err)
}

func (p *PartError) Unwrap() error {
	return p.Err
}

var _ error = &PartError{}
