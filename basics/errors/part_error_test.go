package errors

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartError_Error(t *testing.T) {
	err := NewPartError("write", 2, "/tmp/parts/part_2.bin", os.ErrExist)
	assert.Equal(t, "write part 2 (/tmp/parts/part_2.bin): file already exists", err.Error())

	err = NewPartError("open source", NoIndex, "/tmp/archive.zip", os.ErrNotExist)
	assert.Equal(t, "open source /tmp/archive.zip: file does not exist", err.Error())
}

func TestPartError_Unwrap(t *testing.T) {
	err := NewPartError("scan", 7, "part_7.bin", ErrDuplicateIndex)

	assert.True(t, errors.Is(err, ErrDuplicateIndex))
	assert.False(t, errors.Is(err, ErrIncompletePartSet))

	var partErr *PartError
	assert.True(t, errors.As(err, &partErr))
	assert.Equal(t, int64(7), partErr.Index)
}
