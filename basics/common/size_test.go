package common

import (
	"errors"
	"testing"

	slicerErrors "github.com/freakmaxi/kertish-slicer/basics/errors"
	"github.com/stretchr/testify/assert"
)

func TestParseSize(t *testing.T) {
	size, err := ParseSize("10", "")
	assert.Nil(t, err)
	assert.Equal(t, uint64(10), size)

	size, err = ParseSize("10", "-b")
	assert.Nil(t, err)
	assert.Equal(t, uint64(10), size)

	size, err = ParseSize("3", "kb")
	assert.Nil(t, err)
	assert.Equal(t, uint64(3*1024), size)

	size, err = ParseSize("10", "-MB")
	assert.Nil(t, err)
	assert.Equal(t, uint64(10*1024*1024), size)

	size, err = ParseSize("2", "-gb")
	assert.Nil(t, err)
	assert.Equal(t, uint64(2*1024*1024*1024), size)
}

func TestParseSize_Invalid(t *testing.T) {
	_, err := ParseSize("0", "mb")
	assert.True(t, errors.Is(err, slicerErrors.ErrInvalidArgument))

	_, err = ParseSize("-5", "b")
	assert.True(t, errors.Is(err, slicerErrors.ErrInvalidArgument))

	_, err = ParseSize("ten", "b")
	assert.True(t, errors.Is(err, slicerErrors.ErrInvalidArgument))

	_, err = ParseSize("10", "tb")
	assert.True(t, errors.Is(err, slicerErrors.ErrInvalidArgument))

	_, err = ParseSize("18446744073709551615", "kb")
	assert.True(t, errors.Is(err, slicerErrors.ErrInvalidArgument))
}

func TestIsUnit(t *testing.T) {
	assert.True(t, IsUnit("-kb"))
	assert.True(t, IsUnit("GB"))
	assert.False(t, IsUnit("10"))
	assert.False(t, IsUnit("-tb"))
}

func TestSizeToString(t *testing.T) {
	assert.Equal(t, "0b", SizeToString(0))
	assert.Equal(t, "99999b", SizeToString(99999))
	assert.Equal(t, "97kb", SizeToString(100000))
	assert.Equal(t, "10240kb", SizeToString(10*1024*1024))
	assert.Equal(t, "1024mb", SizeToString(1024*1024*1024))
}
