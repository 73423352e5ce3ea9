package slicer

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	slicerErrors "github.com/freakmaxi/kertish-slicer/basics/errors"
	"github.com/freakmaxi/kertish-slicer/slicer/part"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func createSource(t *testing.T, size int) (string, []byte) {
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i % 251)
	}

	sourcePath := filepath.Join(t.TempDir(), "archive.zip")
	require.Nil(t, os.WriteFile(sourcePath, data, 0666))

	return sourcePath, data
}

func readParts(t *testing.T, folder string) map[uint32][]byte {
	parts := make(map[uint32][]byte)
	require.Nil(t, part.Traverse(folder, func(partPath string) error {
		content, err := os.ReadFile(partPath)
		require.Nil(t, err)
		require.True(t, len(content) >= 4)

		index := uint32(content[0]) | uint32(content[1])<<8 | uint32(content[2])<<16 | uint32(content[3])<<24
		parts[index] = content[4:]
		return nil
	}))
	return parts
}

func TestSplitter_Split(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	sourcePath := filepath.Join(t.TempDir(), "source")
	require.Nil(t, os.WriteFile(sourcePath, []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 0666))
	target := filepath.Join(t.TempDir(), "parts")

	count, err := NewSplitter(1, logger).Split(sourcePath, target, 4)
	require.Nil(t, err)
	assert.Equal(t, 3, count)

	parts := readParts(t, target)
	assert.Len(t, parts, 3)
	assert.Equal(t, []byte{0, 1, 2, 3}, parts[0])
	assert.Equal(t, []byte{4, 5, 6, 7}, parts[1])
	assert.Equal(t, []byte{8, 9}, parts[2])
}

func TestSplitter_SplitPartCount(t *testing.T) {
	cases := []struct {
		size     int
		partSize uint64
		count    int
	}{
		{size: 1, partSize: 1, count: 1},
		{size: 5, partSize: 100, count: 1},
		{size: 100, partSize: 10, count: 10},
		{size: 101, partSize: 10, count: 11},
		{size: 3*1024*1024 + 7, partSize: 1024 * 1024, count: 4},
	}

	for _, c := range cases {
		sourcePath, _ := createSource(t, c.size)
		target := t.TempDir()

		count, err := NewSplitter(4, nil).Split(sourcePath, target, c.partSize)
		require.Nil(t, err)
		assert.Equal(t, c.count, count)

		parts := readParts(t, target)
		assert.Len(t, parts, c.count)

		for index, payload := range parts {
			if int(index) == c.count-1 {
				assert.Equal(t, uint64(c.size)-uint64(index)*c.partSize, uint64(len(payload)))
				continue
			}
			assert.Equal(t, c.partSize, uint64(len(payload)))
		}
	}
}

func TestSplitter_SplitExactMultiple(t *testing.T) {
	sourcePath, _ := createSource(t, 12)
	target := t.TempDir()

	count, err := NewSplitter(1, nil).Split(sourcePath, target, 4)
	require.Nil(t, err)
	assert.Equal(t, 3, count)

	for _, payload := range readParts(t, target) {
		assert.Len(t, payload, 4)
	}
}

func TestSplitter_SplitEmpty(t *testing.T) {
	sourcePath, _ := createSource(t, 0)
	target := filepath.Join(t.TempDir(), "parts")

	count, err := NewSplitter(1, nil).Split(sourcePath, target, 4)
	assert.Nil(t, err)
	assert.Equal(t, 0, count)

	entries, err := os.ReadDir(target)
	require.Nil(t, err)
	assert.Len(t, entries, 0)
}

func TestSplitter_SplitInvalidArguments(t *testing.T) {
	sourcePath, _ := createSource(t, 10)
	s := NewSplitter(1, nil)

	_, err := s.Split(sourcePath, t.TempDir(), 0)
	assert.True(t, errors.Is(err, slicerErrors.ErrInvalidArgument))

	_, err = s.Split("", t.TempDir(), 4)
	assert.True(t, errors.Is(err, slicerErrors.ErrInvalidArgument))

	_, err = s.Split(sourcePath, "", 4)
	assert.True(t, errors.Is(err, slicerErrors.ErrInvalidArgument))

	_, err = s.Split(t.TempDir(), t.TempDir(), 4)
	assert.True(t, errors.Is(err, slicerErrors.ErrInvalidArgument))
}

func TestSplitter_SplitMissingSource(t *testing.T) {
	_, err := NewSplitter(1, nil).Split(filepath.Join(t.TempDir(), "missing.zip"), t.TempDir(), 4)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	var partErr *slicerErrors.PartError
	require.True(t, errors.As(err, &partErr))
	assert.Equal(t, slicerErrors.NoIndex, partErr.Index)
}

func TestSplitter_SplitDoesNotOverwrite(t *testing.T) {
	sourcePath, _ := createSource(t, 10)
	target := t.TempDir()
	unrelated := filepath.Join(target, part.Name(1))
	require.Nil(t, os.WriteFile(unrelated, []byte("keep me"), 0666))

	_, err := NewSplitter(1, nil).Split(sourcePath, target, 4)
	assert.True(t, errors.Is(err, os.ErrExist))

	var partErr *slicerErrors.PartError
	require.True(t, errors.As(err, &partErr))
	assert.Equal(t, int64(1), partErr.Index)

	content, err := os.ReadFile(unrelated)
	require.Nil(t, err)
	assert.Equal(t, "keep me", string(content))
}

func TestSplitter_SplitParallel(t *testing.T) {
	sourcePath, data := createSource(t, 1000)
	target := t.TempDir()

	count, err := NewSplitter(8, nil).Split(sourcePath, target, 7)
	require.Nil(t, err)
	assert.Equal(t, 143, count)

	parts := readParts(t, target)
	indices := make([]int, 0, len(parts))
	for index := range parts {
		indices = append(indices, int(index))
	}
	sort.Ints(indices)

	merged := make([]byte, 0, len(data))
	for _, index := range indices {
		merged = append(merged, parts[uint32(index)]...)
	}
	assert.Equal(t, data, merged)
}
