package slicer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleaner_RemoveParts(t *testing.T) {
	sourcePath, _ := createSource(t, 100)
	partsPath := t.TempDir()
	require.Nil(t, os.WriteFile(filepath.Join(partsPath, "notes.txt"), []byte("x"), 0666))

	count, err := NewSplitter(1, nil).Split(sourcePath, partsPath, 30)
	require.Nil(t, err)

	removed, err := NewCleaner(nil).RemoveParts(partsPath)
	assert.Nil(t, err)
	assert.Equal(t, count, removed)

	entries, err := os.ReadDir(partsPath)
	require.Nil(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "notes.txt", entries[0].Name())
}

func TestCleaner_RemovePartsEmpty(t *testing.T) {
	removed, err := NewCleaner(nil).RemoveParts(t.TempDir())
	assert.Nil(t, err)
	assert.Equal(t, 0, removed)
}

func TestCleaner_RemovePartsMissingFolder(t *testing.T) {
	_, err := NewCleaner(nil).RemoveParts(filepath.Join(t.TempDir(), "missing"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
