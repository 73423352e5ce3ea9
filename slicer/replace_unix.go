//go:build !windows
// +build !windows

package slicer

import "os"

func replace(source string, target string) error {
	return os.Rename(source, target)
}
