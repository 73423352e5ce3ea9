//go:build !windows
// +build !windows

package selfremove

import "os"

// unix keeps the running image alive after unlink, the file can be removed directly
func (r *remover) remove(executablePath string) error {
	return os.Remove(executablePath)
}
