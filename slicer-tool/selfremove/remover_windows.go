//go:build windows
// +build windows

package selfremove

import (
	"fmt"
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

// windows locks the image of the running process, the delete is delegated to a hidden
// shell that waits for a few seconds before removing the file
const removeCommandLine = `cmd.exe /C ping 127.0.0.1 -n 4 > Nul & Del /f /q "%s"`

func (r *remover) remove(executablePath string) error {
	cmd := exec.Command("cmd.exe")
	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow:    true,
		CmdLine:       fmt.Sprintf(removeCommandLine, executablePath),
		CreationFlags: windows.CREATE_NO_WINDOW,
	}

	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
