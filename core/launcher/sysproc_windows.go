//go:build windows

package launcher

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

func configureDetached(cmd *exec.Cmd, newWindow bool) {
	flags := uint32(windows.CREATE_NEW_PROCESS_GROUP)
	if newWindow {
		flags |= windows.CREATE_NEW_CONSOLE
		// A new console gets its own stdio.
		cmd.Stdout = nil
		cmd.Stderr = nil
	}
	cmd.SysProcAttr = &syscall.SysProcAttr{CreationFlags: flags}
}
