//go:build unix

package launcher

import (
	"os/exec"
	"syscall"
)

// configureDetached starts the child in a new session so it survives the launcher.
// Unix has no portable way to open a terminal window; the child keeps the launcher's
// terminal for its console output.
func configureDetached(cmd *exec.Cmd, _ bool) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}
