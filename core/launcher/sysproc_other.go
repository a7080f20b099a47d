//go:build !unix && !windows

package launcher

import "os/exec"

func configureDetached(_ *exec.Cmd, _ bool) {}
