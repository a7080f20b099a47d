package checks

import (
	"server-launcher/core/launcher"
)

// ExecutableResult describes where the server executable was found.
type ExecutableResult struct {
	Name string
	Path string
	Err  error
}

// CheckExecutable looks the executable up the same way starting a server does.
func CheckExecutable(name string, dirs []string) ExecutableResult {
	path, err := launcher.Locate(name, dirs...)
	return ExecutableResult{Name: name, Path: path, Err: err}
}
