package launcher

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// BaseExecutable is the server runner's name without platform suffix.
const BaseExecutable = "LocalAdmin"

var (
	// ErrUnsupportedPlatform is returned for operating systems without a known executable name.
	ErrUnsupportedPlatform = errors.New("unsupported operating system")
	// ErrExecutableNotFound is returned when the server executable cannot be located.
	ErrExecutableNotFound = errors.New("server executable not found")
)

// ExecutableName returns the server runner's file name for goos.
func ExecutableName(goos string) (string, error) {
	switch goos {
	case "windows":
		return BaseExecutable + ".exe", nil
	case "linux", "darwin", "freebsd", "openbsd", "netbsd", "dragonfly", "solaris", "illumos", "aix":
		return BaseExecutable, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
	}
}

// ResolveExecutable picks the configured override or the platform default.
func ResolveExecutable(cfg Config, goos string) (string, error) {
	if strings.TrimSpace(cfg.Executable) != "" {
		return cfg.Executable, nil
	}
	return ExecutableName(goos)
}

// Locate finds name. Paths are checked as given; bare names are looked up in dirs
// first (the working directory and the launcher's own directory) and then in PATH.
func Locate(name string, dirs ...string) (string, error) {
	if strings.ContainsRune(name, os.PathSeparator) || strings.ContainsRune(name, '/') {
		if isFile(name) {
			return filepath.Abs(name)
		}
		return "", fmt.Errorf("%w: %s", ErrExecutableNotFound, name)
	}

	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, name)
		if isFile(candidate) {
			return candidate, nil
		}
	}

	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrExecutableNotFound, name)
	}
	return path, nil
}

func isFile(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
