package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ErrUnsupportedPlatform is returned when no per-user data directory convention is known for the OS.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

const (
	configSubdir = "config"
	policyRoot   = "AppData"
)

// Layout is the resolved location of the launcher's configuration.
type Layout struct {
	// Root is the application data root the config directory lives in.
	Root string
	// ConfigDir is the directory holding the configuration file.
	ConfigDir string
	// ConfigFile is the full path of the configuration file.
	ConfigFile string
	// PolicyApplied is true when the host policy moved the root next to the executable.
	PolicyApplied bool
	// PlatformDirFound is false when the per-user directory could not be determined
	// and the executable's directory was used instead.
	PlatformDirFound bool
	// PolicyErr records a host policy file that exists but could not be read.
	PolicyErr error
}

// Env describes the process environment path resolution depends on.
type Env struct {
	GOOS          string
	WorkDir       string
	ExecutableDir string
	UserConfigDir func() (string, error)
	UserHomeDir   func() (string, error)
}

// SystemEnv captures the environment of the running process.
func SystemEnv() (Env, error) {
	wd, err := os.Getwd()
	if err != nil {
		return Env{}, fmt.Errorf("failed to get working directory: %w", err)
	}

	exe, err := os.Executable()
	if err != nil {
		return Env{}, fmt.Errorf("failed to locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return Env{
		GOOS:          runtime.GOOS,
		WorkDir:       wd,
		ExecutableDir: filepath.Dir(exe),
		UserConfigDir: os.UserConfigDir,
		UserHomeDir:   os.UserHomeDir,
	}, nil
}

// Resolve works out where the configuration file lives.
//
// Order: explicit ConfigDir, then the host policy (root next to the executable),
// then the per-user data directory plus the product subfolder, and finally a config
// directory beside the executable when no per-user directory can be found.
func Resolve(cfg Config, env Env) (Layout, error) {
	if cfg.File == "" {
		return Layout{}, errors.New("configuration file name must not be empty")
	}

	if strings.TrimSpace(cfg.ConfigDir) != "" {
		dir, err := filepath.Abs(cfg.ConfigDir)
		if err != nil {
			return Layout{}, fmt.Errorf("failed to resolve config directory: %w", err)
		}
		return Layout{
			Root:             filepath.Dir(dir),
			ConfigDir:        dir,
			ConfigFile:       filepath.Join(dir, cfg.File),
			PlatformDirFound: true,
		}, nil
	}

	var layout Layout

	if cfg.PolicyFile != "" {
		applied, err := ReadPolicy(filepath.Join(env.WorkDir, cfg.PolicyFile))
		layout.PolicyErr = err
		layout.PolicyApplied = applied
	}

	switch {
	case layout.PolicyApplied:
		layout.Root = filepath.Join(env.ExecutableDir, policyRoot)
		layout.PlatformDirFound = true
	default:
		base, found, err := platformDataDir(env)
		if err != nil {
			return Layout{}, err
		}
		layout.PlatformDirFound = found
		if found {
			layout.Root = filepath.Join(base, cfg.Product)
		} else {
			layout.Root = env.ExecutableDir
		}
	}

	layout.ConfigDir = filepath.Join(layout.Root, configSubdir)
	layout.ConfigFile = filepath.Join(layout.ConfigDir, cfg.File)
	return layout, nil
}

// platformDataDir returns the per-user application data directory.
func platformDataDir(env Env) (string, bool, error) {
	if env.UserConfigDir != nil {
		if dir, err := env.UserConfigDir(); err == nil && strings.TrimSpace(dir) != "" {
			return dir, true, nil
		}
	}

	if env.UserHomeDir == nil {
		return "", false, nil
	}
	home, err := env.UserHomeDir()
	if err != nil || strings.TrimSpace(home) == "" {
		return "", false, nil
	}

	switch env.GOOS {
	case "windows":
		return filepath.Join(home, "AppData", "Roaming"), true, nil
	case "darwin", "ios":
		return filepath.Join(home, "Library", "Application Support"), true, nil
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly", "solaris", "illumos", "aix", "android":
		return filepath.Join(home, ".config"), true, nil
	default:
		return "", false, fmt.Errorf("%w: no data directory convention for %s", ErrUnsupportedPlatform, env.GOOS)
	}
}
