package cmd

import (
	"fmt"
	"os"

	"server-launcher/core/config"
	"server-launcher/core/launcher"
	"server-launcher/core/logger"
	"server-launcher/core/paths"
	"server-launcher/core/server"
	"server-launcher/core/storage"
	"server-launcher/feature/servers"

	"go.uber.org/zap"
)

// app holds everything a command needs once configuration has been loaded.
type app struct {
	cfg        *config.Config
	logger     *zap.Logger
	env        paths.Env
	layout     paths.Layout
	executable string
	searchDirs []string
	servers    *servers.Service
	launcher   *launcher.Launcher
}

// bootstrap loads settings, resolves the configuration file and loads the server list.
func bootstrap() (*app, error) {
	// 1. Load Configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	// 2. Initialize Logger
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	zap.ReplaceGlobals(logg)

	// 3. Resolve Paths
	env, err := paths.SystemEnv()
	if err != nil {
		return nil, err
	}
	layout, err := paths.Resolve(cfg.Paths, env)
	if err != nil {
		return nil, err
	}
	if layout.PolicyErr != nil {
		logg.Warn("Failed to read host policy, ignoring it", zap.Error(layout.PolicyErr))
	}
	if layout.PolicyApplied {
		logg.Info("Host policy applied, storing configuration next to the executable", zap.String("root", layout.Root))
	}
	if !layout.PlatformDirFound {
		logg.Warn("Per-user application data directory unavailable, using executable directory", zap.String("root", layout.Root))
	}

	// 4. Server Executable
	executable, err := launcher.ResolveExecutable(cfg.Launcher, env.GOOS)
	if err != nil {
		return nil, err
	}

	// 5. Load Server List
	store := storage.NewFileStore(layout.ConfigFile, logg)
	svc := servers.NewService(store, logg)
	if err := svc.Load(); err != nil {
		return nil, err
	}

	searchDirs := []string{env.WorkDir, env.ExecutableDir}
	l := launcher.New(cfg.Launcher, executable, launcher.ExecSpawner{}, logg, launcher.Options{
		SearchDirs: searchDirs,
		Out:        os.Stdout,
	})

	return &app{
		cfg:        cfg,
		logger:     logg,
		env:        env,
		layout:     layout,
		executable: executable,
		searchDirs: searchDirs,
		servers:    svc,
		launcher:   l,
	}, nil
}

// lookupTarget returns the named server, or nil for the global settings when name is empty.
func (a *app) lookupTarget(name string) (*server.Entry, error) {
	if name == "" {
		return nil, nil
	}
	return a.servers.Lookup(name)
}
