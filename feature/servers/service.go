package servers

import (
	"fmt"
	"strings"
	"sync"

	"server-launcher/core/logger"
	"server-launcher/core/resolver"
	"server-launcher/core/server"
	"server-launcher/core/storage"

	"go.uber.org/zap"
)

// Service owns the loaded configuration. Every mutation is saved before it returns.
type Service struct {
	mu     sync.Mutex
	store  storage.Store
	cfg    *server.Configuration
	logger *zap.Logger
}

// NewService creates a new editing service. Call Load before use.
func NewService(store storage.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:  store,
		cfg:    server.NewConfiguration(),
		logger: logger,
	}
}

// Load replaces the in-memory configuration with the persisted one.
func (s *Service) Load() error {
	cfg, err := s.store.Load()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
	return nil
}

// Configuration returns the live configuration. Callers must not mutate it directly.
func (s *Service) Configuration() *server.Configuration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// Servers returns the entries in stored order.
func (s *Service) Servers() []*server.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*server.Entry, len(s.cfg.Servers))
	copy(out, s.cfg.Servers)
	return out
}

// Lookup finds the entry called name.
func (s *Service) Lookup(name string) (*server.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.Lookup(name)
}

// Path returns where the configuration is persisted.
func (s *Service) Path() string {
	return s.store.Path()
}

// Update applies fn to the configuration and saves the result.
func (s *Service) Update(fn func(cfg *server.Configuration) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.cfg); err != nil {
		return err
	}
	if err := s.store.Save(s.cfg); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}
	return nil
}

// AddServer appends e to the configuration.
func (s *Service) AddServer(e *server.Entry) error {
	if strings.TrimSpace(e.Name) == "" {
		e.Name = server.DefaultName
	}
	err := s.Update(func(cfg *server.Configuration) error {
		cfg.AddServer(e)
		return nil
	})
	if err == nil {
		logger.WithServer(s.logger, e).Info("Server added")
	}
	return err
}

// DeleteServer removes exactly e.
func (s *Service) DeleteServer(e *server.Entry) error {
	err := s.Update(func(cfg *server.Configuration) error {
		if !cfg.DeleteServer(e) {
			return fmt.Errorf("%w: %q", server.ErrServerNotFound, e.Name)
		}
		return nil
	})
	if err == nil {
		logger.WithServer(s.logger, e).Info("Server deleted")
	}
	return err
}

// RenameServer sets the entry's name. A blank name restores the default.
func (s *Service) RenameServer(e *server.Entry, name string) error {
	if strings.TrimSpace(name) == "" {
		name = server.DefaultName
	}
	return s.updateEntry(e, func(e *server.Entry) error {
		e.Name = name
		return nil
	})
}

// SetPort sets the entry's port.
func (s *Service) SetPort(e *server.Entry, port uint16) error {
	return s.updateEntry(e, func(e *server.Entry) error {
		e.Port = port
		return nil
	})
}

// SetIncludeInLaunchAll sets membership in the start-all batch.
func (s *Service) SetIncludeInLaunchAll(e *server.Entry, include bool) error {
	return s.updateEntry(e, func(e *server.Entry) error {
		e.IncludeInLaunchAll = include
		return nil
	})
}

// ToggleLaunchAll flips membership in the start-all batch and returns the new value.
func (s *Service) ToggleLaunchAll(e *server.Entry) (bool, error) {
	var include bool
	err := s.updateEntry(e, func(e *server.Entry) error {
		e.IncludeInLaunchAll = !e.IncludeInLaunchAll
		include = e.IncludeInLaunchAll
		return nil
	})
	return include, err
}

// UpdateSettings applies fn to the settings of target, or to the global settings
// when target is nil, and saves.
func (s *Service) UpdateSettings(target *server.Entry, fn func(st *server.Settings) error) error {
	return s.Update(func(cfg *server.Configuration) error {
		if target != nil && cfg.Index(target) < 0 {
			return fmt.Errorf("%w: %q", server.ErrServerNotFound, target.Name)
		}
		return fn(cfg.SettingsFor(target))
	})
}

// SetDataPath assigns the data path of target. Blank input unsets it.
func (s *Service) SetDataPath(target *server.Entry, path string) error {
	return s.UpdateSettings(target, func(st *server.Settings) error {
		st.SetDataPath(path)
		return nil
	})
}

// AddArg adds a new launch argument to target.
func (s *Service) AddArg(target *server.Entry, key, value string) error {
	return s.UpdateSettings(target, func(st *server.Settings) error {
		return st.LaunchArgs.Add(key, value)
	})
}

// SetArg adds key or replaces its value.
func (s *Service) SetArg(target *server.Entry, key, value string) error {
	return s.UpdateSettings(target, func(st *server.Settings) error {
		if err := server.ValidateArgKey(key); err != nil {
			return err
		}
		st.LaunchArgs.Set(key, value)
		return nil
	})
}

// SetArgValue changes the value of an existing launch argument.
func (s *Service) SetArgValue(target *server.Entry, key, value string) error {
	return s.UpdateSettings(target, func(st *server.Settings) error {
		return st.LaunchArgs.Update(key, value)
	})
}

// RenameArg renames a launch argument, keeping its value.
func (s *Service) RenameArg(target *server.Entry, oldKey, newKey string) error {
	return s.UpdateSettings(target, func(st *server.Settings) error {
		return st.LaunchArgs.Rename(oldKey, newKey)
	})
}

// DeleteArg removes a launch argument.
func (s *Service) DeleteArg(target *server.Entry, key string) error {
	return s.UpdateSettings(target, func(st *server.Settings) error {
		if !st.LaunchArgs.Delete(key) {
			return fmt.Errorf("%w: %s", server.ErrArgNotFound, key)
		}
		return nil
	})
}

// Resolve returns the effective launch configuration of e, or of the global
// settings alone when e is nil.
func (s *Service) Resolve(e *server.Entry) (resolver.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return resolver.ResolveEntry(s.cfg, e)
}

// ResolveOwn returns target's own settings without the global ones merged in.
func (s *Service) ResolveOwn(target *server.Entry) (resolver.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if target == nil {
		return resolver.Resolve(s.cfg.GlobalSettings, nil, true)
	}
	return resolver.Resolve(s.cfg.GlobalSettings, &target.Settings, false)
}

func (s *Service) updateEntry(e *server.Entry, fn func(e *server.Entry) error) error {
	return s.Update(func(cfg *server.Configuration) error {
		if cfg.Index(e) < 0 {
			return fmt.Errorf("%w: %q", server.ErrServerNotFound, e.Name)
		}
		return fn(e)
	})
}
