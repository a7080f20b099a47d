package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"server-launcher/core/server"

	"go.uber.org/zap"
)

// ErrDecode is returned when the configuration file exists but cannot be parsed.
var ErrDecode = errors.New("configuration file is not valid")

// Store defines persistence of the launcher configuration.
type Store interface {
	// Load reads the configuration, creating and persisting a default one when absent.
	Load() (*server.Configuration, error)
	// Save overwrites the persisted configuration with cfg.
	Save(cfg *server.Configuration) error
	// Path returns the file the store reads and writes.
	Path() string
}

// FileStore keeps the configuration as an indented JSON document in a single file.
type FileStore struct {
	path   string
	logger *zap.Logger
}

// NewFileStore creates a store for the file at path.
func NewFileStore(path string, logger *zap.Logger) *FileStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileStore{path: path, logger: logger}
}

// Path returns the configuration file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the configuration file.
func (s *FileStore) Load() (*server.Configuration, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.logger.Info("Configuration file not found, creating default", zap.String("path", s.path))
		cfg := server.NewConfiguration()
		if err := s.Save(cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration %s: %w", s.path, err)
	}

	cfg, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, s.path, err)
	}

	s.logger.Debug("Configuration loaded",
		zap.String("path", s.path),
		zap.Int("servers", len(cfg.Servers)),
	)
	return cfg, nil
}

// Save writes cfg to a temporary file next to the target and renames it into place.
func (s *FileStore) Save(cfg *server.Configuration) error {
	data, err := Encode(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create configuration directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary configuration file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write configuration: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write configuration: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to set configuration permissions: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace configuration %s: %w", s.path, err)
	}

	s.logger.Debug("Configuration saved", zap.String("path", s.path), zap.Int("servers", len(cfg.Servers)))
	return nil
}

// Encode renders cfg as two-space indented JSON followed by a newline.
func Encode(cfg *server.Configuration) ([]byte, error) {
	if cfg == nil {
		cfg = server.NewConfiguration()
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Decode parses a configuration document. Unknown fields are ignored.
func Decode(data []byte) (*server.Configuration, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("file is empty")
	}
	cfg := server.NewConfiguration()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
