package server

import (
	"encoding/json"
	"strings"
)

// Settings is the option set shared by the global configuration and every server entry.
type Settings struct {
	// LaunchArgs holds the launch arguments passed to the server executable.
	LaunchArgs LaunchArgs
	dataPath   *string
}

type settingsJSON struct {
	LaunchArgs  LaunchArgs `json:"launchArgs"`
	AppDataPath *string    `json:"appDataPath,omitempty"`
}

// DataPath returns the data path override and whether one is set.
func (s Settings) DataPath() (string, bool) {
	if s.dataPath == nil {
		return "", false
	}
	return *s.dataPath, true
}

// SetDataPath assigns the data path override. Empty or whitespace-only input unsets it.
func (s *Settings) SetDataPath(path string) {
	if strings.TrimSpace(path) == "" {
		s.dataPath = nil
		return
	}
	s.dataPath = &path
}

// ClearDataPath removes the data path override.
func (s *Settings) ClearDataPath() {
	s.dataPath = nil
}

// Clone returns a deep copy.
func (s Settings) Clone() Settings {
	c := Settings{LaunchArgs: s.LaunchArgs.Clone()}
	if p, ok := s.DataPath(); ok {
		c.SetDataPath(p)
	}
	return c
}

// MarshalJSON implements json.Marshaler.
func (s Settings) MarshalJSON() ([]byte, error) {
	return json.Marshal(settingsJSON{
		LaunchArgs:  s.LaunchArgs,
		AppDataPath: s.dataPath,
	})
}

// UnmarshalJSON implements json.Unmarshaler. Blank data paths in the document load as unset.
func (s *Settings) UnmarshalJSON(data []byte) error {
	var raw settingsJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.LaunchArgs = raw.LaunchArgs
	s.dataPath = nil
	if raw.AppDataPath != nil {
		s.SetDataPath(*raw.AppDataPath)
	}
	return nil
}
