package server

import (
	"encoding/json"
	"fmt"
)

const (
	// DefaultName is used for entries created without a name.
	DefaultName = "Default Server"
	// DefaultPort is the port assigned to new entries.
	DefaultPort uint16 = 7777
)

// Entry is one configured, launchable server.
type Entry struct {
	// Name is the display name. Names are not required to be unique.
	Name string `json:"name"`
	// Port is passed as the first argument to the server executable.
	Port uint16 `json:"port"`
	// Settings holds the per-server overrides of the global settings.
	Settings Settings `json:"settings"`
	// IncludeInLaunchAll controls membership in the start-all batch.
	IncludeInLaunchAll bool `json:"includeInLaunchAll"`
}

// NewEntry returns an entry populated with the defaults.
func NewEntry() *Entry {
	return &Entry{
		Name:               DefaultName,
		Port:               DefaultPort,
		IncludeInLaunchAll: true,
	}
}

// Label renders the entry the way menus list it.
func (e *Entry) Label() string {
	return fmt.Sprintf("%s - Port: %d", e.Name, e.Port)
}

// UnmarshalJSON applies the defaults for any field missing from the document.
// Older files keep the per-server settings under "Options"; they are used when
// "settings" is absent.
func (e *Entry) UnmarshalJSON(data []byte) error {
	type plain Entry
	p := plain(*NewEntry())
	aux := struct {
		*plain
		Settings *Settings `json:"settings"`
		Options  *Settings `json:"options"`
	}{plain: &p}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	switch {
	case aux.Settings != nil:
		p.Settings = *aux.Settings
	case aux.Options != nil:
		p.Settings = *aux.Options
	}
	*e = Entry(p)
	return nil
}
