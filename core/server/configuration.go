package server

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Configuration is the persisted root object. It owns every entry and the global settings.
type Configuration struct {
	// Servers is kept in display order.
	Servers []*Entry `json:"servers"`
	// GlobalSettings apply to every server unless an entry overrides them.
	GlobalSettings Settings `json:"globalSettings"`
}

// NewConfiguration returns an empty configuration.
func NewConfiguration() *Configuration {
	return &Configuration{Servers: []*Entry{}}
}

// UnmarshalJSON normalises a missing server list and drops null entries.
// Older files keep the global settings under "GlobalOptions"; they are used when
// "globalSettings" is absent.
func (c *Configuration) UnmarshalJSON(data []byte) error {
	type plain Configuration
	var p plain
	aux := struct {
		*plain
		GlobalSettings *Settings `json:"globalSettings"`
		GlobalOptions  *Settings `json:"globalOptions"`
	}{plain: &p}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	switch {
	case aux.GlobalSettings != nil:
		p.GlobalSettings = *aux.GlobalSettings
	case aux.GlobalOptions != nil:
		p.GlobalSettings = *aux.GlobalOptions
	}
	servers := make([]*Entry, 0, len(p.Servers))
	for _, e := range p.Servers {
		if e != nil {
			servers = append(servers, e)
		}
	}
	p.Servers = servers
	*c = Configuration(p)
	return nil
}

// AddServer appends e to the server list.
func (c *Configuration) AddServer(e *Entry) {
	c.Servers = append(c.Servers, e)
}

// DeleteServer removes exactly the entry e, matched by identity.
// Entries that merely share its name or port are kept.
func (c *Configuration) DeleteServer(e *Entry) bool {
	i := c.Index(e)
	if i < 0 {
		return false
	}
	c.Servers = slices.Delete(slices.Clone(c.Servers), i, i+1)
	return true
}

// Index returns the position of e, or -1.
func (c *Configuration) Index(e *Entry) int {
	for i, s := range c.Servers {
		if s == e {
			return i
		}
	}
	return -1
}

// Lookup finds the single entry called name.
func (c *Configuration) Lookup(name string) (*Entry, error) {
	var found *Entry
	for _, s := range c.Servers {
		if s.Name != name {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("%w: %q", ErrAmbiguousName, name)
		}
		found = s
	}
	if found == nil {
		return nil, fmt.Errorf("%w: %q", ErrServerNotFound, name)
	}
	return found, nil
}

// LaunchAllSet returns the entries flagged for the start-all batch, in stored order.
func (c *Configuration) LaunchAllSet() []*Entry {
	var out []*Entry
	for _, s := range c.Servers {
		if s.IncludeInLaunchAll {
			out = append(out, s)
		}
	}
	return out
}

// SettingsFor returns the settings targeted by an edit: the entry's own settings,
// or the global settings when e is nil.
func (c *Configuration) SettingsFor(e *Entry) *Settings {
	if e == nil {
		return &c.GlobalSettings
	}
	return &e.Settings
}
