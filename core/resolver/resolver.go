package resolver

import (
	"fmt"
	"path/filepath"
	"strings"

	"server-launcher/core/server"
)

// Result is the effective launch configuration of one server.
type Result struct {
	// Args is the flattened "key value" argument string, empty when there are no arguments.
	Args string
	// Pairs holds the merged arguments in the order they appear in Args.
	Pairs []server.Arg
	// DataPath is the absolute data path to pass, or nil when no override applies.
	DataPath *string
}

// Resolve merges the global settings with an optional entry's settings.
//
// Global arguments come first in their stored order; entry arguments replace global
// values in place and append keys the global set does not have. When includeGlobal is
// false the global settings are ignored entirely.
//
// A non-blank entry data path always wins. Otherwise the global data path applies when
// includeGlobal is set.
func Resolve(global server.Settings, entry *server.Settings, includeGlobal bool) (Result, error) {
	var merged server.LaunchArgs
	if includeGlobal {
		merged = global.LaunchArgs.Clone()
	}
	if entry != nil {
		for _, p := range entry.LaunchArgs.Pairs() {
			merged.Set(p.Key, p.Value)
		}
	}

	res := Result{
		Args:  merged.String(),
		Pairs: merged.Pairs(),
	}

	path, err := dataPath(global, entry, includeGlobal)
	if err != nil {
		return Result{}, err
	}
	res.DataPath = path

	return res, nil
}

// ResolveEntry resolves e against the global settings of cfg.
func ResolveEntry(cfg *server.Configuration, e *server.Entry) (Result, error) {
	if e == nil {
		return Resolve(cfg.GlobalSettings, nil, true)
	}
	return Resolve(cfg.GlobalSettings, &e.Settings, true)
}

func dataPath(global server.Settings, entry *server.Settings, includeGlobal bool) (*string, error) {
	if entry != nil {
		if p, ok := entry.DataPath(); ok {
			return AbsPath(p)
		}
	}
	if !includeGlobal {
		return nil, nil
	}
	if p, ok := global.DataPath(); ok {
		return AbsPath(p)
	}
	return nil, nil
}

// AbsPath returns the absolute, cleaned form of p. Blank input yields nil.
func AbsPath(p string) (*string, error) {
	if strings.TrimSpace(p) == "" {
		return nil, nil
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return nil, fmt.Errorf("resolve data path %q: %w", p, err)
	}
	return &abs, nil
}
