package paths

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// PolicyKey is the host policy setting that moves configs next to the executable.
const PolicyKey = "gamedir_for_configs"

// ReadPolicy reports whether the host policy file at path opts in to keeping
// configuration next to the executable. A missing file is not an error.
func ReadPolicy(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read host policy %s: %w", path, err)
	}
	return ParsePolicy(data), nil
}

// ParsePolicy looks for "gamedir_for_configs: true". Any line containing the
// marker, ignoring case, opts in; a top-level YAML key set to true does as well.
func ParsePolicy(data []byte) bool {
	return scanPolicy(data) || yamlPolicy(data)
}

func yamlPolicy(data []byte) bool {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return false
	}
	for k, v := range doc {
		if !strings.EqualFold(strings.TrimSpace(k), PolicyKey) {
			continue
		}
		switch val := v.(type) {
		case bool:
			return val
		case string:
			return strings.EqualFold(strings.TrimSpace(val), "true")
		}
	}
	return false
}

func scanPolicy(data []byte) bool {
	marker := PolicyKey + ": true"
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		if strings.Contains(strings.ToLower(sc.Text()), marker) {
			return true
		}
	}
	return false
}
