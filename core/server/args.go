package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Arg is a single launch argument. The value may be empty.
type Arg struct {
	Key   string
	Value string
}

// LaunchArgs is an insertion-ordered mapping of launch argument keys to values.
// Keys are unique. The zero value is an empty mapping ready to use.
type LaunchArgs struct {
	pairs []Arg
}

// NewLaunchArgs builds a mapping from pairs; later duplicates override earlier ones in place.
func NewLaunchArgs(pairs ...Arg) LaunchArgs {
	var a LaunchArgs
	for _, p := range pairs {
		a.Set(p.Key, p.Value)
	}
	return a
}

// Len returns the number of arguments.
func (a LaunchArgs) Len() int {
	return len(a.pairs)
}

// Pairs returns a copy of the arguments in insertion order.
func (a LaunchArgs) Pairs() []Arg {
	out := make([]Arg, len(a.pairs))
	copy(out, a.pairs)
	return out
}

// Keys returns the argument keys in insertion order.
func (a LaunchArgs) Keys() []string {
	keys := make([]string, len(a.pairs))
	for i, p := range a.pairs {
		keys[i] = p.Key
	}
	return keys
}

// Get returns the value stored for key.
func (a LaunchArgs) Get(key string) (string, bool) {
	if i := a.index(key); i >= 0 {
		return a.pairs[i].Value, true
	}
	return "", false
}

// Has reports whether key is present.
func (a LaunchArgs) Has(key string) bool {
	return a.index(key) >= 0
}

// Clone returns an independent copy.
func (a LaunchArgs) Clone() LaunchArgs {
	return LaunchArgs{pairs: a.Pairs()}
}

// Set replaces the value of an existing key in place or appends a new key.
func (a *LaunchArgs) Set(key, value string) {
	if i := a.index(key); i >= 0 {
		a.pairs[i].Value = value
		return
	}
	a.pairs = append(a.pairs, Arg{Key: key, Value: value})
}

// Add appends a new key. It fails when the key is blank or already present.
func (a *LaunchArgs) Add(key, value string) error {
	if err := ValidateArgKey(key); err != nil {
		return err
	}
	if a.Has(key) {
		return fmt.Errorf("%w: %s", ErrArgExists, key)
	}
	a.pairs = append(a.pairs, Arg{Key: key, Value: value})
	return nil
}

// Update changes the value of an existing key.
func (a *LaunchArgs) Update(key, value string) error {
	i := a.index(key)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrArgNotFound, key)
	}
	a.pairs[i].Value = value
	return nil
}

// Rename moves the value stored under oldKey to newKey, keeping its position.
// The old key is gone afterwards; renaming onto another existing key is refused.
func (a *LaunchArgs) Rename(oldKey, newKey string) error {
	if err := ValidateArgKey(newKey); err != nil {
		return err
	}
	i := a.index(oldKey)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrArgNotFound, oldKey)
	}
	if oldKey == newKey {
		return nil
	}
	if a.Has(newKey) {
		return fmt.Errorf("%w: %s", ErrArgExists, newKey)
	}
	a.pairs[i].Key = newKey
	return nil
}

// Delete removes key and reports whether it was present.
func (a *LaunchArgs) Delete(key string) bool {
	i := a.index(key)
	if i < 0 {
		return false
	}
	a.pairs = append(a.pairs[:i:i], a.pairs[i+1:]...)
	return true
}

// String renders the arguments as "key value" pairs joined by single spaces.
func (a LaunchArgs) String() string {
	parts := make([]string, len(a.pairs))
	for i, p := range a.pairs {
		parts[i] = p.Key + " " + p.Value
	}
	return strings.Join(parts, " ")
}

func (a LaunchArgs) index(key string) int {
	for i, p := range a.pairs {
		if p.Key == key {
			return i
		}
	}
	return -1
}

// MarshalJSON encodes the arguments as a JSON object in insertion order.
func (a LaunchArgs) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, p := range a.pairs {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(p.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(p.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object keeping the document order of its keys.
// A null object or a null value decodes as empty. Number and boolean values are
// kept as their literal text; nested objects and arrays are rejected.
func (a *LaunchArgs) UnmarshalJSON(data []byte) error {
	a.pairs = nil

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("launch arguments must be an object, got %v", tok)
	}

	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("launch argument key must be a string, got %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("launch argument %q: %w", key, err)
		}
		value, err := scalarText(raw)
		if err != nil {
			return fmt.Errorf("launch argument %q: %w", key, err)
		}
		a.Set(key, value)
	}

	_, err = dec.Token()
	return err
}

func scalarText(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", fmt.Errorf("missing value")
	}
	switch raw[0] {
	case 'n':
		return "", nil
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	case '{', '[':
		return "", fmt.Errorf("value must be a string, number or boolean")
	default:
		// numbers, true and false
		return string(raw), nil
	}
}
