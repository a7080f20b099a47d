package server

import (
	"errors"
	"strings"
)

var (
	// ErrArgExists is returned when adding or renaming onto a key that is already present.
	ErrArgExists = errors.New("launch argument already exists")
	// ErrArgNotFound is returned when editing a key that is not present.
	ErrArgNotFound = errors.New("launch argument not found")
	// ErrBlankArgKey is returned for empty or whitespace-only keys.
	ErrBlankArgKey = errors.New("launch argument key must not be blank")
	// ErrServerNotFound is returned when no entry matches a lookup.
	ErrServerNotFound = errors.New("server not found")
	// ErrAmbiguousName is returned when more than one entry carries the looked-up name.
	ErrAmbiguousName = errors.New("more than one server has this name")
)

// ValidateArgKey rejects blank keys.
func ValidateArgKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return ErrBlankArgKey
	}
	return nil
}
