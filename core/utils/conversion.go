package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePort converts operator input into a TCP/UDP port number.
// Surrounding whitespace is ignored; anything outside 0-65535 is rejected.
func ParsePort(val string) (uint16, error) {
	s := strings.TrimSpace(val)
	if s == "" {
		return 0, fmt.Errorf("port must not be empty")
	}
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid port %q: must be a number between 0 and 65535", val)
	}
	return uint16(n), nil
}

// ParseYesNo interprets confirmation answers. It accepts y/yes/true/1 and n/no/false/0
// in any case and reports ok=false for anything else.
func ParseYesNo(val string) (answer bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "y", "yes", "true", "1":
		return true, true
	case "n", "no", "false", "0":
		return false, true
	default:
		return false, false
	}
}

// ToString renders an optional string, using fallback when it is unset.
func ToString(val *string, fallback string) string {
	if val == nil {
		return fallback
	}
	return *val
}
