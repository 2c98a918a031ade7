package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadBool marks a value the truthy/falsy parser does not accept.
var ErrBadBool = errors.New("invalid boolean value")

// ParseBool interprets a configuration truth value, case-insensitive.
// False: 0, n, no, off, false, disabled. True: 1, y, yes, on, true,
// enabled. A nil value means the option was given bare, which counts
// as true. Anything else is an error for the caller to report.
func ParseBool(value *string) (bool, error) {
	if value == nil {
		return true, nil
	}
	switch strings.ToLower(*value) {
	case "0", "n", "no", "off", "false", "disabled":
		return false, nil
	case "1", "y", "yes", "on", "true", "enabled":
		return true, nil
	}
	return false, fmt.Errorf("%w: %q", ErrBadBool, *value)
}
