// FILE: lixenwraith/settings/errors.go
package settings

import (
	"errors"
	"fmt"
)

var (
	// ErrRegistrationConflict is returned when an alias is registered twice or a
	// second config-path option is registered.
	ErrRegistrationConflict = errors.New("option registration conflict")

	// ErrInvalidOption is returned for malformed option definitions.
	ErrInvalidOption = errors.New("invalid option definition")

	// ErrMissingValue is wrapped by MissingValueError.
	ErrMissingValue = errors.New("missing value")

	// ErrSettingNotFound is returned by the typed getters for keys with no value.
	ErrSettingNotFound = errors.New("setting not found")

	// ErrConfigNotFound indicates the config file does not exist. Not fatal.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrUnreadableFile indicates the config file exists but cannot be read. Not fatal.
	ErrUnreadableFile = errors.New("configuration file unreadable")
)

// MissingValueError reports a value option that appeared without a value and
// has no default to fall back to.
type MissingValueError struct {
	Option string // canonical option key
	Token  string // token as it appeared in the stream
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("option %q (%s) expects a value", e.Option, e.Token)
}

func (e *MissingValueError) Unwrap() error {
	return ErrMissingValue
}
