package geometry

import (
	"errors"
	"fmt"
)

// ConfigError reports an input that cannot be calculated with. Err, when
// set, is the underlying cause and stays reachable through errors.As.
type ConfigError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// WrapConfigError attributes err to field, keeping err in the chain.
func WrapConfigError(field string, err error) *ConfigError {
	return &ConfigError{Field: field, Reason: err.Error(), Err: err}
}

func NewConfigError(field, format string, args ...any) *ConfigError {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// IsConfigError reports whether err, or anything it wraps or joins, is a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
