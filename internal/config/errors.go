package config

import "fmt"

// ConfigurationError reports a setting that cannot be played with. It is
// raised while building the configuration, never in the middle of a game.
type ConfigurationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

func invalid(field string, value any, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Field: field, Value: value, Reason: fmt.Sprintf(format, args...)}
}
