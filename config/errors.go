package config

import (
	"errors"
	"fmt"
)

// ConfigError reports a fatal configuration problem found at load or
// compile time. No rows are processed and no graph exists when one is
// returned.
type ConfigError struct {
	// Section names the configuration section at fault.
	Section string
	// Reason describes the problem.
	Reason string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Section, e.Reason)
}

// IsConfigError reports whether err is (or wraps) a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
