package config

import "fmt"

// ConfigurationError represents an unreadable or invalid configuration
type ConfigurationError struct {
	Message string
	Cause   error
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("config error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}
