package stylecheck

import "fmt"

// ValidationError represents unusable input text. An empty draft is
// not a validated draft, so it fails rather than scoring 100.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConfigurationError represents a malformed or empty style guide. The
// analyzer refuses to score against it rather than silently skipping
// rules.
type ConfigurationError struct {
	Message string
	Cause   error
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}
