package calendar

import "fmt"

// FetchError represents a failure retrieving events from a calendar source.
type FetchError struct {
	Source  string
	Message string
	Cause   error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("calendar fetch failed (%s): %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("calendar fetch failed (%s): %s", e.Source, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// ParseError represents malformed calendar data.
type ParseError struct {
	Message string
	Line    int
	Cause   error
}

func (e *ParseError) Error() string {
	msg := e.Message
	if e.Line > 0 {
		msg = fmt.Sprintf("%s (line %d)", msg, e.Line)
	}
	if e.Cause != nil {
		return fmt.Sprintf("calendar parse error: %s: %v", msg, e.Cause)
	}
	return fmt.Sprintf("calendar parse error: %s", msg)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
