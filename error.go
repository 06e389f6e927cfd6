package textwidth

import "fmt"

// ConnError means the display could not be opened.
type ConnError struct {
	cause error
}

func (e *ConnError) Error() string {
	return fmt.Sprintf("textwidth: could not open display: %v", e.cause)
}
func (e *ConnError) Unwrap() error { return e.cause }

// FontError means the requested font could not be resolved.
type FontError struct {
	Patterns []string
	cause    error
}

func (e *FontError) Error() string {
	if len(e.Patterns) > 0 {
		return fmt.Sprintf("textwidth: could not load font: %q: %v", e.Patterns, e.cause)
	}
	return fmt.Sprintf("textwidth: could not load font: %v", e.cause)
}
func (e *FontError) Unwrap() error { return e.cause }
