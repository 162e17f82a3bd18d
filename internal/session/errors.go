package session

import (
	"fmt"
)

// ValidationError reports malformed or missing user input. It is
// resolved locally: when it occurs, the store has not been contacted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// LoadError reports a failed full reload of the session mirrors.
type LoadError struct {
	Cause error
}

func (e LoadError) Error() string {
	return fmt.Sprintf("loading records failed: %s", e.Cause)
}

func (e LoadError) Unwrap() error {
	return e.Cause
}
