package converse

import (
	"errors"
	"fmt"
)

var (
	// ErrAllRespondersFailed indicates every responder in the chain failed
	ErrAllRespondersFailed = errors.New("all responders failed")

	// ErrNoRespondersConfigured indicates no responders are enabled
	ErrNoRespondersConfigured = errors.New("no responders configured")
)

// ResponderError wraps responder-specific errors
type ResponderError struct {
	Responder string
	Err       error
}

func (e *ResponderError) Error() string {
	return fmt.Sprintf("responder %s: %v", e.Responder, e.Err)
}

func (e *ResponderError) Unwrap() error {
	return e.Err
}
