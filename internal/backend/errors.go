package backend

import (
	"errors"
	"fmt"
)

// ErrUnexpectedStatus matches any non-2xx backend response via errors.Is.
var ErrUnexpectedStatus = errors.New("unexpected status")

// StatusError carries the concrete HTTP status of a rejected backend call.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Code)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}
