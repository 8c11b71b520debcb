package admin

import (
	"errors"
	"fmt"
)

// NotFoundError marks a permanent absence: the resource does not exist or the
// caller cannot see it. It is never retried and callers convert it into a
// skip record rather than a failure.
type NotFoundError struct {
	Resource string
	Code     string
}

func (e *NotFoundError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s not found (%s)", e.Resource, e.Code)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// TransientError is everything else: network failures, throttling, 5xx. It is
// surfaced only after the retry budget is exhausted.
type TransientError struct {
	Resource string
	Status   int
	Attempts int
	Err      error
}

func (e *TransientError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v (after %d attempts)", e.Resource, e.Err, e.Attempts)
	}
	return fmt.Sprintf("%s: status %d (after %d attempts)", e.Resource, e.Status, e.Attempts)
}

func (e *TransientError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a permanent not-found outcome.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
