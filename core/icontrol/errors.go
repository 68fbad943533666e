package icontrol

import (
	"errors"
	"fmt"
)

// ErrNoToken is returned when a login response carries no token.
var ErrNoToken = errors.New("login response did not contain a token")

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	// Body is the beginning of the response body.
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}
