package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means no HTTP response was received at all.
	ErrUnavailable = errors.New("server unreachable")

	// ErrEmailTaken is the recognizable sign-up rejection; views attach it
	// to the email field instead of showing a generic toast.
	ErrEmailTaken = errors.New("email already registered")

	// ErrNoToken means the server answered 200 but the body carried no
	// access token, so the session cannot be established.
	ErrNoToken = errors.New("no access token in response")
)

// StatusError is a non-2xx response with the service's detail message.
// Callers should match sentinels with errors.Is first and fall back to this
// for user-facing detail text.
type StatusError struct {
	Status int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("api: unexpected status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Detail)
}
