package api

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport covers network failures, timeouts, non-2xx statuses and
	// undecodable bodies.
	ErrTransport = errors.New("api transport failure")

	// ErrCircuitOpen is returned without touching the network while the
	// breaker is open after repeated transport failures.
	ErrCircuitOpen = errors.New("api circuit open")

	// ErrRateLimited means a client-side quota would be exceeded before the
	// request deadline.
	ErrRateLimited = errors.New("api rate limited")
)

// AppError is an error reported by the server inside a well-formed reply,
// such as {"error": "..."} on a search for an unknown title.
type AppError struct {
	Endpoint string
	Status   int
	Message  string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Endpoint, e.Message)
}

// IsUnavailable reports whether err means the server could not be reached,
// as opposed to the server answering with an application error.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrTransport) || errors.Is(err, ErrCircuitOpen) || errors.Is(err, ErrRateLimited)
}
