package meteo

import (
	"errors"
	"fmt"
)

// Fetch failures carry a distinct kind per cause so callers can tell a dead
// network from a broken payload.
var (
	// ErrTransport marks connection-level failures (DNS, refused, timeout).
	ErrTransport = errors.New("transport error")
	// ErrDecode marks a response body that is not the expected JSON shape.
	ErrDecode = errors.New("decode error")
	// ErrCircuitOpen is returned while the breaker refuses calls.
	ErrCircuitOpen = errors.New("circuit breaker open")
)

// StatusError is a non-2xx HTTP response.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d", e.Code)
}
