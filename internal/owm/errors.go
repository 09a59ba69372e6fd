package owm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/sony/gobreaker"
)

// MalformedResponseError reports a provider payload that could not be
// decoded into the typed model. Field names the offending JSON path when a
// required field is missing.
type MalformedResponseError struct {
	Field string
	Err   error
}

func (e *MalformedResponseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("malformed response: missing required field %q", e.Field)
	}
	return fmt.Sprintf("malformed response: %v", e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// StatusError reports a non-2xx HTTP response from the provider.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("provider returned status %d: %s", e.Code, e.Body)
	}
	return fmt.Sprintf("provider returned status %d", e.Code)
}

// Transient reports whether the status is expected to resolve on retry.
func (e *StatusError) Transient() bool {
	return e.Code >= 500 || e.Code == http.StatusTooManyRequests
}

// EndpointError tags an error with the logical endpoint that produced it.
type EndpointError struct {
	Endpoint string // "weather" or "forecast"
	Err      error
}

func (e *EndpointError) Error() string {
	return fmt.Sprintf("%s endpoint: %v", e.Endpoint, e.Err)
}

func (e *EndpointError) Unwrap() error { return e.Err }

// isTransient classifies an attempt failure. Network-level errors and
// timeouts are retried; HTTP status errors retry only for 429/5xx. Decode
// failures and caller cancellation are permanent.
func isTransient(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Transient()
	}
	var me *MalformedResponseError
	if errors.As(err, &me) {
		return false
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		// Per-attempt deadline; the caller's context is checked separately.
		return true
	}
	var ne net.Error
	if errors.As(err, &ne) {
		return true
	}
	// Remaining transport-level failures (connection reset, EOF mid-body)
	// arrive as url.Error or io errors; treat them as retryable.
	return true
}
