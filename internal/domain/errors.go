package domain

import (
	"errors"
	"fmt"
	"net"
	"net/http"
)

// InvalidRequestError reports malformed caller input. It is never retried.
type InvalidRequestError struct {
	Field  string
	Reason string
}

func (e *InvalidRequestError) Error() string {
	if e.Field == "" {
		return "invalid request: " + e.Reason
	}
	return fmt.Sprintf("invalid request: %s: %s", e.Field, e.Reason)
}

// IsInvalidRequest reports whether err wraps an InvalidRequestError.
func IsInvalidRequest(err error) bool {
	var ire *InvalidRequestError
	return errors.As(err, &ire)
}

// ProviderError reports a failed call to the external routing provider.
// StatusCode is zero when no HTTP response was received.
type ProviderError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("routing provider %s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("routing provider %s: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// Temporary reports whether repeating the call could succeed:
// throttling, 5xx responses and network-level failures.
func (e *ProviderError) Temporary() bool {
	switch e.StatusCode {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}

	var netErr net.Error
	return e.StatusCode == 0 && errors.As(e.Err, &netErr)
}
