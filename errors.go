package httpsvc

import (
	"context"
	"errors"
	"fmt"
	"net"
)

var (
	// ErrInvalidScheme is returned when an endpoint URI does not use https.
	ErrInvalidScheme = errors.New("invalid endpoint scheme")

	// ErrInvalidEndpoint is returned when an endpoint URI cannot be parsed
	// or names no host.
	ErrInvalidEndpoint = errors.New("invalid endpoint")

	// ErrInvalidPayload is returned when a payload cannot be encoded for
	// the requested method and content type.
	ErrInvalidPayload = errors.New("invalid payload")

	// ErrEncodingFailed is returned when a serializer rejects a value that
	// passed payload validation. This is an unexpected failure.
	ErrEncodingFailed = errors.New("encoding failed")

	// ErrUnsupportedFormValue is returned when a value cannot be flattened
	// into form fields.
	ErrUnsupportedFormValue = errors.New("unsupported form value type")
)

// ServiceError describes an unsuccessful HTTP exchange (status >= 400).
// Message carries the status code, the reason phrase, and the best-effort
// message extracted from the response body.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// DecodeError describes a response body that could not be decoded: a
// declared JSON body that is empty or malformed. StatusCode is the
// upstream status when it already indicates failure, or zero when the
// broken body arrived on an otherwise-successful status.
type DecodeError struct {
	StatusCode int
	Message    string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode failed: %s", e.Message)
}

// IsTimeout reports whether err is or wraps a timeout error.
// It checks for context.DeadlineExceeded and net.Error timeout errors.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// IsConnectionError reports whether err is a connection-level failure
// (DNS resolution, TCP connect, TLS handshake, reset).
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}
