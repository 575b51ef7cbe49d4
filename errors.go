package tempmail

import (
	"errors"
	"fmt"
	"time"

	"github.com/cubicbyte/tempmail-go/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidDomain is returned when a caller-chosen domain is not in
	// the service's allowed set.
	ErrInvalidDomain = errors.New("invalid domain")

	// ErrMessageNotFound is returned when a message id is unknown or the
	// message has expired on the server.
	ErrMessageNotFound = errors.New("message not found")

	// ErrAttachmentNotFound is returned when an attachment filename does
	// not exist on the message.
	ErrAttachmentNotFound = errors.New("attachment not found")

	// ErrWaitTimeout is returned when a wait exceeded its configured
	// timeout without a matching message arriving.
	ErrWaitTimeout = errors.New("timed out waiting for message")
)

// TempMailError is implemented by all library errors.
type TempMailError interface {
	error
	TempMailError() // marker method
}

// APIError represents an HTTP error response from the mail service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// TempMailError implements the TempMailError interface.
func (e *APIError) TempMailError() {}

// NetworkError represents a network-level failure.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// TempMailError implements the TempMailError interface.
func (e *NetworkError) TempMailError() {}

// ParseError represents a service response that did not match the
// expected shape.
type ParseError struct {
	Op  string // endpoint action or field being parsed
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// TempMailError implements the TempMailError interface.
func (e *ParseError) TempMailError() {}

// TimeoutError represents a wait that exceeded its deadline. It is
// distinct from transport failures so callers can branch on "no mail
// yet" vs "the service is unreachable".
type TimeoutError struct {
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("no matching message after %v", e.Timeout)
}

// Is implements errors.Is for sentinel error matching.
func (e *TimeoutError) Is(target error) bool {
	return target == ErrWaitTimeout
}

// TempMailError implements the TempMailError interface.
func (e *TimeoutError) TempMailError() {}

// wrapError converts internal API errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, api.ErrMessageNotFound) {
		return ErrMessageNotFound
	}
	if errors.Is(err, api.ErrAttachmentNotFound) {
		return ErrAttachmentNotFound
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Message,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Err: netErr.Err,
			URL: netErr.URL,
		}
	}

	var parseErr *api.ParseError
	if errors.As(err, &parseErr) {
		return &ParseError{
			Op:  parseErr.Action,
			Err: parseErr.Err,
		}
	}

	return err
}
