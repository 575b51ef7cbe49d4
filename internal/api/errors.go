package api

import (
	"errors"
	"fmt"
)

// Common API errors that can be checked with errors.Is.
var (
	// ErrMessageNotFound indicates the requested message does not exist
	// or has expired on the server.
	ErrMessageNotFound = errors.New("message not found")
	// ErrAttachmentNotFound indicates the requested attachment file does
	// not exist on the message.
	ErrAttachmentNotFound = errors.New("attachment not found")
)

// APIError represents an HTTP error response from the 1secmail API.
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

// ParseError represents a response body that did not match the
// documented shape of the endpoint.
type ParseError struct {
	Action string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s response: %v", e.Action, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
