package callback

import (
	"errors"
	"fmt"
	"strings"
)

// ErrServerStopped is the result of every pending capture that was still
// waiting when the server stopped, either explicitly or by its timeout.
var ErrServerStopped = errors.New("callback server stopped")

// BindError indicates the listener could not be bound.
type BindError struct {
	// Addr is the address that could not be bound.
	Addr string
	// Err is the underlying network error.
	Err error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("failed to start callback server on %s (make sure the port is free and you are allowed to bind it): %v", e.Addr, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// ProviderError is an authorization failure reported by the identity provider
// through the error and error_description redirect parameters.
type ProviderError struct {
	Code        string
	Description string
}

func (e *ProviderError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("identity provider returned %s", e.Code)
	}
	return fmt.Sprintf("identity provider returned %s: %s", e.Code, e.Description)
}

// MalformedCaptureError describes a capture request that lacks required parameters.
type MalformedCaptureError struct {
	Missing []string
}

func (e *MalformedCaptureError) Error() string {
	return "capture request missing " + strings.Join(e.Missing, ", ")
}

// DuplicateTokenError is returned when a token is registered twice.
// Tokens are allocated sequentially, so this is an internal invariant violation.
type DuplicateTokenError struct {
	Token Token
}

func (e *DuplicateTokenError) Error() string {
	return fmt.Sprintf("token %s is already pending", e.Token)
}
