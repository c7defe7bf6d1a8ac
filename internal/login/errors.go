package login

import (
	"errors"
	"fmt"
)

// ErrNoSession is returned when the collaborator answered without a session.
var ErrNoSession = errors.New("no game session returned")

// BrowserError indicates the authorization URL could not be handed to a browser.
type BrowserError struct {
	URL string
	Err error
}

func (e *BrowserError) Error() string {
	return fmt.Sprintf("could not hand %s to a browser: %v", e.URL, e.Err)
}

func (e *BrowserError) Unwrap() error {
	return e.Err
}

// FailedError indicates a login attempt failed or was cancelled.
type FailedError struct {
	// Step is the stage of the attempt that failed.
	Step string
	// Reason is the underlying error.
	Reason error
}

func (e *FailedError) Error() string {
	return fmt.Sprintf("login failed or was cancelled (%s): %v", e.Step, e.Reason)
}

// Unwrap returns the underlying error.
func (e *FailedError) Unwrap() error {
	return e.Reason
}

// Is allows errors.Is() to match any *FailedError.
func (e *FailedError) Is(target error) bool {
	_, ok := target.(*FailedError)
	return ok
}

const (
	StepRegister = "register"
	StepBrowser  = "browser"
	StepCapture  = "capture"
	StepSession  = "session"
	StepAccounts = "accounts"
)
