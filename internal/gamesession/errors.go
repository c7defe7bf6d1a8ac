package gamesession

import "fmt"

// Operation names used in ExchangeError.
const (
	OpCreateSession = "create session"
	OpListAccounts  = "list accounts"
)

// ExchangeError reports a failed or unexpected collaborator response.
type ExchangeError struct {
	// Op is the failed operation, OpCreateSession or OpListAccounts.
	Op string
	// StatusCode is the HTTP status, 0 when no response was received.
	StatusCode int
	// Err is the underlying cause.
	Err error
}

func (e *ExchangeError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s failed with status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *ExchangeError) Unwrap() error {
	return e.Err
}
