package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// ValidationError represents a validation error with context
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (ve ValidationError) Error() string {
	if ve.Field == "" {
		return ve.Message
	}
	return fmt.Sprintf("field '%s': %s", ve.Field, ve.Message)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for multiple validation errors
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}
	if len(ve) == 1 {
		return ve[0].Error()
	}

	var messages []string
	for _, err := range ve {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, "; "))
}

// HasErrors returns true if there are any validation errors
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// Add adds a new validation error
func (ve *ValidationErrors) Add(field, message string, value ...interface{}) {
	var val interface{}
	if len(value) > 0 {
		val = value[0]
	}
	*ve = append(*ve, ValidationError{
		Field:   field,
		Value:   val,
		Message: message,
	})
}

// Validate checks a fully resolved configuration.
func Validate(c Config) error {
	var errs ValidationErrors

	if strings.TrimSpace(c.Listen.Host) == "" {
		errs.Add("listen.host", "is required")
	}
	if c.Listen.Port < 0 || c.Listen.Port > 65535 {
		errs.Add("listen.port", "must be between 0 and 65535", c.Listen.Port)
	}
	if c.CallbackTimeout <= 0 {
		errs.Add("callbackTimeout", "must be positive", c.CallbackTimeout)
	}
	if !slices.Contains(OutputFormats, c.Output) {
		errs.Add("output", "must be one of "+strings.Join(OutputFormats, ", "), c.Output)
	}

	validateURL(&errs, "provider.authEndpoint", c.Provider.AuthEndpoint)
	if strings.TrimSpace(c.Provider.ClientID) == "" {
		errs.Add("provider.clientId", "is required")
	}
	if strings.TrimSpace(c.Provider.ResponseType) == "" {
		errs.Add("provider.responseType", "is required")
	}

	validateURL(&errs, "gameSession.sessionUrl", c.GameSession.SessionURL)
	validateURL(&errs, "gameSession.accountsUrl", c.GameSession.AccountsURL)
	if c.GameSession.Timeout < 0 {
		errs.Add("gameSession.timeout", "must not be negative", c.GameSession.Timeout)
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func validateURL(errs *ValidationErrors, field, raw string) {
	if strings.TrimSpace(raw) == "" {
		errs.Add(field, "is required")
		return
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		errs.Add(field, "must be an absolute http(s) URL", raw)
	}
}
