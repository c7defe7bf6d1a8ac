package gamesession

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultSessionURL creates a game session from an identity token.
	DefaultSessionURL = "https://auth.jagex.com/game-session/v1/sessions"

	// DefaultAccountsURL lists the accounts of a game session.
	DefaultAccountsURL = "https://auth.jagex.com/game-session/v1/accounts"

	// DefaultHTTPTimeout is the default timeout for each request.
	DefaultHTTPTimeout = 30 * time.Second

	maxResponseSize = 1 << 20
)

// ErrEmptyResponse is returned when an endpoint answers with no body.
var ErrEmptyResponse = errors.New("empty response body")

// Client talks to the game-session API.
type Client struct {
	httpClient  *http.Client
	logger      *slog.Logger
	sessionURL  string
	accountsURL string
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithEndpoints overrides the session and account endpoints. Empty values keep the default.
func WithEndpoints(sessionURL, accountsURL string) ClientOption {
	return func(c *Client) {
		if sessionURL != "" {
			c.sessionURL = sessionURL
		}
		if accountsURL != "" {
			c.accountsURL = accountsURL
		}
	}
}

// NewClient creates a new game-session client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: DefaultHTTPTimeout},
		logger:      slog.Default(),
		sessionURL:  DefaultSessionURL,
		accountsURL: DefaultAccountsURL,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// CreateSession exchanges an identity token for a game session.
func (c *Client) CreateSession(ctx context.Context, idToken string) (Session, error) {
	payload, err := json.Marshal(sessionRequest{IDToken: idToken})
	if err != nil {
		return "", &ExchangeError{Op: OpCreateSession, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.sessionURL, bytes.NewReader(payload))
	if err != nil {
		return "", &ExchangeError{Op: OpCreateSession, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	body, err := c.do(req, OpCreateSession)
	if err != nil {
		return "", err
	}

	var resp sessionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", &ExchangeError{Op: OpCreateSession, Err: fmt.Errorf("failed to parse response: %w", err)}
	}
	if resp.SessionID == nil || *resp.SessionID == "" {
		return "", &ExchangeError{Op: OpCreateSession, Err: errors.New("response has no sessionId")}
	}

	c.logger.Debug("Created game session", "endpoint", c.sessionURL)
	return Session(*resp.SessionID), nil
}

// ListAccounts returns the accounts of a session in the order the API lists them.
func (c *Client) ListAccounts(ctx context.Context, session Session) ([]Account, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.accountsURL, nil)
	if err != nil {
		return nil, &ExchangeError{Op: OpListAccounts, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Authorization", "Bearer "+string(session))
	req.Header.Set("Accept", "application/json")

	body, err := c.do(req, OpListAccounts)
	if err != nil {
		return nil, err
	}

	var accounts []Account
	if err := json.Unmarshal(body, &accounts); err != nil {
		return nil, &ExchangeError{Op: OpListAccounts, Err: fmt.Errorf("failed to parse response: %w", err)}
	}
	if accounts == nil {
		return nil, &ExchangeError{Op: OpListAccounts, Err: errors.New("response is not an account list")}
	}

	c.logger.Debug("Listed game accounts", "endpoint", c.accountsURL, "count", len(accounts))
	return accounts, nil
}

// do sends req and returns the body of a 2xx response.
func (c *Client) do(req *http.Request, op string) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ExchangeError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, &ExchangeError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Debug("Game session request failed",
			"op", op,
			"status", resp.StatusCode,
			"body", string(body))
		return nil, &ExchangeError{Op: op, StatusCode: resp.StatusCode, Err: errors.New(http.StatusText(resp.StatusCode))}
	}

	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, &ExchangeError{Op: op, StatusCode: resp.StatusCode, Err: ErrEmptyResponse}
	}

	return body, nil
}
