package login

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"

	"jxlogin/internal/callback"
	"jxlogin/internal/config"
	"jxlogin/internal/gamesession"
	"jxlogin/pkg/logging"
)

// CaptureServer is the part of *callback.Server the Service drives.
type CaptureServer interface {
	Start() error
	Stop()
	Running() bool
	Port() int
	Expect(token callback.Token) (*callback.Pending, error)
}

// Exchanger trades an identity token for a game session and its accounts.
type Exchanger interface {
	CreateSession(ctx context.Context, idToken string) (gamesession.Session, error)
	ListAccounts(ctx context.Context, session gamesession.Session) ([]gamesession.Account, error)
}

// Outcome is the result of a successful login attempt.
type Outcome struct {
	Session  gamesession.Session
	Accounts []gamesession.Account
}

// Service runs login attempts against one callback server.
type Service struct {
	server    CaptureServer
	exchanger Exchanger
	openURL   func(url string) error

	oauth        oauth2.Config
	responseType string
	nonce        string
	prompt       string

	nextToken atomic.Int64
}

// Option configures a Service.
type Option func(*Service)

// WithServer replaces the callback server built from the configuration.
func WithServer(server CaptureServer) Option {
	return func(s *Service) {
		s.server = server
	}
}

// WithExchanger replaces the game-session client built from the configuration.
func WithExchanger(exchanger Exchanger) Option {
	return func(s *Service) {
		s.exchanger = exchanger
	}
}

// WithURLHandler replaces OpenBrowser, e.g. to print the URL instead.
func WithURLHandler(handler func(url string) error) Option {
	return func(s *Service) {
		s.openURL = handler
	}
}

// New creates a Service from cfg. The callback server is not started.
func New(cfg config.Config, opts ...Option) *Service {
	s := &Service{
		oauth: oauth2.Config{
			ClientID: cfg.Provider.ClientID,
			Endpoint: oauth2.Endpoint{AuthURL: cfg.Provider.AuthEndpoint},
			Scopes:   cfg.Provider.Scopes,
		},
		responseType: cfg.Provider.ResponseType,
		nonce:        cfg.Provider.Nonce,
		prompt:       cfg.Provider.Prompt,
		openURL:      OpenBrowser,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.server == nil {
		s.server = callback.NewServer(callback.Options{
			Host:    cfg.Listen.Host,
			Port:    cfg.Listen.Port,
			Timeout: cfg.CallbackTimeout,
		})
	}
	if s.exchanger == nil {
		clientOpts := []gamesession.ClientOption{
			gamesession.WithEndpoints(cfg.GameSession.SessionURL, cfg.GameSession.AccountsURL),
			gamesession.WithLogger(slog.Default().With("subsystem", "GameSession")),
		}
		if cfg.GameSession.Timeout > 0 {
			clientOpts = append(clientOpts, gamesession.WithHTTPClient(&http.Client{Timeout: cfg.GameSession.Timeout}))
		}
		s.exchanger = gamesession.NewClient(clientOpts...)
	}

	return s
}

// StartServer starts the callback server. It is a no-op when already running.
func (s *Service) StartServer() error {
	if s.server.Running() {
		return nil
	}
	return s.server.Start()
}

// Shutdown stops the callback server, failing any login still waiting.
func (s *Service) Shutdown() {
	if !s.server.Running() {
		return
	}
	s.server.Stop()
}

// Port returns the callback server's port.
func (s *Service) Port() int {
	return s.server.Port()
}

// AuthorizationURL returns the identity provider URL for the attempt identified by token.
func (s *Service) AuthorizationURL(token callback.Token) string {
	opts := []oauth2.AuthCodeOption{
		oauth2.SetAuthURLParam("response_type", s.responseType),
	}
	if s.nonce != "" {
		opts = append(opts, oauth2.SetAuthURLParam("nonce", s.nonce))
	}
	if s.prompt != "" {
		opts = append(opts, oauth2.SetAuthURLParam("prompt", s.prompt))
	}
	return s.oauth.AuthCodeURL(token.String(), opts...)
}

// Login runs one attempt: register, open the browser, wait for the capture,
// then exchange the identity token for a session and its accounts.
// On failure it returns nil and a *FailedError.
func (s *Service) Login(ctx context.Context) (*Outcome, error) {
	token := callback.Token(s.nextToken.Add(1) - 1)

	pending, err := s.server.Expect(token)
	if err != nil {
		return nil, &FailedError{Step: StepRegister, Reason: err}
	}

	authURL := s.AuthorizationURL(token)
	logging.Debug("Login", "Authorization URL for login %s: %s", token, authURL)

	if err := s.openURL(authURL); err != nil {
		pending.Cancel()
		logging.Error("Login", err, "Failed to open browser")
		return nil, &FailedError{Step: StepBrowser, Reason: &BrowserError{URL: authURL, Err: err}}
	}

	tokens, err := pending.Wait(ctx)
	if err != nil {
		return nil, &FailedError{Step: StepCapture, Reason: err}
	}
	logIdentity(token, tokens.IDToken)

	session, err := s.exchanger.CreateSession(ctx, tokens.IDToken)
	if err != nil {
		return nil, &FailedError{Step: StepSession, Reason: err}
	}
	if session == "" {
		return nil, &FailedError{Step: StepSession, Reason: ErrNoSession}
	}

	accounts, err := s.exchanger.ListAccounts(ctx, session)
	if err != nil {
		return nil, &FailedError{Step: StepAccounts, Reason: err}
	}

	logging.Info("Login", "Login %s complete with %d account(s)", token, len(accounts))
	return &Outcome{Session: session, Accounts: accounts}, nil
}

// logIdentity logs who signed in. The identity token is decoded without
// verifying its signature, so the subject is informational only.
func logIdentity(token callback.Token, idToken string) {
	subject, err := identitySubject(idToken)
	if err != nil {
		logging.Debug("Login", "Login %s: identity token is not a readable JWT: %v", token, err)
		return
	}
	logging.Info("Login", "Login %s captured identity token for subject %s", token, subject)
}

func identitySubject(idToken string) (string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(idToken, claims); err != nil {
		return "", err
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return "", err
	}
	if subject == "" {
		return "", errors.New("no sub claim")
	}
	return subject, nil
}
