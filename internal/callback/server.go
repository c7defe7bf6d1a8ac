package callback

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"jxlogin/pkg/logging"
)

const (
	// DefaultHost is the hostname the identity provider redirects to.
	DefaultHost = "localhost"

	// DefaultPort is the port registered with the identity provider for the redirect.
	DefaultPort = 80

	// CallbackTimeout is how long the server lives after Start before it stops itself.
	CallbackTimeout = 5 * time.Minute

	// CapturePath receives the tokens once the root page moved them into the query.
	CapturePath = "/capture"

	shutdownGracePeriod = 5 * time.Second
)

// Options configures a Server. An empty Host or a non-positive Timeout selects
// the default. Port is used as given; 0 lets the OS pick a free port.
type Options struct {
	Host    string
	Port    int
	Timeout time.Duration
}

// Server is the local HTTP listener that captures implicit-flow redirects and
// resolves the matching pending login attempts.
type Server struct {
	host     string
	port     int
	timeout  time.Duration
	registry *Registry
	handler  http.Handler

	mu     sync.Mutex
	server *http.Server
	timer  *time.Timer
	addr   string
}

// NewServer creates a stopped server.
func NewServer(opts Options) *Server {
	if opts.Host == "" {
		opts.Host = DefaultHost
	}
	if opts.Timeout <= 0 {
		opts.Timeout = CallbackTimeout
	}

	s := &Server{
		host:     opts.Host,
		port:     opts.Port,
		timeout:  opts.Timeout,
		registry: NewRegistry(),
	}
	s.handler = s.routes()
	return s
}

// Start binds the listener and begins serving in the background.
// It is a no-op when the server is already running.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server != nil {
		return nil
	}

	addr := net.JoinHostPort(s.host, strconv.Itoa(s.port))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return &BindError{Addr: addr, Err: err}
	}

	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.server = srv
	s.addr = listener.Addr().String()

	go func() {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("Callback", err, "Callback server on %s stopped serving", listener.Addr())
		}
	}()

	s.timer = time.AfterFunc(s.timeout, func() {
		if s.shutdown(srv) {
			logging.Warn("Callback", "No login completed within %s, callback server stopped", s.timeout)
		}
	})

	logging.Info("Callback", "Callback server listening on %s", s.addr)
	return nil
}

// Stop shuts the server down and fails every pending capture with ErrServerStopped.
// It is safe to call repeatedly and concurrently.
func (s *Server) Stop() {
	s.shutdown(nil)
}

// shutdown stops the running server. When only is non-nil the server is stopped
// only if only is still the running instance, so a timer armed by an earlier
// Start cannot stop a later one. It reports whether anything was stopped.
func (s *Server) shutdown(only *http.Server) bool {
	s.mu.Lock()
	srv, timer := s.server, s.timer
	if srv == nil || (only != nil && srv != only) {
		s.mu.Unlock()
		return false
	}
	s.server, s.timer = nil, nil

	// Drained under s.mu so Expect cannot register into a stopped server.
	drained := s.registry.ResolveAll(ErrServerStopped)
	s.mu.Unlock()

	if timer != nil {
		timer.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logging.Debug("Callback", "Graceful shutdown did not finish: %v", err)
		_ = srv.Close()
	}

	if drained > 0 {
		logging.Info("Callback", "Callback server stopped, %d pending login(s) cancelled", drained)
	} else {
		logging.Debug("Callback", "Callback server stopped")
	}
	return true
}

// Running reports whether the listener is bound.
func (s *Server) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.server != nil
}

// Addr returns the bound listener address, or "" before the first Start.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// Port returns the bound port, or the configured port before Start.
func (s *Server) Port() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.addr == "" {
		return s.port
	}
	_, port, err := net.SplitHostPort(s.addr)
	if err != nil {
		return s.port
	}
	n, err := strconv.Atoi(port)
	if err != nil {
		return s.port
	}
	return n
}

// RedirectURL is the URL the identity provider sends the browser back to.
func (s *Server) RedirectURL() string {
	return fmt.Sprintf("http://%s/", net.JoinHostPort(s.host, strconv.Itoa(s.Port())))
}

// Expect registers a pending capture for token.
// Callers register before sending the user to the identity provider so that no
// capture can arrive for an unregistered token.
func (s *Server) Expect(token Token) (*Pending, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server == nil {
		return nil, ErrServerStopped
	}
	return s.registry.Register(token)
}

// AwaitCapture registers token and blocks until its capture resolves.
// It returns ErrServerStopped if the server stops first, a *ProviderError if the
// identity provider reported a failure, or ctx.Err() if ctx ends first.
func (s *Server) AwaitCapture(ctx context.Context, token Token) (AuthTokens, error) {
	p, err := s.Expect(token)
	if err != nil {
		return AuthTokens{}, err
	}
	return p.Wait(ctx)
}

// PendingCount returns the number of captures still waiting.
func (s *Server) PendingCount() int {
	return s.registry.Len()
}

// Handler exposes the routing for in-process tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.handler
}
