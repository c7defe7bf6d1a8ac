package callback

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"jxlogin/pkg/logging"
	strs "jxlogin/pkg/strings"
)

type requestIDKey struct{}

func requestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return "-"
}

// routes builds the handler chain: request isolation, method check, then the two pages.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/{$}", s.handleRoot)
	mux.HandleFunc(CapturePath, s.handleCapture)

	return isolate(readOnly(mux))
}

// isolate tags each request with an id and turns a panic into a logged 500.
func isolate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		ctx := context.WithValue(r.Context(), requestIDKey{}, id)

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			logging.Error("Callback", fmt.Errorf("%v", rec), "Request %s: %s %s failed", id, r.Method, r.URL.Path)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}()

		logging.Debug("Callback", "Request %s: %s %s", id, r.Method, r.URL.Path)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// readOnly rejects every method except GET and HEAD, before path routing.
func readOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// handleRoot serves the page that moves the URL fragment into the capture query.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	render(w, r, redirectPage, nil)
}

// handleCapture resolves the pending login named by the state parameter.
func (s *Server) handleCapture(w http.ResponseWriter, r *http.Request) {
	id := requestID(r.Context())
	query := r.URL.Query()

	if query.Has("error") {
		perr := &ProviderError{
			Code:        query.Get("error"),
			Description: query.Get("error_description"),
		}
		logging.Warn("Callback", "Request %s: identity provider returned %s (%s)",
			id, strs.ForLog(perr.Code), strs.ForLog(perr.Description))

		if token, err := ParseToken(query.Get("state")); err == nil {
			if s.registry.Resolve(token, Result{Err: perr}) {
				logging.Debug("Callback", "Request %s: failed pending login %s", id, token)
			}
		}

		render(w, r, errorPage, errorPageData{Code: perr.Code})
		return
	}

	if missing := missingParams(query, "code", "id_token", "state"); len(missing) > 0 {
		err := &MalformedCaptureError{Missing: missing}
		logging.Warn("Callback", "Request %s: %v", id, err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	state := query.Get("state")
	token, err := ParseToken(state)
	switch {
	case err != nil:
		logging.Warn("Callback", "Request %s: ignoring capture: %v", id, err)
	case s.registry.Resolve(token, Result{Tokens: AuthTokens{
		Code:    query.Get("code"),
		IDToken: query.Get("id_token"),
	}}):
		logging.Info("Callback", "Captured tokens for login %s", token)
	default:
		logging.Warn("Callback", "Request %s: no pending login for state %s, ignoring capture", id, token)
	}

	render(w, r, completePage, nil)
}

func missingParams(query url.Values, names ...string) []string {
	var missing []string
	for _, name := range names {
		if strings.TrimSpace(query.Get(name)) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}
