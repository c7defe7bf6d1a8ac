package callback

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"jxlogin/pkg/logging"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

const (
	redirectPage = "redirect.html"
	completePage = "complete.html"
	errorPage    = "error.html"
)

type errorPageData struct {
	Code string
}

// setSecurityHeaders applies the headers shared by every page.
// The redirect page needs its inline script, so script-src allows inline code only.
func setSecurityHeaders(w http.ResponseWriter) {
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("X-Frame-Options", "DENY")
	w.Header().Set("Content-Security-Policy", "default-src 'none'; script-src 'unsafe-inline'; style-src 'unsafe-inline'")
	w.Header().Set("Referrer-Policy", "no-referrer")
	w.Header().Set("Cache-Control", "no-store")
}

// render executes the named page into a buffer before writing anything, so a
// template failure can still be answered with a 500.
func render(w http.ResponseWriter, r *http.Request, name string, data any) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		logging.Error("Callback", err, "Request %s: failed to render %s", requestID(r.Context()), name)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	setSecurityHeaders(w)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		logging.Debug("Callback", "Request %s: failed to write %s: %v", requestID(r.Context()), name, err)
	}
}
