// Package callback implements the local capture server that receives the
// identity provider's implicit-flow redirect.
//
// # Flow
//
// The identity provider redirects the browser to the server root with the
// tokens in the URL fragment. Browsers never send fragments to a server, so the
// root page runs a short inline script that moves the fragment into the query
// string of /capture. The capture handler then matches the state parameter
// against the pending requests and resolves the waiting login attempt.
//
//	browser ──GET /#id_token=…&code=…&state=00000000──▶ root page (script)
//	browser ──GET /capture?id_token=…&code=…&state=00000000──▶ capture handler
//	capture handler ──Resolve(0)──▶ Registry ──▶ Pending.Wait returns AuthTokens
//
// # Correlation
//
// Each login attempt registers a Token in the Registry before the browser is
// opened. A Pending is resolved at most once: by a matching capture, by a
// provider error carrying the same state, or by Server.Stop, which fails every
// remaining entry with ErrServerStopped. Captures for unknown or stale state are
// accepted without resolving anything.
//
// # Lifetime
//
// Start arms an auto-shutdown timer (CallbackTimeout by default). When it
// fires the server stops itself so an abandoned browser flow never leaves a
// caller waiting forever.
package callback
