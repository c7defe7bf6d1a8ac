// Package login drives one browser-delegated login attempt end to end.
//
// A Service allocates a correlation token, registers it with the callback
// server, sends the user's browser to the identity provider's authorization
// URL, waits for the capture and finally trades the identity token for a game
// session and its accounts:
//
//	svc := login.New(cfg)
//	if err := svc.StartServer(); err != nil {
//	    return err // *callback.BindError
//	}
//	defer svc.Shutdown()
//
//	outcome, err := svc.Login(ctx)
//
// Every failure after the server is running is returned as a *FailedError; a
// failed attempt is never retried. A new attempt uses a new token.
package login
