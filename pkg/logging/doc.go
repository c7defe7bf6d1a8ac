// Package logging provides subsystem-tagged structured logging for jxlogin.
//
// The package is a thin layer over Go's standard slog package. Every entry
// carries a subsystem attribute so the output of the callback server, the
// login flow and the game-session client can be told apart:
//
//   - **Callback**: local capture server and pending-request registry
//   - **Login**: browser launch and login sequencing
//   - **GameSession**: session exchange and account lookup
//   - **Config**: configuration loading
//
// # Usage
//
//	logging.InitForCLI(logging.LevelInfo, os.Stderr)
//
//	logging.Info("Callback", "Listening on %s", addr)
//	logging.Warn("Callback", "Capture for unknown state %q", state)
//	logging.Error("Login", err, "Session exchange failed")
//
// # Log Files
//
// OpenLogFile returns a size-rotated writer that can be passed to InitForCLI:
//
//	w := logging.OpenLogFile(logging.FileOptions{Path: "/tmp/jxlogin.log"})
//	defer w.Close()
//	logging.InitForCLI(logging.LevelDebug, w)
//
// Before InitForCLI is called only WARN and ERROR entries are emitted, to stderr.
package logging
