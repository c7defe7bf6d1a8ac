package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jxlogin/internal/callback"
	"jxlogin/internal/config"
	"jxlogin/internal/formatting"
	"jxlogin/internal/login"

	"github.com/briandowns/spinner"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

// Login-specific flags
var (
	loginHost      string
	loginPort      int
	loginTimeout   time.Duration
	loginOutput    string
	loginNoBrowser bool
)

// newLoginService builds the service used by the login command. Tests replace it.
var newLoginService = login.New

func newLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in through the browser and print the account's characters",
		Long: `Sign in to a Jagex account through the browser.

This command starts the local callback server, opens the login page in the
default browser and waits for the redirect. The identity token is then
exchanged for a game session and the account's characters are printed.

Examples:
  jxlogin login                      # Sign in and print CSV lines
  jxlogin login --output table       # Print a table instead
  jxlogin login --no-browser         # Print the login URL instead of opening it
  jxlogin login --port 8080          # Listen on another port`,
		Args: cobra.NoArgs,
		RunE: runLogin,
	}

	cmd.Flags().StringVar(&loginHost, "host", callback.DefaultHost, "Host name the callback server listens on")
	cmd.Flags().IntVar(&loginPort, "port", callback.DefaultPort, "Port the callback server listens on (0 picks a free port)")
	cmd.Flags().DurationVar(&loginTimeout, "timeout", callback.CallbackTimeout, "Stop the callback server after this long")
	cmd.Flags().StringVarP(&loginOutput, "output", "o", config.OutputCSV, "Output format: csv, table, json or yaml")
	cmd.Flags().BoolVar(&loginNoBrowser, "no-browser", false, "Print the login URL instead of opening a browser")

	return cmd
}

func applyLoginFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("host") {
		cfg.Listen.Host = loginHost
	}
	if flags.Changed("port") {
		cfg.Listen.Port = loginPort
	}
	if flags.Changed("timeout") {
		cfg.CallbackTimeout = loginTimeout
	}
	if flags.Changed("output") {
		cfg.Output = loginOutput
	}
}

func runLogin(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, applyLoginFlags)
	if err != nil {
		return err
	}

	format, err := formatting.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}
	formatter := formatting.New(formatting.Options{Format: format, Color: isTerminal(cmd.OutOrStdout())})

	// Progress goes to stderr when stdout carries JSON or YAML.
	status := cmd.OutOrStdout()
	if formatter.Structured() {
		status = cmd.ErrOrStderr()
	}
	if quiet {
		status = io.Discard
	}

	var s *spinner.Spinner
	if !quiet {
		s = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(cmd.ErrOrStderr()))
		s.Suffix = " Waiting for the browser to complete the login..."
	}

	openURL := login.OpenBrowser
	if loginNoBrowser {
		openURL = printURL(cmd.ErrOrStderr())
	}
	svc := newLoginService(cfg, login.WithURLHandler(startWaitingAfter(openURL, s)))

	if err := svc.StartServer(); err != nil {
		return err
	}
	fmt.Fprintf(status, "HTTP server started on port %d.\n", svc.Port())
	defer func() {
		svc.Shutdown()
		fmt.Fprintln(status, "HTTP server stopped.")
	}()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !loginNoBrowser {
		fmt.Fprintln(status, "Opening browser for authentication...")
	}

	outcome, err := svc.Login(ctx)

	if s != nil {
		s.Stop()
	}

	if err != nil {
		fmt.Fprintln(status, text.FgRed.Sprint("Login failed or was cancelled."))
		return err
	}

	fmt.Fprintln(status, "Login successful!")
	fmt.Fprintf(status, "Found %d character(s):\n\n", len(outcome.Accounts))

	return formatter.WriteAccounts(cmd.OutOrStdout(), outcome.Session, outcome.Accounts)
}

// waitIndicator is the part of *spinner.Spinner used while waiting.
type waitIndicator interface {
	Start()
}

func printURL(w io.Writer) func(string) error {
	return func(url string) error {
		_, err := fmt.Fprintf(w, "Open this URL in your browser to sign in:\n\n  %s\n\n", url)
		return err
	}
}

// startWaitingAfter starts the indicator only once open has delivered the
// URL, so nothing else is written to the spinner's line.
func startWaitingAfter(open func(string) error, indicator *spinner.Spinner) func(string) error {
	if indicator == nil {
		return open
	}
	return startAfter(open, indicator)
}

func startAfter(open func(string) error, indicator waitIndicator) func(string) error {
	return func(url string) error {
		if err := open(url); err != nil {
			return err
		}
		indicator.Start()
		return nil
	}
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
