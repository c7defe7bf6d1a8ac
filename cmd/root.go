package cmd

import (
	"errors"
	"io"
	"os"

	"jxlogin/internal/callback"
	"jxlogin/internal/config"
	"jxlogin/internal/login"
	"jxlogin/pkg/logging"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error, including a callback port that cannot be bound.
	ExitCodeError = 1
	// ExitCodeConfigInvalid indicates the resolved configuration failed validation.
	ExitCodeConfigInvalid = 2
	// ExitCodeLoginFailed indicates the login attempt failed or was cancelled.
	ExitCodeLoginFailed = 3
)

// Global flags
var (
	configPath string
	debug      bool
	logFile    string
	quiet      bool
)

// logCloser is the rotating log file opened for --log-file, if any.
var logCloser io.Closer

// rootCmd represents the base command for the jxlogin application.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jxlogin",
		Short: "Sign in to a Jagex account and list its characters",
		Long: `jxlogin signs in to a Jagex account through the browser and prints the
game session id together with the account's characters, ready to be used as
JX_SESSION_ID, JX_CHARACTER_NAME and JX_ACCOUNT_ID by third-party launchers.

A local HTTP server receives the browser redirect, so the login client's
registered redirect (http://localhost:80/ by default) must be reachable.`,
		// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
		SilenceUsage:       true,
		PersistentPreRunE:  initLogging,
		PersistentPostRunE: closeLogging,
	}

	defaultConfigPath, err := config.GetDefaultConfigPath()
	if err != nil {
		defaultConfigPath = ""
	}

	cmd.PersistentFlags().StringVar(&configPath, "config-path", defaultConfigPath, "Directory containing config.yaml")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file (rotated) instead of stderr")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress progress messages and the spinner")

	cmd.AddCommand(newLoginCmd())
	cmd.AddCommand(newURLCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "jxlogin version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		closeLogging(rootCmd, nil)
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the appropriate exit code based on the error type.
// This provides semantic exit codes for scripting and automation.
func getExitCode(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}

	var bindErr *callback.BindError
	if errors.As(err, &bindErr) {
		return ExitCodeError
	}

	var validationErrs config.ValidationErrors
	if errors.As(err, &validationErrs) {
		return ExitCodeConfigInvalid
	}

	if errors.Is(err, &login.FailedError{}) {
		return ExitCodeLoginFailed
	}

	// Default to general error
	return ExitCodeError
}

// initLogging routes log output to stderr or the --log-file and picks the level.
// Without --debug only warnings and errors are shown on stderr; a log file
// also receives informational messages.
func initLogging(cmd *cobra.Command, _ []string) error {
	level := logging.LevelWarn
	var out io.Writer = cmd.ErrOrStderr()

	if logFile != "" {
		lf := logging.OpenLogFile(logging.FileOptions{Path: logFile})
		logCloser = lf
		out = lf
		level = logging.LevelInfo
	}
	if debug {
		level = logging.LevelDebug
	}

	logging.InitForCLI(level, out)
	return nil
}

func closeLogging(_ *cobra.Command, _ []string) error {
	if logCloser == nil {
		return nil
	}
	err := logCloser.Close()
	logCloser = nil
	return err
}
