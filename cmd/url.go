package cmd

import (
	"fmt"

	"jxlogin/internal/callback"
	"jxlogin/internal/login"

	"github.com/spf13/cobra"
)

func newURLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "url [token]",
		Short: "Print the login URL for a correlation token",
		Long: `Print the identity provider URL a login attempt would open.

The token defaults to 0, the first token a login command uses. Nothing is
started; this is useful for checking the configured provider settings.

Examples:
  jxlogin url
  jxlogin url 5
  jxlogin url 00000005`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token := callback.Token(0)
			if len(args) == 1 {
				parsed, err := callback.ParseToken(args[0])
				if err != nil {
					return fmt.Errorf("invalid token %q: %w", args[0], err)
				}
				token = parsed
			}

			cfg, err := loadConfig(cmd, nil)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), login.New(cfg).AuthorizationURL(token))
			return nil
		},
	}
}
