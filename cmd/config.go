package cmd

import (
	"jxlogin/internal/config"

	"github.com/spf13/cobra"
)

// loadConfig resolves the configuration for cmd: defaults, config.yaml,
// JXLOGIN_* environment variables and finally the flags the user set.
func loadConfig(cmd *cobra.Command, overrides func(*cobra.Command, *config.Config)) (config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return config.Config{}, err
	}

	if overrides == nil {
		return cfg, nil
	}
	overrides(cmd, &cfg)

	if err := config.Validate(cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
