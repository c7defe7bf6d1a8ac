package config

import "time"

// Config is the top-level configuration structure for jxlogin.
type Config struct {
	Listen          ListenConfig      `yaml:"listen" envPrefix:"LISTEN_"`
	CallbackTimeout time.Duration     `yaml:"callbackTimeout,omitempty" env:"CALLBACK_TIMEOUT"` // Auto-shutdown of the callback server (default: 5m)
	Output          string            `yaml:"output,omitempty" env:"OUTPUT"`                    // csv, table, json or yaml (default: csv)
	Provider        ProviderConfig    `yaml:"provider" envPrefix:"PROVIDER_"`
	GameSession     GameSessionConfig `yaml:"gameSession" envPrefix:"GAME_SESSION_"`
}

// ListenConfig is where the callback server binds. The identity provider only
// redirects to the registered URI, so changing it is mainly useful for testing.
type ListenConfig struct {
	Host string `yaml:"host,omitempty" env:"HOST"` // default: localhost
	Port int    `yaml:"port,omitempty" env:"PORT"` // default: 80
}

// ProviderConfig describes the identity provider's authorization request.
type ProviderConfig struct {
	AuthEndpoint string   `yaml:"authEndpoint,omitempty" env:"AUTH_ENDPOINT"`
	ClientID     string   `yaml:"clientId,omitempty" env:"CLIENT_ID"`
	ResponseType string   `yaml:"responseType,omitempty" env:"RESPONSE_TYPE"`
	Scopes       []string `yaml:"scopes,omitempty" env:"SCOPES" envSeparator:","`
	Nonce        string   `yaml:"nonce,omitempty" env:"NONCE"`
	Prompt       string   `yaml:"prompt,omitempty" env:"PROMPT"`
}

// GameSessionConfig locates the session-exchange and account-lookup endpoints.
type GameSessionConfig struct {
	SessionURL  string        `yaml:"sessionUrl,omitempty" env:"SESSION_URL"`
	AccountsURL string        `yaml:"accountsUrl,omitempty" env:"ACCOUNTS_URL"`
	Timeout     time.Duration `yaml:"timeout,omitempty" env:"TIMEOUT"`
}

const (
	OutputCSV   = "csv"
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// OutputFormats lists the accepted values of Config.Output.
var OutputFormats = []string{OutputCSV, OutputTable, OutputJSON, OutputYAML}
