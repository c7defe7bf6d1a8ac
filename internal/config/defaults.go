package config

import (
	"time"

	"jxlogin/internal/callback"
	"jxlogin/internal/gamesession"
)

const (
	// DefaultAuthEndpoint is the Jagex accounts authorization endpoint.
	DefaultAuthEndpoint = "https://account.jagex.com/oauth2/auth"

	// DefaultClientID is the client registered for the localhost redirect.
	DefaultClientID = "1fddee4e-b100-4f4e-b2b0-097f9088f9d2"

	// DefaultResponseType requests both tokens through the URL fragment.
	DefaultResponseType = "id_token code"

	// DefaultNonce is the fixed nonce the registered client sends.
	DefaultNonce = "00000000"

	// DefaultPrompt forces the provider to show its login page.
	DefaultPrompt = "login"
)

// DefaultScopes are requested on every login.
var DefaultScopes = []string{"openid", "offline"}

// GetDefaultConfig returns the default configuration.
func GetDefaultConfig() Config {
	return Config{
		Listen: ListenConfig{
			Host: callback.DefaultHost,
			Port: callback.DefaultPort,
		},
		CallbackTimeout: callback.CallbackTimeout,
		Output:          OutputCSV,
		Provider: ProviderConfig{
			AuthEndpoint: DefaultAuthEndpoint,
			ClientID:     DefaultClientID,
			ResponseType: DefaultResponseType,
			Scopes:       append([]string(nil), DefaultScopes...),
			Nonce:        DefaultNonce,
			Prompt:       DefaultPrompt,
		},
		GameSession: GameSessionConfig{
			SessionURL:  gamesession.DefaultSessionURL,
			AccountsURL: gamesession.DefaultAccountsURL,
			Timeout:     30 * time.Second,
		},
	}
}
