package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte(content), 0644))
}

func TestLoadConfig_DefaultsWhenMissing(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), cfg)
}

func TestGetDefaultConfig(t *testing.T) {
	cfg := GetDefaultConfig()

	assert.Equal(t, "localhost", cfg.Listen.Host)
	assert.Equal(t, 80, cfg.Listen.Port)
	assert.Equal(t, 5*time.Minute, cfg.CallbackTimeout)
	assert.Equal(t, OutputCSV, cfg.Output)
	assert.Equal(t, DefaultClientID, cfg.Provider.ClientID)
	assert.Equal(t, []string{"openid", "offline"}, cfg.Provider.Scopes)
	assert.Equal(t, "id_token code", cfg.Provider.ResponseType)
	assert.NoError(t, Validate(cfg))

	// Callers must not be able to mutate the shared default scopes.
	cfg.Provider.Scopes[0] = "changed"
	assert.Equal(t, "openid", GetDefaultConfig().Provider.Scopes[0])
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
listen:
  port: 8080
callbackTimeout: 2m
output: table
gameSession:
  sessionUrl: http://127.0.0.1:9000/sessions
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Listen.Host, "unset fields keep their defaults")
	assert.Equal(t, 8080, cfg.Listen.Port)
	assert.Equal(t, 2*time.Minute, cfg.CallbackTimeout)
	assert.Equal(t, OutputTable, cfg.Output)
	assert.Equal(t, "http://127.0.0.1:9000/sessions", cfg.GameSession.SessionURL)
	assert.Equal(t, DefaultAuthEndpoint, cfg.Provider.AuthEndpoint)
}

func TestLoadConfig_Malformed(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "listen: [not, a, map")

	_, err := LoadConfig(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error loading config")
}

func TestLoadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
listen:
  port: 70000
output: xml
`)

	_, err := LoadConfig(dir)
	var errs ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 2)
	assert.Contains(t, err.Error(), "listen.port")
	assert.Contains(t, err.Error(), "output")
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
listen:
  port: 8080
`)

	t.Setenv("JXLOGIN_LISTEN_PORT", "9090")
	t.Setenv("JXLOGIN_CALLBACK_TIMEOUT", "90s")
	t.Setenv("JXLOGIN_PROVIDER_SCOPES", "openid,offline,email")
	t.Setenv("JXLOGIN_GAME_SESSION_ACCOUNTS_URL", "https://example.com/accounts")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Listen.Port)
	assert.Equal(t, 90*time.Second, cfg.CallbackTimeout)
	assert.Equal(t, []string{"openid", "offline", "email"}, cfg.Provider.Scopes)
	assert.Equal(t, "https://example.com/accounts", cfg.GameSession.AccountsURL)
	assert.Equal(t, "localhost", cfg.Listen.Host)
}

func TestApplyEnv_InvalidValue(t *testing.T) {
	t.Setenv("JXLOGIN_LISTEN_PORT", "eighty")

	cfg := GetDefaultConfig()
	err := ApplyEnv(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{name: "empty host", mutate: func(c *Config) { c.Listen.Host = "" }, field: "listen.host"},
		{name: "negative port", mutate: func(c *Config) { c.Listen.Port = -1 }, field: "listen.port"},
		{name: "zero timeout", mutate: func(c *Config) { c.CallbackTimeout = 0 }, field: "callbackTimeout"},
		{name: "relative auth endpoint", mutate: func(c *Config) { c.Provider.AuthEndpoint = "/oauth2/auth" }, field: "provider.authEndpoint"},
		{name: "missing client id", mutate: func(c *Config) { c.Provider.ClientID = " " }, field: "provider.clientId"},
		{name: "ftp session url", mutate: func(c *Config) { c.GameSession.SessionURL = "ftp://example.com" }, field: "gameSession.sessionUrl"},
		{name: "missing accounts url", mutate: func(c *Config) { c.GameSession.AccountsURL = "" }, field: "gameSession.accountsUrl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			tt.mutate(&cfg)

			err := Validate(cfg)
			var errs ValidationErrors
			require.ErrorAs(t, err, &errs)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.field, errs[0].Field)
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	var errs ValidationErrors
	assert.Equal(t, "no validation errors", errs.Error())

	errs.Add("a", "is required")
	assert.Equal(t, "field 'a': is required", errs.Error())

	errs.Add("b", "must be positive", -1)
	assert.Equal(t, "validation failed: field 'a': is required; field 'b': must be positive", errs.Error())
	assert.Equal(t, -1, errs[1].Value)
}
