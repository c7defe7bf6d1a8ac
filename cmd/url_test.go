package cmd

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLCommand(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		state string
	}{
		{"default token", nil, "00000000"},
		{"plain number", []string{"5"}, "00000005"},
		{"padded", []string{"00000042"}, "00000042"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := executeCommand(t, append([]string{"url"}, tt.args...)...)
			require.NoError(t, err)

			u, err := url.Parse(strings.TrimSpace(stdout))
			require.NoError(t, err)
			assert.Equal(t, "account.jagex.com", u.Host)
			assert.Equal(t, tt.state, u.Query().Get("state"))
			assert.Equal(t, "id_token code", u.Query().Get("response_type"))
		})
	}
}

func TestURLCommand_InvalidToken(t *testing.T) {
	_, _, err := executeCommand(t, "url", "abc")
	assert.ErrorContains(t, err, `invalid token "abc"`)

	_, _, err = executeCommand(t, "url", "1", "2")
	assert.Error(t, err)
}

func TestURLCommand_UsesEnvironment(t *testing.T) {
	t.Setenv("JXLOGIN_PROVIDER_CLIENT_ID", "my-client")

	stdout, _, err := executeCommand(t, "url")
	require.NoError(t, err)
	assert.Contains(t, stdout, "client_id=my-client")
}
