package callback

import (
	"fmt"
	"strconv"
	"strings"
)

// Token correlates a capture request with the login attempt that issued it.
// It travels through the identity provider as the OAuth2 state parameter.
type Token int64

// String renders the token the way it is embedded in the authorization URL:
// eight zero-padded decimal digits.
func (t Token) String() string {
	return fmt.Sprintf("%08d", int64(t))
}

// ParseToken parses a state parameter back into a Token.
// Leading zeros are accepted; negative values are rejected.
func ParseToken(state string) (Token, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(state), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid state %q: %w", state, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid state %q: negative token", state)
	}
	return Token(n), nil
}

// AuthTokens is the pair captured from the identity provider's redirect.
type AuthTokens struct {
	// Code is the authorization code.
	Code string

	// IDToken is the OpenID Connect identity token (a JWT, not verified here).
	IDToken string
}
