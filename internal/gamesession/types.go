package gamesession

// Session is the identifier returned by the session endpoint. It authorizes the
// account lookup and is printed for the user, never stored.
type Session string

// Account is one playable account (character) of a session.
type Account struct {
	DisplayName string `json:"displayName"`
	AccountID   string `json:"accountId"`
}

type sessionRequest struct {
	IDToken string `json:"idToken"`
}

type sessionResponse struct {
	SessionID *string `json:"sessionId"`
}
