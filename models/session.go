package models

// Session is the server-held record of an authenticated visitor: the
// canonical user copy plus the bearer token for the backend gateway. The
// two travel together and are cleared together.
type Session struct {
	SessionID string `json:"sessionId"`
	User      User   `json:"user"`
	AuthToken string `json:"authToken"`
}

// IsAuthenticated holds the token-presence invariant: a session is
// authenticated exactly when it carries a gateway token.
func (s Session) IsAuthenticated() bool {
	return s.AuthToken != ""
}
