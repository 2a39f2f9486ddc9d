// Package models defines client-side data models for the roomatch client.
package models

// User is the identity record returned by the auth service.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Session is the client-held record of the current authentication state.
// It is mirrored verbatim into durable storage under the "auth" key, so the
// JSON field names match what the web client kept in localStorage.
//
// Invariant: IsAuthenticated is true if and only if both User and Token are
// present. Use Normalize after constructing or decoding a Session.
type Session struct {
	User            *User  `json:"user"`
	Token           string `json:"token"`
	IsAuthenticated bool   `json:"isAuthenticated"`
}

// NewSession builds an authenticated session from an auth response.
func NewSession(user *User, token string) Session {
	s := Session{User: user, Token: token}
	s.Normalize()
	return s
}

// Normalize recomputes IsAuthenticated from User and Token. Decoded or
// hand-built sessions may carry a stale flag; the stored fields win.
func (s *Session) Normalize() {
	s.IsAuthenticated = s.User != nil && s.Token != ""
}
