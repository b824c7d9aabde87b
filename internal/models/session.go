package models

import "time"

// Session is a server-side session record. The authenticated user's public
// fields are stored by value so protected requests never hit the users table.
type Session struct {
	ID        string    `json:"session_id"`
	User      User      `json:"user"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session's lifetime has passed at t.
func (s *Session) Expired(t time.Time) bool {
	return !t.Before(s.ExpiresAt)
}
