package models

import "time"

// Session binds one client to one authenticated user. It is created on
// login/register, looked up on every request carrying its token and removed
// on logout.
type Session struct {
	ID        string    `json:"id"`
	UserID    int       `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is no longer valid at t.
func (s *Session) Expired(t time.Time) bool {
	return !t.Before(s.ExpiresAt)
}
