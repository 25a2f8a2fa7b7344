package domain

import "time"

// Session is one authenticated caller context. Only the SHA-256 fingerprint
// of the opaque session token is persisted; the raw token is handed out
// once at login/registration and never stored.
type Session struct {
	ID        string
	TokenHash string
	UserID    string
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Live reports whether the session is usable at the given instant.
func (s Session) Live(now time.Time) bool {
	return !s.Revoked && now.Before(s.ExpiresAt)
}
