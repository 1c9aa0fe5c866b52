package entities

import "time"

// Session is a signed-in staff member's session
type Session struct {
	Email      string    `json:"email"`
	RememberMe bool      `json:"remember_me"`
	IssuedAt   time.Time `json:"issued_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// Lifetime returns how long the session stays valid after it was issued
func (s Session) Lifetime() time.Duration {
	return s.ExpiresAt.Sub(s.IssuedAt)
}
