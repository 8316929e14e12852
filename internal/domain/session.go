package domain

import "time"

// Session binds a browser cookie to the backend token and user it signed in with.
type Session struct {
	ID        string
	Token     string
	User      User
	CreatedAt time.Time
	ExpiresAt *time.Time
}

func (s *Session) Expired(now time.Time) bool {
	return s.ExpiresAt != nil && !now.Before(*s.ExpiresAt)
}
