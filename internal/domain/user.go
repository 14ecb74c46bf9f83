package domain

import "time"

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Sanitized returns a copy safe to hand past the application layer: the
// password hash is stripped and must never reach a transport.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}
