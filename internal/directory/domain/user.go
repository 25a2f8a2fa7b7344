package domain

import "time"

// User is a credential record. Email is stored lower-cased and is unique
// across all users.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // argon2 encoded
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity is the password-free projection of a User handed to callers
// after authentication. It never carries the password hash.
type Identity struct {
	ID    string
	Name  string
	Email string
	Role  Role
}

// Identity strips the credential down to its public projection.
func (u User) Identity() Identity {
	return Identity{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
