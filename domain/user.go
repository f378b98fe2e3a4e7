package domain

import "time"

// User is the account record backing authentication.
type User struct {
	ID           UserID
	Email        string
	PasswordHash string
	Roles        []string
	CreatedAt    time.Time
}
