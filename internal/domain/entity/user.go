package entity

import "time"

// User is an account able to save articles.
// PasswordHash never leaves the service layer; response DTOs omit it.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
