// Package user provides the HTTP handlers for signup, signin and the
// signed-in user's profile.
package user

import "news-explorer/internal/domain/entity"

// DTO is the public view of an account. It never carries the password hash.
type DTO struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginResponse is returned by a successful signin.
type LoginResponse struct {
	Token string `json:"token"`
	User  DTO    `json:"user"`
}

func toDTO(u *entity.User) DTO {
	return DTO{ID: u.ID, Name: u.Name, Email: u.Email}
}
