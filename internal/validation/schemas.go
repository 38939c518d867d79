package validation

import (
	"strings"
	"time"

	"news-explorer/internal/domain/entity"
)

// SignupRequest is the body of POST /auth/signup.
// The password is capped at 72 bytes, the most bcrypt hashes.
type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,maxbytes=72,password_strength"`
}

// ValidationMessages implements Schema.
func (SignupRequest) ValidationMessages() Messages {
	return Messages{
		"name.required":              `The "name" field is required`,
		"name.min":                   `The minimum length of the "name" field is 2`,
		"name.max":                   `The maximum length of the "name" field is 30`,
		"email.required":             `The "email" field is required`,
		"email.email":                `The "email" field must be a valid email address`,
		"password.required":          `The "password" field is required`,
		"password.min":               "Password must be at least 8 characters long",
		"password.maxbytes":          "Password must be at most 72 bytes long",
		"password.password_strength": "Password must contain at least one uppercase letter, one lowercase letter, and one number",
	}
}

// Normalize trims the name and email before validation.
func (r *SignupRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
}

// MsgCredentialsRequired is reported when either signin field is missing.
const MsgCredentialsRequired = "Email and password are required"

// SigninRequest is the body of POST /auth/signin.
type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ValidationMessages implements Schema.
func (SigninRequest) ValidationMessages() Messages {
	return Messages{
		"email.required":    MsgCredentialsRequired,
		"email.email":       `The "email" field must be a valid email address`,
		"password.required": MsgCredentialsRequired,
	}
}

// MsgInvalidPublishedAt is reported when publishedAt is not RFC 3339.
const MsgInvalidPublishedAt = `The "publishedAt" field must be an RFC 3339 timestamp`

// ArticleRequest is the body of POST /articles.
// PublishedAt is kept as text so a malformed timestamp is reported per field.
type ArticleRequest struct {
	Keyword     string `json:"keyword" validate:"required,min=2,max=30"`
	Source      string `json:"source" validate:"omitempty,max=100"`
	Title       string `json:"title" validate:"required,min=2"`
	Author      string `json:"author" validate:"omitempty,max=200"`
	Description string `json:"description"`
	Content     string `json:"content" validate:"required"`
	URL         string `json:"url" validate:"required,weburl"`
	URLToImage  string `json:"urlToImage" validate:"omitempty,weburl"`
	PublishedAt string `json:"publishedAt" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

// ValidationMessages implements Schema.
func (ArticleRequest) ValidationMessages() Messages {
	return Messages{
		"keyword.required":     `The "keyword" field is required`,
		"keyword.min":          `The minimum length of the "keyword" field is 2`,
		"keyword.max":          `The maximum length of the "keyword" field is 30`,
		"source.max":           `The maximum length of the "source" field is 100`,
		"title.required":       `The "title" field is required`,
		"title.min":            "Title name must be at least 2 characters long",
		"author.max":           `The maximum length of the "author" field is 200`,
		"content.required":     `The "content" field is required`,
		"url.required":         `The "url" field is required`,
		"url.weburl":           "Must be a valid URL",
		"urlToImage.weburl":    "You must enter a valid URL",
		"publishedAt.datetime": MsgInvalidPublishedAt,
	}
}

// PublishedTime parses PublishedAt. An empty value yields the zero time.
func (r ArticleRequest) PublishedTime() (time.Time, error) {
	if r.PublishedAt == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, r.PublishedAt)
	if err != nil {
		return time.Time{}, &entity.ValidationError{Field: "publishedAt", Message: MsgInvalidPublishedAt}
	}
	return t, nil
}
