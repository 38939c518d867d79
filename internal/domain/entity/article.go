// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects, User and Article, along with
// their validation rules and the domain error taxonomy.
package entity

import "time"

// Article is a news article saved by a user.
// ID and OwnerID are 24-character hex object identifiers.
type Article struct {
	ID          string
	OwnerID     string
	Keyword     string
	Source      string
	Title       string
	Author      string
	Description string
	Content     string
	URL         string
	URLToImage  string
	PublishedAt time.Time
	CreatedAt   time.Time
}
