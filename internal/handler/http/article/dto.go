// Package article provides the HTTP handlers for an owner's saved articles:
// listing, saving and deleting. Every route requires a bearer token.
package article

import (
	"time"

	"news-explorer/internal/domain/entity"
)

// MsgDeleted confirms a successful delete.
const MsgDeleted = "Article deleted successfully"

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID          string    `json:"_id"`
	Owner       string    `json:"owner"`
	Keyword     string    `json:"keyword"`
	Source      string    `json:"source"`
	Title       string    `json:"title"`
	Author      string    `json:"author,omitempty"`
	Description string    `json:"description,omitempty"`
	Content     string    `json:"content"`
	URL         string    `json:"url"`
	URLToImage  string    `json:"urlToImage,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toDTO(a *entity.Article) DTO {
	return DTO{
		ID:          a.ID,
		Owner:       a.OwnerID,
		Keyword:     a.Keyword,
		Source:      a.Source,
		Title:       a.Title,
		Author:      a.Author,
		Description: a.Description,
		Content:     a.Content,
		URL:         a.URL,
		URLToImage:  a.URLToImage,
		PublishedAt: a.PublishedAt,
		CreatedAt:   a.CreatedAt,
	}
}
