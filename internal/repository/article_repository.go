package repository

import (
	"context"

	"news-explorer/internal/domain/entity"
)

// ArticleRepository is the article store. Every read and delete is scoped to an owner.
//
// The (owner, url) pair is unique; Create returns an error wrapping
// entity.ErrDuplicateKey when it is violated.
type ArticleRepository interface {
	// ListByOwner returns the owner's articles, newest first. Never nil.
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.Article, error)
	// Create inserts the article and sets its ID and CreatedAt.
	Create(ctx context.Context, article *entity.Article) error
	// DeleteOwned removes the article matching both id and owner in a single
	// operation and returns it, or (nil, nil) when nothing matched.
	DeleteOwned(ctx context.Context, id, ownerID string) (*entity.Article, error)
}
