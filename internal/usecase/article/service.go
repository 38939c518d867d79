package article

import (
	"context"
	"errors"
	"fmt"
	"time"

	"news-explorer/internal/domain/entity"
	"news-explorer/internal/observability/metrics"
	"news-explorer/internal/repository"
)

// SaveInput represents a validated article to be saved by its owner.
// A zero PublishedAt is replaced by the save time.
type SaveInput struct {
	Keyword     string
	Source      string
	Title       string
	Author      string
	Description string
	Content     string
	URL         string
	URLToImage  string
	PublishedAt time.Time
}

// Service provides article management use cases.
// It handles business logic for article operations and delegates persistence to the repository.
type Service struct {
	Repo repository.ArticleRepository

	// Now defaults to time.Now.
	Now func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// List returns the owner's saved articles, newest first.
func (s *Service) List(ctx context.Context, ownerID string) ([]*entity.Article, error) {
	articles, err := s.Repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	if articles == nil {
		articles = []*entity.Article{}
	}
	return articles, nil
}

// Save stores a new article owned by ownerID. The owner always comes from
// the verified principal, never from the request body.
func (s *Service) Save(ctx context.Context, ownerID string, in SaveInput) (*entity.Article, error) {
	publishedAt := in.PublishedAt
	if publishedAt.IsZero() {
		publishedAt = s.now()
	}

	article := &entity.Article{
		OwnerID:     ownerID,
		Keyword:     in.Keyword,
		Source:      in.Source,
		Title:       in.Title,
		Author:      in.Author,
		Description: in.Description,
		Content:     in.Content,
		URL:         in.URL,
		URLToImage:  in.URLToImage,
		PublishedAt: publishedAt,
	}

	if err := s.Repo.Create(ctx, article); err != nil {
		switch {
		case errors.Is(err, entity.ErrDuplicateKey):
			metrics.RecordArticleSaved(metrics.OutcomeConflict)
			return nil, ErrDuplicateArticle.Wrap(err)
		case errors.Is(err, entity.ErrValidationFailed):
			metrics.RecordArticleSaved(metrics.OutcomeInvalid)
			return nil, ErrInvalidArticle.Wrap(err)
		default:
			metrics.RecordArticleSaved(metrics.OutcomeError)
			return nil, fmt.Errorf("create article: %w", err)
		}
	}

	metrics.RecordArticleSaved(metrics.OutcomeSuccess)
	return article, nil
}

// Delete removes the article only when ownerID owns it. The ownership check
// and the removal are a single store operation.
func (s *Service) Delete(ctx context.Context, id, ownerID string) error {
	deleted, err := s.Repo.DeleteOwned(ctx, id, ownerID)
	if err != nil {
		metrics.RecordArticleDeleted(metrics.OutcomeError)
		return fmt.Errorf("delete article: %w", err)
	}
	if deleted == nil {
		metrics.RecordArticleDeleted(metrics.OutcomeNotFound)
		return ErrArticleNotFound
	}
	metrics.RecordArticleDeleted(metrics.OutcomeSuccess)
	return nil
}
