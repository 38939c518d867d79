// Package article provides use cases for an owner's saved articles:
// listing, saving and deleting. Every operation is scoped to the owner.
package article

import "news-explorer/internal/domain/entity"

// Declared failures. Callers compare with errors.Is; wrapped copies match.
var (
	// ErrDuplicateArticle indicates the owner already saved an article with this URL.
	// Other owners may save the same URL.
	ErrDuplicateArticle = entity.Conflict("Duplicate article already saved")

	// ErrInvalidArticle indicates the store refused the document as malformed.
	ErrInvalidArticle = entity.BadRequest("Validation Failed")

	// ErrArticleNotFound is returned for a missing article and for another
	// owner's article alike, so existence is never disclosed.
	ErrArticleNotFound = entity.NotFound("Article not found or you do not have permission")
)
