package news

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"news-explorer/internal/observability/metrics"
)

// DefaultSortBy is used when the caller does not choose an order.
const DefaultSortBy = "publishedAt"

// Query is a news search request. From and To are passed to the provider
// verbatim.
type Query struct {
	Q      string
	From   string
	To     string
	SortBy string
}

// Provider searches an external news source and returns its JSON body unchanged.
type Provider interface {
	Search(ctx context.Context, q Query) (json.RawMessage, error)
}

// Service provides the news search use case.
type Service struct {
	Provider Provider
}

// Search validates q and forwards it to the provider.
// Every provider failure surfaces as ErrFetchFailed.
func (s *Service) Search(ctx context.Context, q Query) (json.RawMessage, error) {
	q.Q = strings.TrimSpace(q.Q)
	if q.Q == "" {
		metrics.RecordNewsSearch(metrics.OutcomeInvalid)
		return nil, ErrQueryRequired
	}
	if q.SortBy == "" {
		q.SortBy = DefaultSortBy
	}

	body, err := s.Provider.Search(ctx, q)
	if err != nil {
		if errors.Is(err, ErrUnavailable) {
			metrics.RecordNewsSearch(metrics.OutcomeRejected)
		} else {
			metrics.RecordNewsSearch(metrics.OutcomeUpstream)
		}
		return nil, ErrFetchFailed.Wrap(err)
	}

	metrics.RecordNewsSearch(metrics.OutcomeSuccess)
	return body, nil
}
