package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordCounters(t *testing.T) {
	tests := []struct {
		name   string
		record func(string)
		value  func(string) float64
	}{
		{
			name:   "signup",
			record: RecordSignup,
			value:  func(o string) float64 { return testutil.ToFloat64(SignupsTotal.WithLabelValues(o)) },
		},
		{
			name:   "login",
			record: RecordLogin,
			value:  func(o string) float64 { return testutil.ToFloat64(LoginsTotal.WithLabelValues(o)) },
		},
		{
			name:   "article saved",
			record: RecordArticleSaved,
			value:  func(o string) float64 { return testutil.ToFloat64(ArticlesSavedTotal.WithLabelValues(o)) },
		},
		{
			name:   "article deleted",
			record: RecordArticleDeleted,
			value:  func(o string) float64 { return testutil.ToFloat64(ArticlesDeletedTotal.WithLabelValues(o)) },
		},
		{
			name:   "news search",
			record: RecordNewsSearch,
			value:  func(o string) float64 { return testutil.ToFloat64(NewsSearchesTotal.WithLabelValues(o)) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.value(OutcomeSuccess)
			otherBefore := tt.value(OutcomeError)

			tt.record(OutcomeSuccess)
			tt.record(OutcomeSuccess)

			assert.Equal(t, before+2, tt.value(OutcomeSuccess))
			assert.Equal(t, otherBefore, tt.value(OutcomeError))
		})
	}
}

func TestRecordNewsCacheHit(t *testing.T) {
	before := testutil.ToFloat64(NewsCacheHitsTotal)

	RecordNewsCacheHit()

	assert.Equal(t, before+1, testutil.ToFloat64(NewsCacheHitsTotal))
}

func TestRecordDurations(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordNewsUpstream(150 * time.Millisecond)
		RecordNewsUpstream(0)
		RecordDBOperation("articles.insert", 3*time.Millisecond)
	})

	assert.Equal(t, 1, testutil.CollectAndCount(DBOperationDuration))
}

func TestRecordRateLimited(t *testing.T) {
	before := testutil.ToFloat64(RateLimitedTotal)

	RecordRateLimited(7)
	assert.Equal(t, before+1, testutil.ToFloat64(RateLimitedTotal))
	assert.Equal(t, 7.0, testutil.ToFloat64(RateLimitClients))

	RecordRateLimitClients(3)
	assert.Equal(t, 3.0, testutil.ToFloat64(RateLimitClients))
}
