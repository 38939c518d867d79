package metrics

import "time"

// RecordSignup records the outcome of a registration attempt.
func RecordSignup(outcome string) {
	SignupsTotal.WithLabelValues(outcome).Inc()
}

// RecordLogin records the outcome of a signin attempt.
func RecordLogin(outcome string) {
	LoginsTotal.WithLabelValues(outcome).Inc()
}

// RecordArticleSaved records the outcome of saving an article.
func RecordArticleSaved(outcome string) {
	ArticlesSavedTotal.WithLabelValues(outcome).Inc()
}

// RecordArticleDeleted records the outcome of deleting an article.
// A delete aimed at another owner's article counts as not_found.
func RecordArticleDeleted(outcome string) {
	ArticlesDeletedTotal.WithLabelValues(outcome).Inc()
}

// RecordNewsSearch records the outcome of a news search.
func RecordNewsSearch(outcome string) {
	NewsSearchesTotal.WithLabelValues(outcome).Inc()
}

// RecordNewsCacheHit records a search answered without calling the provider.
func RecordNewsCacheHit() {
	NewsCacheHitsTotal.Inc()
}

// RecordNewsUpstream records how long the provider took to answer.
//
// Example:
//
//	start := time.Now()
//	body, err := client.fetch(ctx, q)
//	metrics.RecordNewsUpstream(time.Since(start))
func RecordNewsUpstream(duration time.Duration) {
	NewsUpstreamDuration.Observe(duration.Seconds())
}

// RecordDBOperation records the duration of a store operation.
// Operation should name the call (e.g., "users.find_by_email", "articles.insert").
func RecordDBOperation(operation string, duration time.Duration) {
	DBOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordRateLimited records a rejected request and the current number of
// tracked clients.
func RecordRateLimited(trackedClients int) {
	RateLimitedTotal.Inc()
	RateLimitClients.Set(float64(trackedClients))
}

// RecordRateLimitClients updates the tracked client gauge.
func RecordRateLimitClients(trackedClients int) {
	RateLimitClients.Set(float64(trackedClients))
}
