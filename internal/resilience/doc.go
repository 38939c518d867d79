// Package resilience provides reliability and fault tolerance patterns for the application.
//
// The package supports:
//   - Circuit breakers around the upstream news provider
//   - Retry logic with exponential backoff and jitter, including an unbounded
//     mode used while waiting for the database at startup
//
// Usage Example:
//
//	cb := circuitbreaker.New(circuitbreaker.NewsAPIConfig(nil))
//	result, err := cb.Execute(func() (interface{}, error) {
//	    return callExternalService()
//	})
//
//	err := retry.WithBackoff(ctx, retry.DBConnectConfig(), func() error {
//	    return connect(ctx)
//	})
package resilience
