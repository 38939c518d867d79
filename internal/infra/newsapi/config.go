package newsapi

import "time"

// DefaultBaseURL is the provider's "everything" search endpoint.
const DefaultBaseURL = "https://newsapi.org/v2/everything"

// Config holds news provider client settings.
type Config struct {
	BaseURL string
	APIKey  string

	// Timeout bounds one search including retries.
	Timeout time.Duration

	// MaxBodyBytes caps the provider response size.
	MaxBodyBytes int64

	// CacheTTL is how long a response is reused. Zero disables the cache.
	CacheTTL  time.Duration
	CacheSize int
}

// DefaultConfig returns the default client configuration without an API key.
func DefaultConfig() Config {
	return Config{
		BaseURL:      DefaultBaseURL,
		Timeout:      10 * time.Second,
		MaxBodyBytes: 5 << 20,
		CacheTTL:     5 * time.Minute,
		CacheSize:    256,
	}
}
