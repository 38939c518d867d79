// Package config assembles the API configuration from the environment and
// an optional YAML security policy file.
//
// Precedence, lowest first: built-in defaults, the CONFIG_FILE policy,
// environment variables.
package config

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"golang.org/x/crypto/bcrypt"

	authsvc "news-explorer/internal/service/auth"
	envcfg "news-explorer/pkg/config"
)

// Deployment environments accepted in APP_ENV.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// DefaultProductionOrigin is always allowed outside development.
const DefaultProductionOrigin = "http://localhost:5000"

// Config is the complete runtime configuration.
type Config struct {
	Env       string
	Port      int
	APIPrefix string
	Version   string

	LogLevel  string
	LogFormat string

	MongoURI      string
	MongoDatabase string

	JWTSecret  string
	JWTTTL     time.Duration
	BcryptCost int

	NewsAPIKey    string
	NewsAPIURL    string
	NewsCacheTTL  time.Duration
	NewsCacheSize int

	FrontendURL        string
	CORSAllowedOrigins []string

	RateLimitEnabled bool
	RateLimitRPS     float64
	RateLimitBurst   int
	TrustedProxies   []string

	MaxBodyBytes     int64
	ShutdownTimeout  time.Duration
	TraceSampleRatio float64
}

// Defaults returns the configuration used when nothing is set.
// JWTSecret has no default.
func Defaults() Config {
	return Config{
		Env:              EnvProduction,
		Port:             3001,
		APIPrefix:        "/api",
		Version:          "dev",
		LogLevel:         "info",
		MongoURI:         "mongodb://127.0.0.1:27017/news_explorer",
		MongoDatabase:    "news_explorer",
		JWTTTL:           authsvc.DefaultTokenTTL,
		BcryptCost:       bcrypt.DefaultCost,
		NewsAPIURL:       "https://newsapi.org/v2/everything",
		NewsCacheTTL:     5 * time.Minute,
		NewsCacheSize:    256,
		FrontendURL:      "http://localhost:3000",
		RateLimitEnabled: true,
		RateLimitRPS:     100.0 / 900.0,
		RateLimitBurst:   100,
		MaxBodyBytes:     1 << 20,
		ShutdownTimeout:  10 * time.Second,
		TraceSampleRatio: 1,
	}
}

// Load reads CONFIG_FILE (when set) and the environment, then validates.
func Load() (*Config, error) {
	cfg := Defaults()

	if path := envcfg.GetEnvString("CONFIG_FILE", ""); path != "" {
		sec, err := LoadSecurityConfig(path)
		if err != nil {
			return nil, err
		}
		cfg.applySecurity(sec)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applySecurity(sec *SecurityConfig) {
	if h := sec.Security.JWT.ExpiryHours; h > 0 {
		c.JWTTTL = time.Duration(h) * time.Hour
	}
	if cost := sec.Security.Password.BcryptCost; cost > 0 {
		c.BcryptCost = cost
	}
	if len(sec.Security.CORS.AllowedOrigins) > 0 {
		c.CORSAllowedOrigins = sec.Security.CORS.AllowedOrigins
	}
	if len(sec.Security.TrustedProxies) > 0 {
		c.TrustedProxies = sec.Security.TrustedProxies
	}
}

// applyEnv overrides each field whose variable is set. The current value is
// the fallback, so file and default values survive unset variables.
func (c *Config) applyEnv() {
	c.Env = envcfg.GetEnvString("APP_ENV", c.Env)
	c.Port = envcfg.GetEnvInt("PORT", c.Port)
	c.APIPrefix = envcfg.GetEnvString("API_PREFIX", c.APIPrefix)
	c.Version = envcfg.GetEnvString("VERSION", c.Version)

	c.LogLevel = envcfg.GetEnvString("LOG_LEVEL", c.LogLevel)
	c.LogFormat = envcfg.GetEnvString("LOG_FORMAT", c.LogFormat)

	c.MongoURI = envcfg.GetEnvString("MONGODB_URI", c.MongoURI)
	c.MongoDatabase = envcfg.GetEnvString("MONGODB_DATABASE", c.MongoDatabase)

	c.JWTSecret = envcfg.GetEnvString("JWT_SECRET", c.JWTSecret)
	c.JWTTTL = envcfg.GetEnvDuration("JWT_TTL", c.JWTTTL)
	c.BcryptCost = envcfg.GetEnvInt("BCRYPT_COST", c.BcryptCost)

	c.NewsAPIKey = envcfg.GetEnvString("NEWS_API_KEY", c.NewsAPIKey)
	c.NewsAPIURL = envcfg.GetEnvString("NEWS_API_URL", c.NewsAPIURL)
	c.NewsCacheTTL = envcfg.GetEnvDuration("NEWS_CACHE_TTL", c.NewsCacheTTL)
	c.NewsCacheSize = envcfg.GetEnvInt("NEWS_CACHE_SIZE", c.NewsCacheSize)

	c.FrontendURL = envcfg.GetEnvString("FRONTEND_URL", c.FrontendURL)
	c.CORSAllowedOrigins = envcfg.GetEnvStringList("CORS_ALLOWED_ORIGINS", c.CORSAllowedOrigins)

	c.RateLimitEnabled = envcfg.GetEnvBool("RATE_LIMIT_ENABLED", c.RateLimitEnabled)
	c.RateLimitRPS = envcfg.GetEnvFloat("RATE_LIMIT_RPS", c.RateLimitRPS)
	c.RateLimitBurst = envcfg.GetEnvInt("RATE_LIMIT_BURST", c.RateLimitBurst)
	c.TrustedProxies = envcfg.GetEnvStringList("TRUSTED_PROXIES", c.TrustedProxies)

	c.MaxBodyBytes = envcfg.GetEnvInt64("MAX_BODY_BYTES", c.MaxBodyBytes)
	c.ShutdownTimeout = envcfg.GetEnvDuration("SHUTDOWN_TIMEOUT", c.ShutdownTimeout)
	c.TraceSampleRatio = envcfg.GetEnvFloat("TRACE_SAMPLE_RATIO", c.TraceSampleRatio)
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if !slices.Contains([]string{EnvDevelopment, EnvProduction, EnvTest}, c.Env) {
		errs = append(errs, fmt.Errorf("APP_ENV must be one of development, production, test; got %q", c.Env))
	}
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}
	if c.APIPrefix != "" && (c.APIPrefix[0] != '/' || c.APIPrefix[len(c.APIPrefix)-1] == '/') {
		errs = append(errs, fmt.Errorf("API_PREFIX must start with / and not end with /, got %q", c.APIPrefix))
	}
	if c.MongoURI == "" {
		errs = append(errs, errors.New("MONGODB_URI must be set"))
	}
	if err := authsvc.ValidateSecret(c.JWTSecret); err != nil {
		errs = append(errs, err)
	}
	if err := envcfg.ValidateDurationRange(c.JWTTTL, time.Minute, 30*24*time.Hour); err != nil {
		errs = append(errs, fmt.Errorf("JWT_TTL: %w", err))
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost))
	}
	if c.RateLimitEnabled && (c.RateLimitRPS <= 0 || c.RateLimitBurst < 1) {
		errs = append(errs, errors.New("RATE_LIMIT_RPS must be positive and RATE_LIMIT_BURST at least 1"))
	}
	if c.MaxBodyBytes <= 0 {
		errs = append(errs, errors.New("MAX_BODY_BYTES must be positive"))
	}
	if err := envcfg.ValidatePositiveDuration(c.ShutdownTimeout); err != nil {
		errs = append(errs, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err))
	}
	if c.TraceSampleRatio < 0 || c.TraceSampleRatio > 1 {
		errs = append(errs, errors.New("TRACE_SAMPLE_RATIO must be between 0 and 1"))
	}

	return errors.Join(errs...)
}

// IsDevelopment reports whether APP_ENV is development.
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

// AllowedOrigins returns the CORS origins: FRONTEND_URL in development,
// otherwise DefaultProductionOrigin. CORS_ALLOWED_ORIGINS is appended in
// both cases.
func (c *Config) AllowedOrigins() []string {
	base := DefaultProductionOrigin
	if c.IsDevelopment() {
		base = c.FrontendURL
	}

	origins := []string{base}
	for _, o := range c.CORSAllowedOrigins {
		if !slices.Contains(origins, o) {
			origins = append(origins, o)
		}
	}
	return origins
}
