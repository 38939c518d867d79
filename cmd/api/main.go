package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"

	"news-explorer/internal/config"
	"news-explorer/internal/infra/adapter/persistence/mongodb"
	"news-explorer/internal/infra/db"
	"news-explorer/internal/infra/newsapi"
	"news-explorer/internal/observability/logging"
	"news-explorer/internal/observability/tracing"
	authsvc "news-explorer/internal/service/auth"
	"news-explorer/internal/validation"

	artUC "news-explorer/internal/usecase/article"
	newsUC "news-explorer/internal/usecase/news"
	userUC "news-explorer/internal/usecase/user"

	hhttp "news-explorer/internal/handler/http"
	"news-explorer/internal/handler/http/middleware"
	"news-explorer/internal/handler/http/requestid"
)

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := initLogger(cfg)

	shutdownTracing, err := tracing.Init(tracing.Config{
		ServiceName: "news-explorer-api",
		Version:     cfg.Version,
		Environment: cfg.Env,
		SampleRatio: cfg.TraceSampleRatio,
	})
	if err != nil {
		logger.Error("failed to initialize tracing", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, database := initDatabase(ctx, logger, cfg)
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
		if err := shutdownTracing(disconnectCtx); err != nil {
			logger.Error("failed to shut down tracing", slog.Any("error", err))
		}
	}()

	handler, err := setupServer(logger, cfg, client, database)
	if err != nil {
		logger.Error("failed to set up server", slog.Any("error", err))
		os.Exit(1)
	}

	runServer(ctx, logger, cfg, handler)
}

// initLogger builds the process logger and makes it the slog default.
func initLogger(cfg *config.Config) *slog.Logger {
	format := cfg.LogFormat
	if format == "" && cfg.IsDevelopment() {
		format = logging.FormatText
	}
	logger := logging.New(os.Stdout, logging.ParseLevel(cfg.LogLevel), format)
	slog.SetDefault(logger)
	return logger
}

// initDatabase connects to MongoDB, retrying until ctx is cancelled, and
// installs the collection validators and indexes the stores rely on.
func initDatabase(ctx context.Context, logger *slog.Logger, cfg *config.Config) (*mongo.Client, *mongo.Database) {
	connCfg := db.DefaultConnectionConfig()
	connCfg.URI = cfg.MongoURI
	connCfg.Database = cfg.MongoDatabase

	client, err := db.Open(ctx, connCfg)
	if err != nil {
		logger.Error("failed to connect to mongodb", slog.Any("error", err))
		os.Exit(1)
	}

	database := client.Database(cfg.MongoDatabase)
	if err := db.EnsureValidators(ctx, database); err != nil {
		logger.Error("failed to install collection validators", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.EnsureIndexes(ctx, database); err != nil {
		logger.Error("failed to create indexes", slog.Any("error", err))
		os.Exit(1)
	}
	return client, database
}

// setupServer wires stores, use cases and routes and returns the handler
// wrapped in the middleware chain.
func setupServer(logger *slog.Logger, cfg *config.Config, client *mongo.Client, database *mongo.Database) (http.Handler, error) {
	hasher := authsvc.NewBcryptHasher(cfg.BcryptCost)
	tokens := authsvc.NewTokenService([]byte(cfg.JWTSecret), cfg.JWTTTL)

	newsCfg := newsapi.DefaultConfig()
	newsCfg.BaseURL = cfg.NewsAPIURL
	newsCfg.APIKey = cfg.NewsAPIKey
	newsCfg.CacheTTL = cfg.NewsCacheTTL
	newsCfg.CacheSize = cfg.NewsCacheSize
	newsClient := newsapi.New(newsCfg)
	if !newsClient.Configured() {
		logger.Warn("NEWS_API_KEY is not set; news search will fail")
	}

	router := hhttp.NewRouter(hhttp.RouterConfig{
		Prefix:    cfg.APIPrefix,
		Users:     &userUC.Service{Repo: mongodb.NewUserRepo(database, hasher), Hasher: hasher, Tokens: tokens},
		Articles:  &artUC.Service{Repo: mongodb.NewArticleRepo(database)},
		News:      &newsUC.Service{Provider: newsClient},
		Tokens:    tokens,
		Validator: validation.New(),
		Health:    &hhttp.HealthHandler{DB: client, News: newsClient, Version: cfg.Version},
	})

	return applyMiddleware(logger, cfg, router)
}

// applyMiddleware wraps the handler with the middleware chain.
// Order: CORS → Request ID → Tracing → IP Rate Limit → Logging → Recovery →
// Body Limit → Security Headers → Metrics.
func applyMiddleware(logger *slog.Logger, cfg *config.Config, handler http.Handler) (http.Handler, error) {
	corsConfig := middleware.DefaultCORSConfig(cfg.AllowedOrigins())
	logger.Info("CORS enabled",
		slog.Any("allowed_origins", corsConfig.AllowedOrigins),
		slog.Any("allowed_methods", corsConfig.AllowedMethods))

	chain := []hhttp.Middleware{
		middleware.CORS(corsConfig),
		requestid.Middleware,
		tracing.Middleware,
	}

	if cfg.RateLimitEnabled {
		proxies, err := middleware.ParseTrustedProxies(cfg.TrustedProxies)
		if err != nil {
			return nil, fmt.Errorf("trusted proxies: %w", err)
		}

		rlCfg := middleware.DefaultRateLimitConfig()
		rlCfg.RequestsPerSecond = cfg.RateLimitRPS
		rlCfg.Burst = cfg.RateLimitBurst
		limiter, err := middleware.NewIPRateLimiter(rlCfg, middleware.NewIPExtractor(proxies))
		if err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}
		chain = append(chain, limiter.Middleware)

		logger.Info("rate limiting initialized",
			slog.Float64("requests_per_second", rlCfg.RequestsPerSecond),
			slog.Int("burst", rlCfg.Burst),
			slog.Bool("trusted_proxies", proxies.Enabled))
	} else {
		logger.Warn("rate limiting is DISABLED - not recommended for production")
	}

	chain = append(chain,
		hhttp.Logging(logger),
		hhttp.Recover(logger),
		hhttp.LimitRequestBody(cfg.MaxBodyBytes),
		middleware.SecurityHeaders(!cfg.IsDevelopment()),
		hhttp.MetricsMiddleware,
	)
	return hhttp.Chain(handler, chain...), nil
}

// runServer serves until ctx is cancelled, then drains in-flight requests.
func runServer(ctx context.Context, logger *slog.Logger, cfg *config.Config, handler http.Handler) {
	addr := ":" + strconv.Itoa(cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			slog.String("addr", addr),
			slog.String("prefix", cfg.APIPrefix),
			slog.String("env", cfg.Env),
			slog.String("version", cfg.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down server...")
	case err := <-errCh:
		logger.Error("server failed", slog.Any("error", err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
