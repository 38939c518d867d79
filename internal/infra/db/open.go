// Package db opens the MongoDB client and prepares the collections it uses.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"news-explorer/internal/resilience/retry"
)

// ConnectionConfig holds MongoDB connection settings.
type ConnectionConfig struct {
	URI                    string
	Database               string
	AppName                string
	ServerSelectionTimeout time.Duration
	SocketTimeout          time.Duration
	MaxPoolSize            uint64
	RetryInterval          time.Duration
}

// DefaultConnectionConfig returns the default connection configuration.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		URI:                    "mongodb://127.0.0.1:27017/news_explorer",
		Database:               "news_explorer",
		AppName:                "news-explorer-api",
		ServerSelectionTimeout: 5 * time.Second,
		SocketTimeout:          45 * time.Second,
		MaxPoolSize:            100,
		RetryInterval:          5 * time.Second,
	}
}

func clientOptions(cfg ConnectionConfig) *options.ClientOptions {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetSocketTimeout(cfg.SocketTimeout)
	if cfg.AppName != "" {
		opts.SetAppName(cfg.AppName)
	}
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}
	return opts
}

// Open connects to MongoDB and verifies the primary is reachable.
// A failed attempt is logged and retried every RetryInterval until it
// succeeds or ctx is done. A malformed URI fails immediately.
func Open(ctx context.Context, cfg ConnectionConfig) (*mongo.Client, error) {
	opts := clientOptions(cfg)
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mongodb options: %w", err)
	}

	retryCfg := retry.DBConnectConfig()
	if cfg.RetryInterval > 0 {
		retryCfg.InitialDelay = cfg.RetryInterval
		retryCfg.MaxDelay = cfg.RetryInterval
	}

	var client *mongo.Client
	err := retry.WithBackoff(ctx, retryCfg, func() error {
		c, err := connectOnce(ctx, opts)
		if err != nil {
			slog.Error("mongodb connection failed",
				slog.Any("error", err),
				slog.Duration("retry_in", retryCfg.InitialDelay))
			return err
		}
		client = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("mongodb connection established",
		slog.String("database", cfg.Database),
		slog.Uint64("max_pool_size", cfg.MaxPoolSize))
	return client, nil
}

func connectOnce(ctx context.Context, opts *options.ClientOptions) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping: %w", err)
	}
	return client, nil
}
