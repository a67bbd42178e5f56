// Package database provides MongoDB connection management.
package database

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Config holds database connection configuration.
type Config struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

// ConfigFromEnv creates a Config from environment variables.
// URI has no default: the document-store variant refuses to start without
// an explicit connection target.
func ConfigFromEnv() Config {
	timeout, err := time.ParseDuration(getEnvOrDefault("MONGO_CONNECT_TIMEOUT", "15s"))
	if err != nil {
		timeout = 15 * time.Second
	}

	return Config{
		URI:            strings.TrimSpace(os.Getenv("MONGO_URI")),
		Database:       getEnvOrDefault("MONGO_DB", "aquawatch"),
		ConnectTimeout: timeout,
	}
}

// RedactedURI returns the connection URI with credentials masked, safe for
// logging.
func (c Config) RedactedURI() string {
	u, err := url.Parse(c.URI)
	if err != nil || u.User == nil {
		return c.URI
	}
	u.User = url.UserPassword("****", "****")
	return u.String()
}

// Connect establishes and verifies a MongoDB connection.
// The returned client must be disconnected by the caller on shutdown.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	// Verify connection
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return client, nil
}

// EnsureIndexes creates the createdAt descending indexes the list queries
// sort on. Failures are returned for logging but are not fatal.
func EnsureIndexes(ctx context.Context, db *mongo.Database, collections ...string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var errs []string
	for _, name := range collections {
		_, err := db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "createdAt", Value: -1}},
		})
		if err != nil {
			errs = append(errs, name+": "+err.Error())
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("create indexes: %s", strings.Join(errs, "; "))
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
