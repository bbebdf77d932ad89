// Package factory wires application components.
package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mkoehn/suchselgen/internal/dependencies/clock"
	"github.com/mkoehn/suchselgen/internal/dependencies/random"
	"github.com/mkoehn/suchselgen/internal/storage"
	"github.com/mkoehn/suchselgen/internal/storage/memory"
	redisstorage "github.com/mkoehn/suchselgen/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	Storage storage.Storage
	Clock   clock.Clock
	Random  random.Random
	Logger  *slog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	var store storage.Storage
	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	return &App{
		Storage: store,
		Clock:   clock.New(),
		Random:  random.New(),
		Logger:  logger,
	}, nil
}
