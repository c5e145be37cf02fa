package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/directory"
	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/services/ledger"
	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/services/roster"
	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/storage"
	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/storage/memory"
	redisstorage "github.com/preakznuffsaid/faceit-anchor-tracker/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External lookups
	Directory directory.Directory

	// Services
	LedgerService *ledger.Service
	RosterService *roster.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Handles is the ordered list of FACEIT nicknames to track
	Handles []string
	// Directory resolves handles to profiles (optional)
	// If nil, a FACEIT Data API client is built from the key and base URL
	Directory directory.Directory
	// FaceitAPIKey authenticates the FACEIT client (used when Directory is nil)
	FaceitAPIKey string
	// FaceitBaseURL overrides the FACEIT API base URL (used when Directory is nil)
	FaceitBaseURL string
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
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

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

	dir := cfg.Directory
	if dir == nil {
		dir = directory.NewClient(cfg.FaceitBaseURL, cfg.FaceitAPIKey)
	}

	ledgerService := ledger.New(store, logger)
	rosterService := roster.New(cfg.Handles, dir, ledgerService, logger)

	return &App{
		Storage:       store,
		Directory:     dir,
		LedgerService: ledgerService,
		RosterService: rosterService,
	}, nil
}
