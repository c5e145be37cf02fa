package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/model"
	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/storage"
)

// applyDeltaScript adjusts a counter and floors the result at zero.
// Scripts execute atomically on the server, so the whole
// read-modify-write is one step: same-player mutations serialize with
// no lost updates and no negative value is ever stored or observed.
var applyDeltaScript = redis.NewScript(`
local v = redis.call('INCRBY', KEYS[1], ARGV[1])
if v < 0 then
  redis.call('SET', KEYS[1], '0')
  v = 0
end
return v
`)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) GetOrCreateCount(ctx context.Context, id model.PlayerID) (int, error) {
	key := countKey(id)

	// SETNX makes concurrent first access race-free: exactly one caller
	// inserts the zero row, everyone else reads whatever is stored.
	created, err := s.client.SetNX(ctx, key, 0, 0).Result()
	if err != nil {
		return 0, err
	}
	if created {
		return 0, nil
	}

	return s.readKey(ctx, key)
}

func (s *Storage) ReadCount(ctx context.Context, id model.PlayerID) (int, error) {
	return s.readKey(ctx, countKey(id))
}

func (s *Storage) ApplyDelta(ctx context.Context, id model.PlayerID, delta int) (int, error) {
	count, err := applyDeltaScript.Run(ctx, s.client, []string{countKey(id)}, delta).Int()
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *Storage) readKey(ctx context.Context, key string) (int, error) {
	count, err := s.client.Get(ctx, key).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return count, nil
}
