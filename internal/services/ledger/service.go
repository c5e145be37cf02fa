// Package ledger owns the anchor-score ledger: per-player non-negative
// counters and the rules for mutating them.
package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/model"
	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/storage"
)

// Operation names carried by StorageError
const (
	opGetOrCreate = "get_or_create"
	opRead        = "read"
	opIncrement   = "increment"
	opDecrement   = "decrement"
	opApplyDelta  = "apply_delta"
)

// Service provides ledger operations on top of a counter store
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new ledger service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// GetOrCreate returns the player's count, inserting a zero row on first
// reference. The row creation is a documented side effect relied on by
// the roster listing.
func (s *Service) GetOrCreate(ctx context.Context, id model.PlayerID) (int, error) {
	count, err := s.storage.GetOrCreateCount(ctx, id)
	if err != nil {
		return 0, &model.StorageError{Op: opGetOrCreate, PlayerID: id, Err: err}
	}
	return count, nil
}

// Read returns the player's current count, or 0 for a player that has
// never been referenced. It never creates a row.
func (s *Service) Read(ctx context.Context, id model.PlayerID) (int, error) {
	count, err := s.storage.ReadCount(ctx, id)
	if err != nil {
		return 0, &model.StorageError{Op: opRead, PlayerID: id, Err: err}
	}
	return count, nil
}

// Increment adds step (positive) to the player's count and returns the
// new value. A missing row counts as zero before the addition.
func (s *Service) Increment(ctx context.Context, id model.PlayerID, step int) (int, error) {
	if step < 1 {
		return 0, fmt.Errorf("%w: %d", model.ErrInvalidStep, step)
	}

	count, err := s.storage.ApplyDelta(ctx, id, step)
	if err != nil {
		return 0, &model.StorageError{Op: opIncrement, PlayerID: id, Err: err}
	}

	s.logger.Debug("incremented anchor count",
		slog.String("player_id", string(id)),
		slog.Int("step", step),
		slog.Int("count", count),
	)
	return count, nil
}

// DecrementByOne subtracts 1 from the player's count unless it is
// already 0, in which case the count stays at 0. Returns the resulting
// count either way.
func (s *Service) DecrementByOne(ctx context.Context, id model.PlayerID) (int, error) {
	count, err := s.storage.ApplyDelta(ctx, id, -1)
	if err != nil {
		return 0, &model.StorageError{Op: opDecrement, PlayerID: id, Err: err}
	}

	s.logger.Debug("decremented anchor count",
		slog.String("player_id", string(id)),
		slog.Int("count", count),
	)
	return count, nil
}

// ApplyDelta sets the player's count to max(0, current+delta) and
// returns the result. This is the general-purpose mutation the scoring
// policy is applied through; Increment and DecrementByOne are
// specializations kept for the simple event endpoints.
func (s *Service) ApplyDelta(ctx context.Context, id model.PlayerID, delta int) (int, error) {
	count, err := s.storage.ApplyDelta(ctx, id, delta)
	if err != nil {
		return 0, &model.StorageError{Op: opApplyDelta, PlayerID: id, Err: err}
	}

	s.logger.Debug("applied anchor delta",
		slog.String("player_id", string(id)),
		slog.Int("delta", delta),
		slog.Int("count", count),
	)
	return count, nil
}

// Counts reads the current count for every given player
func (s *Service) Counts(ctx context.Context, ids []model.PlayerID) (map[model.PlayerID]int, error) {
	counts := make(map[model.PlayerID]int, len(ids))
	for _, id := range ids {
		count, err := s.Read(ctx, id)
		if err != nil {
			return nil, err
		}
		counts[id] = count
	}
	return counts, nil
}
