package storage

import (
	"context"

	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/model"
)

// Storage defines the interface for anchor counter persistence.
// One row per player: player id and a non-negative count.
//
// Implementations must make each mutation a single atomic
// read-modify-write on that player's counter: concurrent mutations of
// the same player serialize with no lost updates, mutations of
// different players never block each other, and no caller ever
// observes a negative count.
type Storage interface {
	// GetOrCreateCount returns the stored count for the player,
	// inserting a zero row if none exists. Concurrent first access for
	// the same player must still produce exactly one row.
	GetOrCreateCount(ctx context.Context, id model.PlayerID) (int, error)

	// ReadCount returns the stored count, or 0 if the player has no
	// row. It never creates a row.
	ReadCount(ctx context.Context, id model.PlayerID) (int, error)

	// ApplyDelta atomically sets the count to max(0, current+delta)
	// and returns the result. A missing row is treated as a count of 0.
	ApplyDelta(ctx context.Context, id model.PlayerID, delta int) (int, error)
}
