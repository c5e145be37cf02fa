package model

import (
	"errors"
	"fmt"
)

// Common errors used across the application
var (
	// Directory errors
	ErrProfileNotFound = errors.New("player profile not found")

	// Ledger errors
	ErrInvalidStep = errors.New("increment step must be positive")

	// Scoring errors
	ErrUnknownEvent = errors.New("unknown event kind")

	// Session errors
	ErrNoActiveSession   = errors.New("no active session")
	ErrNotInActiveRoster = errors.New("player is not in the active roster")
)

// StorageError reports a counter-store failure, carrying the ledger
// operation that failed and the player it was addressed to. The ledger
// guarantees the counter is unchanged when one of these is returned.
type StorageError struct {
	Op       string
	PlayerID PlayerID
	Err      error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s for player %s: %v", e.Op, e.PlayerID, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
