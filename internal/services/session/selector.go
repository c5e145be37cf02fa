// Package session coordinates one client's viewing session: the
// roster-selection state machine plus the scoring events it records
// against the ledger while a session is active.
package session

import (
	"context"
	"fmt"

	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/model"
	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/scoring"
	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/services/ledger"
)

// Selector owns a session's selection state and applies scoring events
// through the ledger. A Selector belongs to a single client session and
// is not safe for concurrent use; the ledger underneath is the shared,
// concurrently-mutated resource.
type Selector struct {
	ledger *ledger.Service
	state  model.SessionSelection
}

// New creates a selector in the selecting phase
func New(ledger *ledger.Service) *Selector {
	return &Selector{
		ledger: ledger,
		state:  model.NewSessionSelection(),
	}
}

// NewFromState creates a selector resuming previously persisted state
func NewFromState(ledger *ledger.Service, state model.SessionSelection) *Selector {
	if state.Mode == "" {
		state = model.NewSessionSelection()
	}
	return &Selector{
		ledger: ledger,
		state:  state,
	}
}

// State returns a copy of the current selection state for persistence
// or rendering
func (s *Selector) State() model.SessionSelection {
	state := s.state
	state.Selected = append([]model.PlayerID{}, s.state.Selected...)
	if s.state.ActiveRoster != nil {
		state.ActiveRoster = append([]model.PlayerID{}, s.state.ActiveRoster...)
	}
	return state
}

// Toggle flips the player's membership in the selection
func (s *Selector) Toggle(id model.PlayerID) bool {
	return s.state.Toggle(id)
}

// SelectAll selects the whole roster
func (s *Selector) SelectAll(roster []model.PlayerID) bool {
	return s.state.SelectAll(roster)
}

// Clear empties the selection
func (s *Selector) Clear() bool {
	return s.state.Clear()
}

// Start begins a session with the current selection; returns false if
// the minimum-player guard rejects it
func (s *Selector) Start() bool {
	return s.state.Start()
}

// NewRoster returns to the selecting phase; ledger counts persist
func (s *Selector) NewRoster() {
	s.state.NewRoster()
}

// RecordEvent applies a scoring event to a player in the active roster
// and returns the player's new count. Each applicable event is recorded
// once per occurrence by the caller; the policy enforces no ordering.
func (s *Selector) RecordEvent(ctx context.Context, id model.PlayerID, kind scoring.EventKind) (int, error) {
	if s.state.Mode != model.SessionModeActive {
		return 0, model.ErrNoActiveSession
	}
	if !s.state.InActiveRoster(id) {
		return 0, fmt.Errorf("%w: %s", model.ErrNotInActiveRoster, id)
	}

	delta, err := scoring.Delta(kind)
	if err != nil {
		return 0, err
	}

	return s.ledger.ApplyDelta(ctx, id, delta)
}

// Anchors returns the current anchor designation: every player whose
// count equals the minimum among the active roster, or among the given
// full roster while still selecting. Counts are read fresh from the
// ledger on every call so the designation always reflects the latest
// committed values.
func (s *Selector) Anchors(ctx context.Context, fullRoster []model.PlayerID) ([]model.PlayerID, error) {
	ids := fullRoster
	if s.state.Mode == model.SessionModeActive {
		ids = s.state.ActiveRoster
	}

	counts, err := s.ledger.Counts(ctx, ids)
	if err != nil {
		return nil, err
	}

	return model.Anchors(ids, counts), nil
}
