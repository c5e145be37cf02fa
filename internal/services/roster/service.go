// Package roster resolves the group's configured player handles against
// the player directory and joins them with their ledger counts.
package roster

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/directory"
	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/model"
	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/services/ledger"
)

// Service lists the configured roster
type Service struct {
	handles   []string
	directory directory.Directory
	ledger    *ledger.Service
	logger    *slog.Logger
}

// New creates a new roster service for a fixed list of player handles
func New(handles []string, dir directory.Directory, ledger *ledger.Service, logger *slog.Logger) *Service {
	return &Service{
		handles:   handles,
		directory: dir,
		ledger:    ledger,
		logger:    logger,
	}
}

// Handles returns the configured player handles
func (s *Service) Handles() []string {
	return s.handles
}

// List resolves every configured handle to a profile and joins it with
// the player's anchor count, creating a zero row for players seen for
// the first time. Lookups run concurrently; results keep the configured
// handle order. Any single failure fails the whole listing, naming the
// handle that could not be resolved.
func (s *Service) List(ctx context.Context) ([]model.PlayerRow, error) {
	rows := make([]model.PlayerRow, len(s.handles))

	g, gctx := errgroup.WithContext(ctx)
	for i, handle := range s.handles {
		g.Go(func() error {
			profile, err := s.directory.Lookup(gctx, handle)
			if err != nil {
				return fmt.Errorf("resolving roster handle %q: %w", handle, err)
			}

			count, err := s.ledger.GetOrCreate(gctx, profile.ID)
			if err != nil {
				return err
			}

			rows[i] = model.PlayerRow{Profile: *profile, AnchorCount: count}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return rows, nil
}

// PlayerIDs resolves the configured handles to their player ids, in
// roster order
func (s *Service) PlayerIDs(ctx context.Context) ([]model.PlayerID, error) {
	rows, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]model.PlayerID, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	return ids, nil
}
