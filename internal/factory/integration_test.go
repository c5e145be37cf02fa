package factory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/factory"
	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/model"
	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/scoring"
	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/services/session"
)

// IntegrationSuite exercises the full wiring: roster resolution, ledger
// mutations, and a session from selection through scored events.
type IntegrationSuite struct {
	suite.Suite
	app *factory.App
	ctx context.Context
}

func (s *IntegrationSuite) SetupTest() {
	s.ctx = context.Background()
	s.app = factory.NewTestApp([]model.Profile{
		{ID: "p1", Nickname: "soeholt"},
		{ID: "p2", Nickname: "preak-"},
		{ID: "p3", Nickname: "nachtm0nkeyy"},
		{ID: "p4", Nickname: "rinor_D"},
		{ID: "p5", Nickname: "tingzg0d"},
	}, nil)
}

func (s *IntegrationSuite) TestListingCreatesZeroRows() {
	rows, err := s.app.RosterService.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(rows, 5)

	for _, row := range rows {
		s.Equal(0, row.AnchorCount)
	}

	// Order matches the configured handles
	s.Equal("soeholt", rows[0].Nickname)
	s.Equal("tingzg0d", rows[4].Nickname)
}

func (s *IntegrationSuite) TestSessionFlowThroughServices() {
	rows, err := s.app.RosterService.List(s.ctx)
	s.Require().NoError(err)

	sel := session.New(s.app.LedgerService)
	for _, row := range rows[:4] {
		s.True(sel.Toggle(row.ID))
	}
	s.Require().True(sel.Start())

	count, err := sel.RecordEvent(s.ctx, "p1", scoring.EventTSideStart)
	s.Require().NoError(err)
	s.Equal(3, count)

	count, err = sel.RecordEvent(s.ctx, "p1", scoring.EventMatchCompleted)
	s.Require().NoError(err)
	s.Equal(2, count)

	count, err = sel.RecordEvent(s.ctx, "p2", scoring.EventLongMatch)
	s.Require().NoError(err)
	s.Equal(10, count)

	// p3 and p4 share the minimum count in the active roster
	all, err := s.app.RosterService.PlayerIDs(s.ctx)
	s.Require().NoError(err)
	anchors, err := sel.Anchors(s.ctx, all)
	s.Require().NoError(err)
	s.ElementsMatch([]model.PlayerID{"p3", "p4"}, anchors)
}

func (s *IntegrationSuite) TestManualAdjustmentsAlongsideSession() {
	_, err := s.app.LedgerService.ApplyDelta(s.ctx, "p5", 4)
	s.Require().NoError(err)

	count, err := s.app.LedgerService.DecrementByOne(s.ctx, "p5")
	s.Require().NoError(err)
	s.Equal(3, count)
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}
