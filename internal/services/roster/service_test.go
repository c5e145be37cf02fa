package roster

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/directory"
	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/model"
	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/services/ledger"
	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/storage/memory"
	"github.com/preakznuffsaid/faceit-anchor-tracker/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	ledger  *ledger.Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.ledger = ledger.New(s.storage, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) testDirectory() *directory.Static {
	return directory.NewStatic(
		model.Profile{ID: "id-1", Nickname: "soeholt", Avatar: "a1", Country: "dk"},
		model.Profile{ID: "id-2", Nickname: "preak-", Avatar: "a2", Country: "dk"},
		model.Profile{ID: "id-3", Nickname: "rinor_D", Avatar: "a3", Country: "se"},
	)
}

func (s *ServiceSuite) TestListResolvesInConfiguredOrder() {
	service := New([]string{"preak-", "soeholt", "rinor_D"}, s.testDirectory(), s.ledger, testutil.NopLogger())

	rows, err := service.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(rows, 3)

	s.Equal(model.PlayerID("id-2"), rows[0].ID)
	s.Equal(model.PlayerID("id-1"), rows[1].ID)
	s.Equal(model.PlayerID("id-3"), rows[2].ID)
	s.Equal("dk", rows[0].Country)
}

func (s *ServiceSuite) TestListCreatesZeroRows() {
	service := New([]string{"soeholt"}, s.testDirectory(), s.ledger, testutil.NopLogger())

	rows, err := service.List(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, rows[0].AnchorCount)

	// The row now exists in the ledger: a later read sees it without
	// re-creating anything
	count, err := s.ledger.Read(s.ctx, "id-1")
	s.Require().NoError(err)
	s.Equal(0, count)
}

func (s *ServiceSuite) TestListJoinsExistingCounts() {
	_, err := s.ledger.ApplyDelta(s.ctx, "id-1", 13)
	s.Require().NoError(err)

	service := New([]string{"soeholt"}, s.testDirectory(), s.ledger, testutil.NopLogger())
	rows, err := service.List(s.ctx)
	s.Require().NoError(err)
	s.Equal(13, rows[0].AnchorCount)
}

func (s *ServiceSuite) TestListFailsWholeRequestOnUnknownHandle() {
	service := New([]string{"soeholt", "ghost"}, s.testDirectory(), s.ledger, testutil.NopLogger())

	_, err := service.List(s.ctx)
	s.Require().Error(err)
	s.ErrorIs(err, model.ErrProfileNotFound)
	s.Contains(err.Error(), "ghost")
}

func (s *ServiceSuite) TestPlayerIDs() {
	service := New([]string{"rinor_D", "soeholt"}, s.testDirectory(), s.ledger, testutil.NopLogger())

	ids, err := service.PlayerIDs(s.ctx)
	s.Require().NoError(err)
	s.Equal([]model.PlayerID{"id-3", "id-1"}, ids)
}
