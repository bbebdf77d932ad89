package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mkoehn/suchselgen/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func testPuzzle(id model.PuzzleID) *model.Puzzle {
	return &model.Puzzle{
		ID:     id,
		Width:  3,
		Height: 1,
		Rows:   []string{"CAT"},
		Words: []model.PlacedWord{
			{ID: "w1", Word: "CAT", Direction: model.LeftRight, Length: 3},
		},
		CreatedAt: time.Now(),
	}
}

func (s *StorageSuite) TestSaveAndGetPuzzle() {
	err := s.storage.SavePuzzle(s.ctx, testPuzzle("p1"))
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPuzzle(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal(model.PuzzleID("p1"), retrieved.ID)
	s.Equal([]string{"CAT"}, retrieved.Rows)
}

func (s *StorageSuite) TestGetPuzzleNotFound() {
	_, err := s.storage.GetPuzzle(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPuzzleNotFound)
}

func (s *StorageSuite) TestDeletePuzzle() {
	_ = s.storage.SavePuzzle(s.ctx, testPuzzle("p1"))

	err := s.storage.DeletePuzzle(s.ctx, "p1")
	s.Require().NoError(err)

	_, err = s.storage.GetPuzzle(s.ctx, "p1")
	s.ErrorIs(err, model.ErrPuzzleNotFound)
}

func (s *StorageSuite) TestDeleteMissingPuzzleIsANoop() {
	s.NoError(s.storage.DeletePuzzle(s.ctx, "nonexistent"))
}

func (s *StorageSuite) TestListPuzzleIDsSorted() {
	_ = s.storage.SavePuzzle(s.ctx, testPuzzle("zebra"))
	_ = s.storage.SavePuzzle(s.ctx, testPuzzle("alpha"))

	ids, err := s.storage.ListPuzzleIDs(s.ctx)
	s.Require().NoError(err)
	s.Equal([]model.PuzzleID{"alpha", "zebra"}, ids)
}
