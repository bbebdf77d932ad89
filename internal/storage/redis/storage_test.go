package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mkoehn/suchselgen/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.PuzzleTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func testPuzzle(id model.PuzzleID) *model.Puzzle {
	return &model.Puzzle{
		ID:     id,
		Width:  3,
		Height: 1,
		Rows:   []string{"DOG"},
		Words: []model.PlacedWord{
			{ID: "w1", Word: "DOG", Direction: model.TopBottom, Length: 3, Hidden: true},
		},
		Hidden:    "DOG",
		CreatedAt: time.Now().UTC(),
	}
}

func (s *StorageSuite) TestSaveAndGetPuzzle() {
	err := s.storage.SavePuzzle(s.ctx, testPuzzle("p1"))
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPuzzle(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal(model.PuzzleID("p1"), retrieved.ID)
	s.Equal([]string{"DOG"}, retrieved.Rows)
	s.Equal("DOG", retrieved.Hidden)

	s.Require().Len(retrieved.Words, 1)
	s.Equal(model.TopBottom, retrieved.Words[0].Direction)
	s.True(retrieved.Words[0].Hidden)
}

func (s *StorageSuite) TestSaveAppliesTTL() {
	err := s.storage.SavePuzzle(s.ctx, testPuzzle("p1"))
	s.Require().NoError(err)

	s.mini.FastForward(2 * time.Hour)

	_, err = s.storage.GetPuzzle(s.ctx, "p1")
	s.ErrorIs(err, model.ErrPuzzleNotFound)
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

	ids, err := s.storage.ListPuzzleIDs(s.ctx)
	s.Require().NoError(err)
	s.Empty(ids)
}

func (s *StorageSuite) TestListPuzzleIDsSorted() {
	_ = s.storage.SavePuzzle(s.ctx, testPuzzle("zebra"))
	_ = s.storage.SavePuzzle(s.ctx, testPuzzle("alpha"))

	ids, err := s.storage.ListPuzzleIDs(s.ctx)
	s.Require().NoError(err)
	s.Equal([]model.PuzzleID{"alpha", "zebra"}, ids)
}
