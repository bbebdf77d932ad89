package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mkoehn/suchselgen/internal/model"
	"github.com/mkoehn/suchselgen/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu      sync.RWMutex
	puzzles map[model.PuzzleID]*model.Puzzle
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		puzzles: make(map[model.PuzzleID]*model.Puzzle),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SavePuzzle(ctx context.Context, puzzle *model.Puzzle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.puzzles[puzzle.ID] = puzzle
	return nil
}

func (s *Storage) GetPuzzle(ctx context.Context, id model.PuzzleID) (*model.Puzzle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	puzzle, ok := s.puzzles[id]
	if !ok {
		return nil, model.ErrPuzzleNotFound
	}
	return puzzle, nil
}

func (s *Storage) DeletePuzzle(ctx context.Context, id model.PuzzleID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.puzzles, id)
	return nil
}

func (s *Storage) ListPuzzleIDs(ctx context.Context) ([]model.PuzzleID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]model.PuzzleID, 0, len(s.puzzles))
	for id := range s.puzzles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}
