package storage

import (
	"context"

	"github.com/mkoehn/suchselgen/internal/model"
)

// Storage defines the interface for puzzle persistence
type Storage interface {
	SavePuzzle(ctx context.Context, puzzle *model.Puzzle) error
	GetPuzzle(ctx context.Context, id model.PuzzleID) (*model.Puzzle, error)
	DeletePuzzle(ctx context.Context, id model.PuzzleID) error
	ListPuzzleIDs(ctx context.Context) ([]model.PuzzleID, error)
}
