package redis

import (
	"fmt"

	"github.com/mkoehn/suchselgen/internal/model"
)

// Key prefix for all puzzle data
const keyPrefix = "suchselgen"

// puzzleKey returns the Redis key for a Puzzle
func puzzleKey(id model.PuzzleID) string {
	return fmt.Sprintf("%s:puzzle:%s", keyPrefix, id)
}

// puzzleIndexKey returns the Redis key for the SET of stored puzzle ids
func puzzleIndexKey() string {
	return fmt.Sprintf("%s:idx:puzzles", keyPrefix)
}
