package response

import "github.com/mkoehn/suchselgen/internal/model"

// PuzzleList is the body for GET /api/v1/puzzles
type PuzzleList struct {
	IDs []model.PuzzleID `json:"ids"`
}
