package model

import "time"

// PuzzleID identifies a stored puzzle
type PuzzleID string

// Puzzle is the persistable snapshot of a finished grid. Empty cells
// (possible when filling is disabled) appear as spaces in Rows.
type Puzzle struct {
	ID        PuzzleID     `json:"id"`
	Width     int          `json:"width"`
	Height    int          `json:"height"`
	Rows      []string     `json:"rows"`
	Words     []PlacedWord `json:"words"`
	Hidden    string       `json:"hidden_word,omitempty"`
	Unplaced  []string     `json:"unplaced_words,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

// Snapshot captures the grid's current state as a Puzzle
func Snapshot(id PuzzleID, grid *Grid, unplaced []string, createdAt time.Time) *Puzzle {
	rows := make([]string, grid.Height)
	for y := 0; y < grid.Height; y++ {
		line := make([]rune, grid.Width)
		for x := 0; x < grid.Width; x++ {
			letter := grid.Letter(Position{X: x, Y: y})
			if letter == 0 {
				letter = ' '
			}
			line[x] = letter
		}
		rows[y] = string(line)
	}

	puzzle := &Puzzle{
		ID:        id,
		Width:     grid.Width,
		Height:    grid.Height,
		Rows:      rows,
		Unplaced:  unplaced,
		CreatedAt: createdAt,
	}
	for _, word := range grid.PlacedWords() {
		puzzle.Words = append(puzzle.Words, *word)
		if word.Hidden {
			puzzle.Hidden = word.Word
		}
	}
	return puzzle
}
