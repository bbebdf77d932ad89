package model

import "fmt"

// Position identifies a cell on the grid
type Position struct {
	X int // 0-indexed from the left
	Y int // 0-indexed from the top
}

// Cell is a single grid cell: empty, or a letter plus the ids of the
// words that claim it. More than one id only appears when overlapping
// words agree on the letter.
type Cell struct {
	Letter  rune // 0 means empty
	WordIDs []string
}

// IsEmpty returns true if no letter has been assigned to the cell
func (c Cell) IsEmpty() bool {
	return c.Letter == 0
}

// PlacedWord records one committed word
type PlacedWord struct {
	ID        string    `json:"id"`
	Word      string    `json:"word"`
	Origin    Position  `json:"origin"`
	Direction Direction `json:"direction"`
	Length    int       `json:"length"`
	// Hidden marks the word spelled out through leftover void cells
	// during filling instead of placed along a direction.
	Hidden bool `json:"hidden"`
}

// Grid is the letter grid for one creation attempt. It owns all cells
// and the registry of placed words, and tracks the void count (cells
// with no assigned letter).
type Grid struct {
	Width  int
	Height int

	cells  [][]Cell // row-major: cells[y][x]
	void   int
	placed []*PlacedWord
}

// NewGrid creates an all-empty grid
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
	}
	return &Grid{
		Width:  width,
		Height: height,
		cells:  cells,
		void:   width * height,
	}, nil
}

// InBounds returns true if the position is within the grid
func (g *Grid) InBounds(pos Position) bool {
	return pos.X >= 0 && pos.X < g.Width && pos.Y >= 0 && pos.Y < g.Height
}

// CellAt returns the cell at the given position
func (g *Grid) CellAt(pos Position) (Cell, error) {
	if !g.InBounds(pos) {
		return Cell{}, ErrOutOfBounds
	}
	return g.cells[pos.Y][pos.X], nil
}

// Letter returns the letter at the given position, or 0 if the position
// is empty or out of bounds
func (g *Grid) Letter(pos Position) rune {
	if !g.InBounds(pos) {
		return 0
	}
	return g.cells[pos.Y][pos.X].Letter
}

// Void returns the number of cells with no assigned letter
func (g *Grid) Void() int {
	return g.void
}

// PlacedWords returns the registry of committed words
func (g *Grid) PlacedWords() []*PlacedWord {
	return g.placed
}

// EmptyPositions returns all empty cells in row-major order
func (g *Grid) EmptyPositions() []Position {
	positions := make([]Position, 0, g.void)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.cells[y][x].IsEmpty() {
				positions = append(positions, Position{X: x, Y: y})
			}
		}
	}
	return positions
}

// Overlap dry-runs a placement: it reports how many cells of the span
// already carry the matching letter, and whether any cell carries a
// conflicting one. Spans reaching outside the grid count as conflicts.
func (g *Grid) Overlap(span []Position, letters []rune) (matches int, conflict bool) {
	for i, pos := range span {
		if !g.InBounds(pos) {
			return matches, true
		}
		cell := g.cells[pos.Y][pos.X]
		if cell.IsEmpty() {
			continue
		}
		if cell.Letter != letters[i] {
			return matches, true
		}
		matches++
	}
	return matches, false
}

// TryReserve commits a word onto the grid, all-or-nothing. Each cell of
// the span must be empty, or (with allowOverlap) already carry the
// identical letter. On success the word is registered with a
// grid-assigned id, void drops by the number of previously-empty cells
// touched, and true is returned. On failure the grid is unchanged.
func (g *Grid) TryReserve(span []Position, letters []rune, word PlacedWord, allowOverlap bool) bool {
	if len(span) == 0 || len(span) != len(letters) {
		return false
	}
	for i, pos := range span {
		if !g.InBounds(pos) {
			return false
		}
		cell := g.cells[pos.Y][pos.X]
		if cell.IsEmpty() {
			continue
		}
		if !allowOverlap || cell.Letter != letters[i] {
			return false
		}
	}

	word.ID = g.nextID()
	word.Length = len(span)
	for i, pos := range span {
		cell := &g.cells[pos.Y][pos.X]
		if cell.IsEmpty() {
			cell.Letter = letters[i]
			g.void--
		}
		cell.WordIDs = append(cell.WordIDs, word.ID)
	}
	g.placed = append(g.placed, &word)
	return true
}

// Fill writes a filler letter into an empty cell. Fillers claim no word id.
func (g *Grid) Fill(pos Position, letter rune) error {
	if !g.InBounds(pos) {
		return ErrOutOfBounds
	}
	cell := &g.cells[pos.Y][pos.X]
	if !cell.IsEmpty() {
		return ErrCellOccupied
	}
	cell.Letter = letter
	g.void--
	return nil
}

// HideWord spells a word through the remaining empty cells, one letter
// per cell in row-major order, and registers it as the grid's hidden
// word. It succeeds only when the word's length exactly equals the
// current void; otherwise the grid is unchanged and nil is returned.
func (g *Grid) HideWord(word string) *PlacedWord {
	letters := []rune(word)
	if len(letters) == 0 || len(letters) != g.void {
		return nil
	}

	placed := &PlacedWord{
		ID:        g.nextID(),
		Word:      word,
		Direction: LeftRight,
		Length:    len(letters),
		Hidden:    true,
	}
	empties := g.EmptyPositions()
	placed.Origin = empties[0]
	for i, pos := range empties {
		cell := &g.cells[pos.Y][pos.X]
		cell.Letter = letters[i]
		cell.WordIDs = append(cell.WordIDs, placed.ID)
	}
	g.void = 0
	g.placed = append(g.placed, placed)
	return placed
}

func (g *Grid) nextID() string {
	return fmt.Sprintf("w%d", len(g.placed)+1)
}
