package model

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type GridSuite struct {
	suite.Suite
	grid *Grid
}

func TestGridSuite(t *testing.T) {
	suite.Run(t, new(GridSuite))
}

func (s *GridSuite) SetupTest() {
	grid, err := NewGrid(5, 4)
	s.Require().NoError(err)
	s.grid = grid
}

func span(positions ...Position) []Position {
	return positions
}

func (s *GridSuite) TestNewGridStartsEmpty() {
	s.Equal(5, s.grid.Width)
	s.Equal(4, s.grid.Height)
	s.Equal(20, s.grid.Void())
	s.Empty(s.grid.PlacedWords())
}

func (s *GridSuite) TestNewGridRejectsBadDimensions() {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 5}, {5, -1}, {0, 0}} {
		_, err := NewGrid(dims[0], dims[1])
		s.ErrorIs(err, ErrInvalidDimensions)
	}
}

func (s *GridSuite) TestCellAtBounds() {
	_, err := s.grid.CellAt(Position{X: 0, Y: 0})
	s.NoError(err)
	_, err = s.grid.CellAt(Position{X: 4, Y: 3})
	s.NoError(err)

	for _, pos := range []Position{{X: 5, Y: 0}, {X: 0, Y: 4}, {X: -1, Y: 0}, {X: 0, Y: -1}} {
		_, err := s.grid.CellAt(pos)
		s.ErrorIs(err, ErrOutOfBounds)
	}
}

func (s *GridSuite) TestTryReserveCommitsAtomically() {
	ok := s.grid.TryReserve(
		span(Position{X: 0, Y: 0}, Position{X: 1, Y: 0}, Position{X: 2, Y: 0}),
		[]rune("CAT"),
		PlacedWord{Word: "CAT", Origin: Position{X: 0, Y: 0}, Direction: LeftRight},
		false,
	)
	s.Require().True(ok)

	s.Equal(17, s.grid.Void())
	s.Equal('C', s.grid.Letter(Position{X: 0, Y: 0}))
	s.Equal('A', s.grid.Letter(Position{X: 1, Y: 0}))
	s.Equal('T', s.grid.Letter(Position{X: 2, Y: 0}))

	s.Require().Len(s.grid.PlacedWords(), 1)
	placed := s.grid.PlacedWords()[0]
	s.Equal("w1", placed.ID)
	s.Equal("CAT", placed.Word)
	s.Equal(3, placed.Length)
	s.False(placed.Hidden)
}

func (s *GridSuite) TestTryReserveConflictLeavesGridUnchanged() {
	s.Require().True(s.grid.TryReserve(
		span(Position{X: 0, Y: 0}, Position{X: 1, Y: 0}),
		[]rune("AB"),
		PlacedWord{Word: "AB"},
		false,
	))

	// Second letter collides with the existing 'A'
	ok := s.grid.TryReserve(
		span(Position{X: 0, Y: 1}, Position{X: 0, Y: 0}),
		[]rune("XY"),
		PlacedWord{Word: "XY"},
		true,
	)
	s.False(ok)
	s.Equal(18, s.grid.Void())
	s.Equal(rune(0), s.grid.Letter(Position{X: 0, Y: 1}))
	s.Len(s.grid.PlacedWords(), 1)
}

func (s *GridSuite) TestTryReserveOverlapRequiresMatchingLetter() {
	s.Require().True(s.grid.TryReserve(
		span(Position{X: 0, Y: 0}, Position{X: 1, Y: 0}, Position{X: 2, Y: 0}),
		[]rune("CAT"),
		PlacedWord{Word: "CAT"},
		false,
	))

	// TOP crossing CAT at the shared T
	ok := s.grid.TryReserve(
		span(Position{X: 2, Y: 0}, Position{X: 2, Y: 1}, Position{X: 2, Y: 2}),
		[]rune("TOP"),
		PlacedWord{Word: "TOP"},
		true,
	)
	s.Require().True(ok)

	// Void drops only by the two previously-empty cells
	s.Equal(15, s.grid.Void())

	cell, err := s.grid.CellAt(Position{X: 2, Y: 0})
	s.Require().NoError(err)
	s.Equal('T', cell.Letter)
	s.Len(cell.WordIDs, 2)
}

func (s *GridSuite) TestTryReserveRejectsOverlapWhenNotAllowed() {
	s.Require().True(s.grid.TryReserve(
		span(Position{X: 2, Y: 0}),
		[]rune("T"),
		PlacedWord{Word: "T"},
		false,
	))

	ok := s.grid.TryReserve(
		span(Position{X: 2, Y: 0}, Position{X: 2, Y: 1}),
		[]rune("TO"),
		PlacedWord{Word: "TO"},
		false,
	)
	s.False(ok)
	s.Equal(19, s.grid.Void())
}

func (s *GridSuite) TestTryReserveOutOfBounds() {
	ok := s.grid.TryReserve(
		span(Position{X: 4, Y: 0}, Position{X: 5, Y: 0}),
		[]rune("AB"),
		PlacedWord{Word: "AB"},
		false,
	)
	s.False(ok)
	s.Equal(20, s.grid.Void())
}

func (s *GridSuite) TestFill() {
	s.Require().NoError(s.grid.Fill(Position{X: 1, Y: 1}, 'Q'))
	s.Equal(19, s.grid.Void())
	s.Equal('Q', s.grid.Letter(Position{X: 1, Y: 1}))

	s.ErrorIs(s.grid.Fill(Position{X: 1, Y: 1}, 'Z'), ErrCellOccupied)
	s.ErrorIs(s.grid.Fill(Position{X: 9, Y: 9}, 'Z'), ErrOutOfBounds)
}

func (s *GridSuite) TestHideWordRequiresExactVoid() {
	grid, err := NewGrid(2, 2)
	s.Require().NoError(err)

	s.Nil(grid.HideWord("ABC"))
	s.Equal(4, grid.Void())
	s.Empty(grid.PlacedWords())

	placed := grid.HideWord("WORD")
	s.Require().NotNil(placed)
	s.True(placed.Hidden)
	s.Equal("WORD", placed.Word)
	s.Equal(0, grid.Void())

	// Row-major traversal of the empty cells
	s.Equal('W', grid.Letter(Position{X: 0, Y: 0}))
	s.Equal('O', grid.Letter(Position{X: 1, Y: 0}))
	s.Equal('R', grid.Letter(Position{X: 0, Y: 1}))
	s.Equal('D', grid.Letter(Position{X: 1, Y: 1}))
}

func (s *GridSuite) TestHideWordSkipsOccupiedCells() {
	grid, err := NewGrid(2, 2)
	s.Require().NoError(err)
	s.Require().True(grid.TryReserve(
		span(Position{X: 0, Y: 0}),
		[]rune("X"),
		PlacedWord{Word: "X"},
		false,
	))

	placed := grid.HideWord("ABC")
	s.Require().NotNil(placed)
	s.Equal(0, grid.Void())
	s.Equal('X', grid.Letter(Position{X: 0, Y: 0}))
	s.Equal('A', grid.Letter(Position{X: 1, Y: 0}))
	s.Equal('B', grid.Letter(Position{X: 0, Y: 1}))
	s.Equal('C', grid.Letter(Position{X: 1, Y: 1}))
}

func (s *GridSuite) TestEmptyPositionsMatchesVoid() {
	s.Len(s.grid.EmptyPositions(), s.grid.Void())

	s.Require().True(s.grid.TryReserve(
		span(Position{X: 0, Y: 0}, Position{X: 1, Y: 1}),
		[]rune("AB"),
		PlacedWord{Word: "AB"},
		false,
	))
	s.Len(s.grid.EmptyPositions(), s.grid.Void())
	s.Equal(18, s.grid.Void())
}

func (s *GridSuite) TestOverlapDryRunDoesNotMutate() {
	s.Require().True(s.grid.TryReserve(
		span(Position{X: 0, Y: 0}),
		[]rune("A"),
		PlacedWord{Word: "A"},
		false,
	))

	matches, conflict := s.grid.Overlap(
		span(Position{X: 0, Y: 0}, Position{X: 1, Y: 0}),
		[]rune("AB"),
	)
	s.Equal(1, matches)
	s.False(conflict)

	_, conflict = s.grid.Overlap(
		span(Position{X: 0, Y: 0}),
		[]rune("Z"),
	)
	s.True(conflict)

	_, conflict = s.grid.Overlap(
		span(Position{X: 99, Y: 0}),
		[]rune("Z"),
	)
	s.True(conflict)

	s.Equal(19, s.grid.Void())
}
