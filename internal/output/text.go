// Package output renders finished grids for humans: plain text, SVG,
// and spreadsheets. None of it carries placement logic.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/mkoehn/suchselgen/internal/model"
)

// RenderText writes the boxed plain-text form of the grid. Empty cells
// render as spaces.
func RenderText(w io.Writer, grid *model.Grid) error {
	rows := make([]string, grid.Height)
	for y := 0; y < grid.Height; y++ {
		line := make([]rune, grid.Width)
		for x := 0; x < grid.Width; x++ {
			letter := grid.Letter(model.Position{X: x, Y: y})
			if letter == 0 {
				letter = ' '
			}
			line[x] = letter
		}
		rows[y] = string(line)
	}
	return renderRows(w, grid.Width, rows)
}

// RenderPuzzleText writes a stored puzzle snapshot in the same boxed form
func RenderPuzzleText(w io.Writer, puzzle *model.Puzzle) error {
	return renderRows(w, puzzle.Width, puzzle.Rows)
}

func renderRows(w io.Writer, width int, rows []string) error {
	border := "+-" + strings.Repeat("-", 2*width) + "-+"
	if _, err := fmt.Fprintln(w, border); err != nil {
		return err
	}
	for _, row := range rows {
		letters := make([]string, 0, width)
		for _, letter := range row {
			letters = append(letters, string(letter))
		}
		for len(letters) < width {
			letters = append(letters, " ")
		}
		if _, err := fmt.Fprintf(w, "| %s  |\n", strings.Join(letters, " ")); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, border)
	return err
}

// TextString renders the grid to a string
func TextString(grid *model.Grid) string {
	var sb strings.Builder
	_ = RenderText(&sb, grid)
	return sb.String()
}
