package output

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/mkoehn/suchselgen/internal/model"
)

// Sheet names inside the workbook
const (
	puzzleSheet   = "Puzzle"
	solutionSheet = "Solution"
)

// SheetOptions controls spreadsheet rendering
type SheetOptions struct {
	// Solution adds a second sheet listing the placed words and the
	// hidden word
	Solution bool
	// HiddenWord is the hidden/solution word passed along as metadata
	HiddenWord string
	// DisplayNames maps uppercase words to their display form
	DisplayNames map[string]string
}

// WriteSheet writes the grid as an xlsx workbook, one cell per letter
func WriteSheet(w io.Writer, grid *model.Grid, opts SheetOptions) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", puzzleSheet); err != nil {
		return err
	}
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			letter := grid.Letter(model.Position{X: x, Y: y})
			if letter == 0 {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(x+1, y+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(puzzleSheet, cell, string(letter)); err != nil {
				return err
			}
		}
	}

	if opts.Solution {
		if err := writeSolutionSheet(f, grid, opts); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func writeSolutionSheet(f *excelize.File, grid *model.Grid, opts SheetOptions) error {
	if _, err := f.NewSheet(solutionSheet); err != nil {
		return err
	}

	header := []any{"Word", "X", "Y", "Direction", "Hidden"}
	if err := f.SetSheetRow(solutionSheet, "A1", &header); err != nil {
		return err
	}

	row := 2
	for _, word := range grid.PlacedWords() {
		display := word.Word
		if name, ok := opts.DisplayNames[word.Word]; ok {
			display = name
		}
		values := []any{display, word.Origin.X, word.Origin.Y, word.Direction.String(), word.Hidden}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(solutionSheet, cell, &values); err != nil {
			return err
		}
		row++
	}

	if opts.HiddenWord != "" {
		cell, err := excelize.CoordinatesToCellName(1, row+1)
		if err != nil {
			return err
		}
		values := []any{"Hidden word:", opts.HiddenWord}
		if err := f.SetSheetRow(solutionSheet, cell, &values); err != nil {
			return err
		}
	}
	return nil
}
