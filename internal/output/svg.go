package output

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/mkoehn/suchselgen/internal/model"
)

// cellSize is the square cell edge in SVG user units
const cellSize = 20

// SVGOptions controls SVG rendering
type SVGOptions struct {
	// Letters draws the letters into the cells (solution sheet).
	// When false, only the cell outlines are drawn (puzzle to solve).
	Letters bool
}

// RenderSVG writes the grid as an SVG document. Only occupied cells get
// a square, so an unfilled grid shows the puzzle's shape.
func RenderSVG(w io.Writer, grid *model.Grid, opts SVGOptions) {
	canvas := svg.New(w)
	canvas.Start(grid.Width*cellSize, grid.Height*cellSize)
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			letter := grid.Letter(model.Position{X: x, Y: y})
			if letter == 0 {
				continue
			}
			canvas.Rect(x*cellSize, y*cellSize, cellSize, cellSize,
				"fill:none;stroke:black;stroke-width:1")
			if opts.Letters {
				canvas.Text(x*cellSize+cellSize/2, y*cellSize+cellSize-6,
					string(letter),
					"text-anchor:middle;font-family:sans-serif;font-size:12px")
			}
		}
	}
	canvas.End()
}
