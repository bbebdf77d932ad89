// Package fill writes filler letters into a grid's remaining void.
package fill

import (
	"log/slog"

	"github.com/mkoehn/suchselgen/internal/dependencies/random"
	"github.com/mkoehn/suchselgen/internal/model"
	"github.com/mkoehn/suchselgen/internal/services/letterfreq"
)

// Engine fills empty grid cells
type Engine struct {
	rnd    random.Random
	logger *slog.Logger
}

// New creates a fill Engine
func New(rnd random.Random, logger *slog.Logger) *Engine {
	return &Engine{rnd: rnd, logger: logger}
}

// FillRandom writes a frequency-sampled letter into every empty cell
func (e *Engine) FillRandom(grid *model.Grid, table *letterfreq.Table) {
	filled := 0
	for _, pos := range grid.EmptyPositions() {
		// EmptyPositions only yields empty cells, so Fill cannot fail
		_ = grid.Fill(pos, table.Sample(e.rnd))
		filled++
	}
	e.logger.Debug("filled void with random letters",
		slog.Int("cells", filled),
		slog.String("profile", table.Name()))
}

// HideWord spells the word through the remaining void so it is
// indistinguishable from filler. It succeeds only when the word's
// length exactly equals the grid's void; on failure the grid is
// unchanged and nil is returned.
func (e *Engine) HideWord(grid *model.Grid, word string) *model.PlacedWord {
	hidden := grid.HideWord(word)
	if hidden == nil {
		e.logger.Debug("cannot hide word",
			slog.String("word", word),
			slog.Int("void", grid.Void()))
		return nil
	}
	e.logger.Debug("word hidden in void", slog.String("word", word))
	return hidden
}
