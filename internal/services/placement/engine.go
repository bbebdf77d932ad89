// Package placement implements randomized constrained word placement.
package placement

import (
	"log/slog"

	"github.com/mkoehn/suchselgen/internal/dependencies/random"
	"github.com/mkoehn/suchselgen/internal/model"
	"github.com/mkoehn/suchselgen/internal/services/weighted"
)

// Engine attempts to place words onto a grid under a direction
// distribution and a placement policy
type Engine struct {
	policy     Policy
	directions *weighted.Choice
	rnd        random.Random
	logger     *slog.Logger
}

// New creates an Engine. The direction distribution's labels must be
// valid direction tokens.
func New(policy Policy, directions *weighted.Choice, rnd random.Random, logger *slog.Logger) (*Engine, error) {
	for _, label := range directions.Labels() {
		if _, err := model.ParseDirection(label); err != nil {
			return nil, err
		}
	}
	return &Engine{
		policy:     policy,
		directions: directions,
		rnd:        rnd,
		logger:     logger,
	}, nil
}

// DefaultDirections is a uniform distribution over all eight directions
func DefaultDirections() *weighted.Choice {
	weights := make(map[string]float64, len(model.AllDirections))
	for _, d := range model.AllDirections {
		weights[d.String()] = 1
	}
	choice, err := weighted.New(weights)
	if err != nil {
		panic(err) // static table, cannot fail
	}
	return choice
}

// Place tries up to maxAttempts times to commit the word onto the grid.
// Each attempt samples a direction, then a uniformly random valid
// origin, and gives up the attempt on any conflict. The first success
// wins; false means the word stays unplaced and the grid is untouched.
func (e *Engine) Place(grid *model.Grid, word string, maxAttempts int) bool {
	letters := []rune(word)
	if len(letters) == 0 {
		return false
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		direction, _ := model.ParseDirection(e.directions.Sample(e.rnd))

		origin, ok := e.randomOrigin(grid, direction, len(letters))
		if !ok {
			// Word does not fit the grid along this direction
			continue
		}
		span := spanFrom(origin, direction, len(letters))

		matches, conflict := grid.Overlap(span, letters)
		if conflict {
			continue
		}
		if matches > 0 && !e.policy.AllowOverlap() {
			continue
		}
		if e.policy.RequireIntersection() && len(grid.PlacedWords()) > 0 && matches == 0 {
			continue
		}

		placed := grid.TryReserve(span, letters, model.PlacedWord{
			Word:      word,
			Origin:    origin,
			Direction: direction,
		}, e.policy.AllowOverlap())
		if placed {
			e.logger.Debug("word placed",
				slog.String("word", word),
				slog.String("direction", direction.String()),
				slog.Int("x", origin.X),
				slog.Int("y", origin.Y),
				slog.Int("attempt", attempt+1))
			return true
		}
	}

	e.logger.Debug("word not placed",
		slog.String("word", word),
		slog.Int("attempts", maxAttempts))
	return false
}

// randomOrigin picks a uniformly random origin such that every letter,
// stepped along the direction's unit vector, stays in bounds
func (e *Engine) randomOrigin(grid *model.Grid, direction model.Direction, length int) (model.Position, bool) {
	dx, dy := direction.Vector()

	minX, maxX, ok := originRange(dx, grid.Width, length)
	if !ok {
		return model.Position{}, false
	}
	minY, maxY, ok := originRange(dy, grid.Height, length)
	if !ok {
		return model.Position{}, false
	}

	return model.Position{
		X: minX + e.rnd.Intn(maxX-minX+1),
		Y: minY + e.rnd.Intn(maxY-minY+1),
	}, true
}

// originRange computes the valid origin coordinates on one axis for a
// word of the given length stepping by delta
func originRange(delta, size, length int) (lo, hi int, ok bool) {
	switch {
	case delta > 0:
		lo, hi = 0, size-length
	case delta < 0:
		lo, hi = length-1, size-1
	default:
		lo, hi = 0, size-1
	}
	if hi < lo {
		return 0, 0, false
	}
	return lo, hi, true
}

// spanFrom builds the cell footprint of a word at the given origin and direction
func spanFrom(origin model.Position, direction model.Direction, length int) []model.Position {
	dx, dy := direction.Vector()
	span := make([]model.Position, length)
	for i := 0; i < length; i++ {
		span[i] = model.Position{X: origin.X + i*dx, Y: origin.Y + i*dy}
	}
	return span
}
