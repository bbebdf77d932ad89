// Package session orchestrates whole-grid construction: shuffling the
// word list, retrying grid creation, and selecting the hidden word.
package session

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/mkoehn/suchselgen/internal/dependencies/random"
	"github.com/mkoehn/suchselgen/internal/model"
	"github.com/mkoehn/suchselgen/internal/services/fill"
	"github.com/mkoehn/suchselgen/internal/services/letterfreq"
	"github.com/mkoehn/suchselgen/internal/services/placement"
	"github.com/mkoehn/suchselgen/internal/services/weighted"
)

// Attempt defaults used when a Config field is zero
const (
	DefaultPlaceAttempts    = 100
	DefaultCreationAttempts = 10
	DefaultProfile          = "english"
)

// lowVoidThreshold stops the per-word loop on a nearly-full grid
const lowVoidThreshold = 10

// Config describes one puzzle generation run
type Config struct {
	Width  int
	Height int

	// Mode is "suchsel" or "crossword"
	Mode string
	// Contiguous permits letter-sharing overlap in suchsel mode
	Contiguous bool
	// Directions maps direction tokens to weights; nil means a uniform
	// distribution over all eight directions
	Directions map[string]float64

	// Fill controls whether leftover void is filled (and whether a
	// hidden word may be selected)
	Fill bool
	// Profile names the letter-frequency profile used for filling
	Profile string

	PlaceAttempts    int
	CreationAttempts int
}

// Result is the outcome of a generation run
type Result struct {
	Grid     *model.Grid
	Unplaced []string
	Hidden   string
	// Attempts is the number of creation attempts consumed
	Attempts int
}

// Controller runs the creation-attempt retry policy
type Controller struct {
	cfg    Config
	placer *placement.Engine
	filler *fill.Engine
	table  *letterfreq.Table
	rnd    random.Random
	logger *slog.Logger
}

// New validates the configuration and wires the engines. All
// configuration errors surface here, before any grid is built.
func New(cfg Config, rnd random.Random, logger *slog.Logger) (*Controller, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, model.ErrInvalidDimensions
	}
	if cfg.Mode == "" {
		cfg.Mode = placement.ModeSuchsel
	}
	if cfg.PlaceAttempts <= 0 {
		cfg.PlaceAttempts = DefaultPlaceAttempts
	}
	if cfg.CreationAttempts <= 0 {
		cfg.CreationAttempts = DefaultCreationAttempts
	}
	if cfg.Profile == "" {
		cfg.Profile = DefaultProfile
	}

	policy, err := placement.PolicyFor(cfg.Mode, cfg.Contiguous)
	if err != nil {
		return nil, err
	}

	directions := placement.DefaultDirections()
	if cfg.Directions != nil {
		directions, err = weighted.New(cfg.Directions)
		if err != nil {
			return nil, err
		}
	}

	placer, err := placement.New(policy, directions, rnd, logger)
	if err != nil {
		return nil, err
	}

	var table *letterfreq.Table
	if cfg.Fill {
		table, err = letterfreq.Profile(cfg.Profile)
		if err != nil {
			return nil, err
		}
	}

	return &Controller{
		cfg:    cfg,
		placer: placer,
		filler: fill.New(rnd, logger),
		table:  table,
		rnd:    rnd,
		logger: logger,
	}, nil
}

// Generate builds a grid from the word list. Words that cannot be
// placed within the attempt limits are reported in Result.Unplaced,
// never as errors; the run always yields a usable grid.
func (c *Controller) Generate(ctx context.Context, words []string) (*Result, error) {
	shuffled := make([]string, len(words))
	for i, word := range words {
		shuffled[i] = strings.ToUpper(word)
	}
	// Shuffled once for the whole run: every creation attempt places
	// words in the same order.
	c.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	var (
		grid     *model.Grid
		unplaced []string
		attempt  int
	)
	for attempt = 1; attempt <= c.cfg.CreationAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		g, err := model.NewGrid(c.cfg.Width, c.cfg.Height)
		if err != nil {
			return nil, err
		}

		unplaced = nil
		for i, word := range shuffled {
			if g.Void() < lowVoidThreshold {
				// Nearly full; the rest of the list has no realistic
				// chance and goes straight to unplaced.
				unplaced = append(unplaced, shuffled[i:]...)
				break
			}
			if !c.placer.Place(g, word, c.cfg.PlaceAttempts) {
				unplaced = append(unplaced, word)
			}
		}

		grid = g
		if len(unplaced) == 0 {
			break
		}
		c.logger.Debug("creation attempt left words unplaced",
			slog.Int("attempt", attempt),
			slog.Int("unplaced", len(unplaced)))
	}
	if attempt > c.cfg.CreationAttempts {
		attempt = c.cfg.CreationAttempts
	}

	result := &Result{
		Grid:     grid,
		Unplaced: slices.Clone(unplaced),
		Attempts: attempt,
	}

	if c.cfg.Fill {
		for _, word := range unplaced {
			if hidden := c.filler.HideWord(grid, word); hidden != nil {
				result.Hidden = word
				break
			}
		}
		if result.Hidden == "" {
			c.filler.FillRandom(grid, c.table)
		}
	}

	if len(result.Unplaced) > 0 {
		c.logger.Info("run finished with unplaced words",
			slog.Int("count", len(result.Unplaced)),
			slog.String("hidden", result.Hidden))
	}
	return result, nil
}
