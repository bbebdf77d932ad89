package placement

import "github.com/mkoehn/suchselgen/internal/model"

// Mode names accepted from configuration
const (
	ModeSuchsel   = "suchsel"
	ModeCrossword = "crossword"
)

// Policy decides how a candidate placement may interact with letters
// already on the grid. The set of policies is closed: word-search
// (suchsel) and crossword.
type Policy interface {
	// Name returns the mode name
	Name() string

	// AllowOverlap reports whether a candidate may reuse an occupied
	// cell when the letters agree
	AllowOverlap() bool

	// RequireIntersection reports whether every placement after the
	// first must touch at least one matching occupied cell
	RequireIntersection() bool
}

// SuchselPolicy places words independently; overlap on agreeing letters
// is permitted only when contiguous placement is enabled.
type SuchselPolicy struct {
	Contiguous bool
}

func (p SuchselPolicy) Name() string              { return ModeSuchsel }
func (p SuchselPolicy) AllowOverlap() bool        { return p.Contiguous }
func (p SuchselPolicy) RequireIntersection() bool { return false }

// CrosswordPolicy enforces a connected puzzle: every word after the
// first must intersect an already-placed word on a matching letter.
type CrosswordPolicy struct{}

func (p CrosswordPolicy) Name() string              { return ModeCrossword }
func (p CrosswordPolicy) AllowOverlap() bool        { return true }
func (p CrosswordPolicy) RequireIntersection() bool { return true }

// PolicyFor resolves a mode name to its policy
func PolicyFor(mode string, contiguous bool) (Policy, error) {
	switch mode {
	case ModeSuchsel:
		return SuchselPolicy{Contiguous: contiguous}, nil
	case ModeCrossword:
		return CrosswordPolicy{}, nil
	default:
		return nil, model.ErrUnknownMode
	}
}
