// Package weighted samples labels from a relative-weight distribution.
package weighted

import (
	"sort"

	"github.com/mkoehn/suchselgen/internal/dependencies/random"
	"github.com/mkoehn/suchselgen/internal/model"
)

// Choice is an immutable label distribution. Labels are kept in sorted
// order so that a fixed random seed reproduces the same draws.
type Choice struct {
	labels     []string
	cumulative []float64
	total      float64
}

// New builds a Choice from a label -> positive weight mapping
func New(weights map[string]float64) (*Choice, error) {
	if len(weights) == 0 {
		return nil, model.ErrEmptyDistribution
	}

	labels := make([]string, 0, len(weights))
	for label := range weights {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	c := &Choice{
		labels:     labels,
		cumulative: make([]float64, 0, len(labels)),
	}
	for _, label := range labels {
		w := weights[label]
		if w <= 0 {
			return nil, model.ErrNonPositiveWeight
		}
		c.total += w
		c.cumulative = append(c.cumulative, c.total)
	}
	return c, nil
}

// Sample draws one label with probability proportional to its weight
func (c *Choice) Sample(rnd random.Random) string {
	target := rnd.Float64() * c.total
	for i, bound := range c.cumulative {
		if target < bound {
			return c.labels[i]
		}
	}
	// Float64 returns values < 1.0, but guard the boundary anyway
	return c.labels[len(c.labels)-1]
}

// Labels returns the labels in sampling order
func (c *Choice) Labels() []string {
	return c.labels
}
