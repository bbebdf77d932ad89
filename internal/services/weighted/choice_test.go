package weighted

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkoehn/suchselgen/internal/dependencies/mocks"
	"github.com/mkoehn/suchselgen/internal/dependencies/random"
	"github.com/mkoehn/suchselgen/internal/model"
)

func TestNewRejectsEmptyDistribution(t *testing.T) {
	_, err := New(map[string]float64{})
	assert.ErrorIs(t, err, model.ErrEmptyDistribution)

	_, err = New(nil)
	assert.ErrorIs(t, err, model.ErrEmptyDistribution)
}

func TestNewRejectsNonPositiveWeights(t *testing.T) {
	_, err := New(map[string]float64{"a": 1, "b": 0})
	assert.ErrorIs(t, err, model.ErrNonPositiveWeight)

	_, err = New(map[string]float64{"a": -2})
	assert.ErrorIs(t, err, model.ErrNonPositiveWeight)
}

func TestSampleIsProportionalToWeight(t *testing.T) {
	// a: weight 1, b: weight 3 -> cumulative bounds at 1 and 4
	choice, err := New(map[string]float64{"b": 3, "a": 1})
	require.NoError(t, err)

	rnd := mocks.NewMockRandom()
	rnd.QueueFloat64(0.0, 0.24, 0.25, 0.99)

	assert.Equal(t, "a", choice.Sample(rnd)) // 0.0*4 = 0.0
	assert.Equal(t, "a", choice.Sample(rnd)) // 0.96
	assert.Equal(t, "b", choice.Sample(rnd)) // 1.0
	assert.Equal(t, "b", choice.Sample(rnd)) // 3.96
}

func TestSampleSingleLabel(t *testing.T) {
	choice, err := New(map[string]float64{"only": 0.5})
	require.NoError(t, err)

	rnd := random.NewSeeded(7)
	for i := 0; i < 20; i++ {
		assert.Equal(t, "only", choice.Sample(rnd))
	}
}

func TestSampleCoversAllLabels(t *testing.T) {
	choice, err := New(map[string]float64{"x": 1, "y": 1, "z": 1})
	require.NoError(t, err)

	rnd := random.NewSeeded(42)
	seen := make(map[string]int)
	for i := 0; i < 300; i++ {
		seen[choice.Sample(rnd)]++
	}
	assert.Len(t, seen, 3)
}

func TestLabelsAreSorted(t *testing.T) {
	choice, err := New(map[string]float64{"tb": 1, "lr": 1, "bt": 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"bt", "lr", "tb"}, choice.Labels())
}
