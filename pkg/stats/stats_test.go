package stats_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Crashthatch/openroutermodeltable/pkg/stats"
)

func TestReduceEmpty(t *testing.T) {
	s := stats.Reduce(nil)
	assert.Nil(t, s.Min)
	assert.Nil(t, s.Max)
	assert.Nil(t, s.Median)
	assert.True(t, s.IsZero())

	s = stats.Reduce([]float64{})
	assert.True(t, s.IsZero())
}

func TestReduceSingle(t *testing.T) {
	s := stats.Reduce([]float64{7})
	require.False(t, s.IsZero())
	assert.Equal(t, 7.0, *s.Min)
	assert.Equal(t, 7.0, *s.Max)
	assert.Equal(t, 7.0, *s.Median)
}

func TestReduceEvenCount(t *testing.T) {
	s := stats.Reduce([]float64{1, 3, 2, 4})
	require.False(t, s.IsZero())
	assert.Equal(t, 1.0, *s.Min)
	assert.Equal(t, 4.0, *s.Max)
	assert.Equal(t, 2.5, *s.Median)
}

func TestReduceOddCount(t *testing.T) {
	s := stats.Reduce([]float64{30, 10, 20})
	assert.Equal(t, 10.0, *s.Min)
	assert.Equal(t, 30.0, *s.Max)
	assert.Equal(t, 20.0, *s.Median)
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	samples := []float64{5, 1, 3}
	stats.Reduce(samples)
	assert.Equal(t, []float64{5, 1, 3}, samples)
}

func TestReduceOrderingProperty(t *testing.T) {
	// min <= median <= max for arbitrary non-empty inputs.
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		n := rng.Intn(50) + 1
		samples := make([]float64, n)
		for j := range samples {
			samples[j] = rng.Float64() * 1000
		}
		s := stats.Reduce(samples)
		require.False(t, s.IsZero())
		assert.LessOrEqual(t, *s.Min, *s.Median)
		assert.LessOrEqual(t, *s.Median, *s.Max)
	}
}

func TestAverage(t *testing.T) {
	t.Run("ignores nil entries", func(t *testing.T) {
		entries := []*float64{stats.Ptr(0.99), nil, stats.Ptr(0.95)}
		avg := stats.Average(entries)
		require.NotNil(t, avg)
		assert.InDelta(t, 0.97, *avg, 1e-9)
	})

	t.Run("all nil", func(t *testing.T) {
		assert.Nil(t, stats.Average([]*float64{nil, nil}))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, stats.Average(nil))
	})
}
