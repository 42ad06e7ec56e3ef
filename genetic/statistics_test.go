package genetic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatistics(t *testing.T) {
	population := []*testIndividual{
		scored(0.0),
		scored(1.0),
		scored(1.0),
		scored(4.0),
	}

	stats, err := NewStatistics(population)
	require.NoError(t, err)

	assert.Equal(t, float32(0.0), stats.MinFitness())
	assert.Equal(t, float32(4.0), stats.MaxFitness())
	assert.Equal(t, float32(1.5), stats.AvgFitness())
	assert.InDelta(t, math.Sqrt(3), stats.StdDevFitness(), 1e-6)
	assert.Equal(t, 4, stats.Len())
	assert.Equal(t, "min=0.00, max=4.00, avg=1.50", stats.String())
}

func TestNewStatisticsSingleIndividual(t *testing.T) {
	stats, err := NewStatistics([]*testIndividual{scored(2.5)})
	require.NoError(t, err)

	assert.Equal(t, float32(2.5), stats.MinFitness())
	assert.Equal(t, float32(2.5), stats.MaxFitness())
	assert.Equal(t, float32(2.5), stats.AvgFitness())
	assert.Zero(t, stats.StdDevFitness())
}

func TestNewStatisticsErrors(t *testing.T) {
	_, err := NewStatistics([]*testIndividual{})
	assert.ErrorIs(t, err, ErrEmptyPopulation)

	nan := float32(math.NaN())
	_, err = NewStatistics([]*testIndividual{scored(1), scored(nan)})
	assert.ErrorIs(t, err, ErrInvalidFitness)
}
