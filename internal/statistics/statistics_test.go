package statistics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatistics_Empty(t *testing.T) {
	stats := &Statistics{}

	assert.Zero(t, stats.Mean())
	assert.Zero(t, stats.Variance())
	assert.Zero(t, stats.StdDev())
	assert.Zero(t, stats.StdError())
	assert.Zero(t, stats.Median())
	assert.Zero(t, stats.Percentile(0.5))
	assert.NoError(t, stats.Validate())
}

func TestStatistics_SingleValue(t *testing.T) {
	stats := &Statistics{}
	stats.Add(2.5)

	assert.Equal(t, 1, stats.Count)
	assert.Equal(t, 2.5, stats.Mean())
	assert.Zero(t, stats.Variance())
	assert.Zero(t, stats.StdDev())
	assert.Equal(t, 2.5, stats.Median())
	assert.Equal(t, 2.5, stats.Percentile(0.9))
}

func TestStatistics_KnownValues(t *testing.T) {
	stats := &Statistics{}
	for _, v := range []float64{2, 4, 4, 4, 5, 5, 7, 9} {
		stats.Add(v)
	}

	assert.Equal(t, 8, stats.Count)
	assert.InDelta(t, 5.0, stats.Mean(), 1e-9)
	// sample variance of the classic population-sd-2 data set
	assert.InDelta(t, 32.0/7.0, stats.Variance(), 1e-9)
	assert.InDelta(t, math.Sqrt(32.0/7.0), stats.StdDev(), 1e-9)
	assert.InDelta(t, 4.5, stats.Median(), 1e-9)

	low, high := stats.ConfidenceInterval95()
	assert.Less(t, low, stats.Mean())
	assert.Greater(t, high, stats.Mean())
	assert.InDelta(t, stats.Mean(), (low+high)/2, 1e-9)
	require.NoError(t, stats.Validate())
}

func TestStatistics_Percentile(t *testing.T) {
	stats := &Statistics{}
	for _, v := range []float64{50, 10, 40, 20, 30} {
		stats.Add(v)
	}

	tests := []struct {
		p    float64
		want float64
	}{
		{0, 10},
		{0.25, 20},
		{0.5, 30},
		{0.625, 35},
		{1, 50},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, stats.Percentile(tt.p), 1e-9, "percentile %v", tt.p)
	}

	// the stored values keep insertion order
	assert.Equal(t, []float64{50, 10, 40, 20, 30}, stats.Values)
}

func TestStatistics_Validate(t *testing.T) {
	stats := &Statistics{}
	stats.Add(1)
	stats.Add(2)
	require.NoError(t, stats.Validate())

	stats.Count++
	assert.Error(t, stats.Validate())

	stats.Count--
	stats.Sum += 10
	assert.Error(t, stats.Validate())
}
