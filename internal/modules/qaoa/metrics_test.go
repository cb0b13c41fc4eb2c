package qaoa

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeMetrics_EqualWeightPortfolio(t *testing.T) {
	mu := []float64{0.001, 0.002, 0.003}
	sigma := [][]float64{
		{0.0004, 0.0001, 0.0000},
		{0.0001, 0.0009, 0.0002},
		{0.0000, 0.0002, 0.0016},
	}

	metrics, err := ComputeMetrics(mu, sigma, []int{0, 2})
	require.NoError(t, err)

	// w = (0.5, 0, 0.5): daily return 0.002, variance 0.25*(0.0004+0.0016).
	assert.InDelta(t, 252*0.002, metrics.AnnualReturn, 1e-12)
	assert.InDelta(t, math.Sqrt(252*0.0005), metrics.AnnualVolatility, 1e-12)
}

func TestComputeMetrics_InvalidIndices(t *testing.T) {
	mu := []float64{0.001, 0.002}
	sigma := [][]float64{{0.0004, 0}, {0, 0.0009}}

	_, err := ComputeMetrics(mu, sigma, []int{0, 5})
	assert.Error(t, err)

	_, err = ComputeMetrics(mu, sigma, nil)
	assert.Error(t, err)
}
