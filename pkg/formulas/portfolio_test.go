package formulas

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualWeights(t *testing.T) {
	w, err := EqualWeights(4, []int{1, 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 0, 0.5}, w)

	_, err = EqualWeights(4, nil)
	assert.Error(t, err)

	_, err = EqualWeights(4, []int{4})
	assert.Error(t, err)

	_, err = EqualWeights(4, []int{-1})
	assert.Error(t, err)
}

func TestAnnualizedPortfolioReturn(t *testing.T) {
	mu := []float64{0.001, 0.002, 0.003}
	weights := []float64{0.5, 0, 0.5}

	annual, err := AnnualizedPortfolioReturn(mu, weights)
	require.NoError(t, err)
	assert.InDelta(t, 252*0.002, annual, 1e-12)

	_, err = AnnualizedPortfolioReturn(mu, []float64{1})
	assert.Error(t, err)
}

func TestAnnualizedPortfolioVolatility(t *testing.T) {
	sigma := [][]float64{
		{0.0004, 0.0001},
		{0.0001, 0.0009},
	}
	weights := []float64{0.5, 0.5}

	vol, err := AnnualizedPortfolioVolatility(sigma, weights)
	require.NoError(t, err)

	variance := 0.25*0.0004 + 2*0.25*0.0001 + 0.25*0.0009
	assert.InDelta(t, math.Sqrt(252*variance), vol, 1e-12)

	_, err = AnnualizedPortfolioVolatility(sigma, []float64{1})
	assert.Error(t, err)

	_, err = AnnualizedPortfolioVolatility([][]float64{{1}}, weights)
	assert.Error(t, err)
}

func TestAnnualizedPortfolioVolatility_ClampsNegativeVariance(t *testing.T) {
	// A slightly indefinite matrix from rounding must not produce NaN.
	sigma := [][]float64{
		{0, -1e-15},
		{-1e-15, 0},
	}
	vol, err := AnnualizedPortfolioVolatility(sigma, []float64{0.5, 0.5})
	require.NoError(t, err)
	assert.Equal(t, 0.0, vol)
}
