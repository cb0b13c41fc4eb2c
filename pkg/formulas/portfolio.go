package formulas

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// TradingDaysPerYear is the annualization factor for daily statistics.
const TradingDaysPerYear = 252

// EqualWeights builds a weight vector of length n with 1/len(indices) on
// each selected index and 0 elsewhere.
func EqualWeights(n int, indices []int) ([]float64, error) {
	if len(indices) == 0 {
		return nil, fmt.Errorf("no indices selected")
	}
	w := make([]float64, n)
	share := 1.0 / float64(len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= n {
			return nil, fmt.Errorf("index %d out of range [0, %d)", idx, n)
		}
		w[idx] = share
	}
	return w, nil
}

// AnnualizedPortfolioReturn computes 252 * (w . mu) from daily mean returns.
func AnnualizedPortfolioReturn(mu, weights []float64) (float64, error) {
	if len(mu) != len(weights) {
		return 0, fmt.Errorf("mu size %d doesn't match weights size %d", len(mu), len(weights))
	}
	return TradingDaysPerYear * floats.Dot(weights, mu), nil
}

// AnnualizedPortfolioVolatility computes sqrt(252 * w'Sigma*w) from a daily
// covariance matrix.
func AnnualizedPortfolioVolatility(sigma [][]float64, weights []float64) (float64, error) {
	n := len(weights)
	if len(sigma) != n {
		return 0, fmt.Errorf("sigma size %d doesn't match weights size %d", len(sigma), n)
	}
	flat := make([]float64, 0, n*n)
	for i := range sigma {
		if len(sigma[i]) != n {
			return 0, fmt.Errorf("sigma row %d has size %d, expected %d", i, len(sigma[i]), n)
		}
		flat = append(flat, sigma[i]...)
	}

	w := mat.NewVecDense(n, weights)
	variance := mat.Inner(w, mat.NewDense(n, n, flat), w)
	if variance < 0 {
		// Covariance matrices are PSD up to rounding; clamp tiny negatives.
		variance = 0
	}
	return math.Sqrt(TradingDaysPerYear * variance), nil
}
