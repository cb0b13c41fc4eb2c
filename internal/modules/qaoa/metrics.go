package qaoa

import (
	"fmt"

	"github.com/aristath/quantum-portfolio/pkg/formulas"
)

// PortfolioMetrics are single-period estimates for the selected portfolio
// under equal weighting.
type PortfolioMetrics struct {
	AnnualReturn     float64 `json:"annual_return"`
	AnnualVolatility float64 `json:"annual_volatility"`
}

// ComputeMetrics reports annualized return and volatility for an
// equal-weight 1/B allocation over the selected asset indices.
func ComputeMetrics(mu []float64, sigma [][]float64, indices []int) (PortfolioMetrics, error) {
	weights, err := formulas.EqualWeights(len(mu), indices)
	if err != nil {
		return PortfolioMetrics{}, fmt.Errorf("failed to build weights: %w", err)
	}

	annualReturn, err := formulas.AnnualizedPortfolioReturn(mu, weights)
	if err != nil {
		return PortfolioMetrics{}, fmt.Errorf("failed to compute return: %w", err)
	}

	annualVol, err := formulas.AnnualizedPortfolioVolatility(sigma, weights)
	if err != nil {
		return PortfolioMetrics{}, fmt.Errorf("failed to compute volatility: %w", err)
	}

	return PortfolioMetrics{
		AnnualReturn:     annualReturn,
		AnnualVolatility: annualVol,
	}, nil
}
