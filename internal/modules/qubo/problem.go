// Package qubo models cardinality-constrained portfolio selection as a
// Quadratic Unconstrained Binary Optimization problem and converts it to the
// equivalent Ising Hamiltonian.
package qubo

import (
	"fmt"
	"math"
)

// symmetryTolerance is the maximum |Q[i][j]-Q[j][i]| treated as symmetric.
const symmetryTolerance = 1e-12

// Problem is a validated QUBO instance plus the portfolio data needed for
// reporting. Minimize x'Qx + q'x over binary x subject to exactly B ones.
type Problem struct {
	Quadratic [][]float64 // Q: n x n symmetric matrix
	Linear    []float64   // q: length-n vector
	Mu        []float64   // expected daily returns, length n
	Sigma     [][]float64 // daily covariance matrix, n x n
	B         int         // cardinality: number of assets to select
	Tickers   []string    // asset identifiers, parallel-indexed

	// Symmetrized reports whether Q had to be corrected during construction.
	Symmetrized bool
}

// NewProblem validates the inputs and returns a Problem ready for solving.
// A non-symmetric Q is corrected by averaging with its transpose; the caller
// can inspect Symmetrized to emit a warning. All other validation failures
// are fatal configuration errors.
func NewProblem(
	quadratic [][]float64,
	linear []float64,
	mu []float64,
	sigma [][]float64,
	b int,
	tickers []string,
) (*Problem, error) {
	n := len(quadratic)
	if n == 0 {
		return nil, fmt.Errorf("empty QUBO matrix")
	}
	for i := range quadratic {
		if len(quadratic[i]) != n {
			return nil, fmt.Errorf("QUBO matrix row %d has size %d, expected %d", i, len(quadratic[i]), n)
		}
	}
	if len(linear) != n {
		return nil, fmt.Errorf("linear vector size %d doesn't match matrix size %d", len(linear), n)
	}
	if b < 1 || b > n {
		return nil, fmt.Errorf("cardinality B=%d out of range [1, %d]", b, n)
	}
	if len(tickers) != 0 && len(tickers) != n {
		return nil, fmt.Errorf("tickers count %d doesn't match matrix size %d", len(tickers), n)
	}
	if len(mu) != 0 && len(mu) != n {
		return nil, fmt.Errorf("mu size %d doesn't match matrix size %d", len(mu), n)
	}
	if len(sigma) != 0 {
		if len(sigma) != n {
			return nil, fmt.Errorf("sigma size %d doesn't match matrix size %d", len(sigma), n)
		}
		for i := range sigma {
			if len(sigma[i]) != n {
				return nil, fmt.Errorf("sigma row %d has size %d, expected %d", i, len(sigma[i]), n)
			}
		}
	}
	if len(tickers) != 0 {
		seen := make(map[string]bool, n)
		for _, ticker := range tickers {
			if seen[ticker] {
				return nil, fmt.Errorf("duplicate ticker %q", ticker)
			}
			seen[ticker] = true
		}
	}

	q, symmetrized := Symmetrize(quadratic)

	return &Problem{
		Quadratic:   q,
		Linear:      linear,
		Mu:          mu,
		Sigma:       sigma,
		B:           b,
		Tickers:     tickers,
		Symmetrized: symmetrized,
	}, nil
}

// Size returns the number of binary variables (assets).
func (p *Problem) Size() int {
	return len(p.Quadratic)
}

// Objective evaluates x'Qx + q'x for a binary vector x.
func (p *Problem) Objective(x []int) float64 {
	n := p.Size()
	var value float64
	for i := 0; i < n; i++ {
		if x[i] == 0 {
			continue
		}
		value += p.Linear[i]
		for j := 0; j < n; j++ {
			if x[j] != 0 {
				value += p.Quadratic[i][j]
			}
		}
	}
	return value
}

// Symmetrize returns (Q + Q')/2 and whether any correction was needed.
// Applying it to an already-symmetric matrix is a no-op apart from the copy.
func Symmetrize(q [][]float64) ([][]float64, bool) {
	n := len(q)
	out := make([][]float64, n)
	corrected := false
	for i := range out {
		out[i] = make([]float64, n)
		copy(out[i], q[i])
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(out[i][j]-out[j][i]) > symmetryTolerance {
				corrected = true
			}
			avg := (out[i][j] + out[j][i]) / 2.0
			out[i][j] = avg
			out[j][i] = avg
		}
	}
	return out, corrected
}
