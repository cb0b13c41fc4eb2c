// Package qaoa runs the full simulated QAOA pipeline for cardinality-
// constrained portfolio selection: exact expectation evaluation, multi-start
// variational parameter optimization, finite-shot sampling with cardinality
// post-selection, and portfolio metrics.
package qaoa

import (
	"fmt"

	"github.com/aristath/quantum-portfolio/internal/modules/circuit"
	"github.com/aristath/quantum-portfolio/internal/modules/qubo"
)

// probabilityFloor is the per-basis-state probability below which amplitudes
// are treated as numerical noise and skipped.
const probabilityFloor = 1e-16

// Evaluator computes the exact expectation of the QUBO objective over the
// ansatz output distribution, restricted to basis states of Hamming weight B.
type Evaluator struct {
	problem *qubo.Problem
	ansatz  *circuit.Circuit
}

// NewEvaluator creates an evaluator for the given problem and ansatz.
func NewEvaluator(problem *qubo.Problem, ansatz *circuit.Circuit) *Evaluator {
	return &Evaluator{problem: problem, ansatz: ansatz}
}

// Expectation binds theta, simulates the full state vector, and accumulates
// p(x) * objective(x) over basis states with Hamming weight exactly B. The
// weight filter is defensive: the XY mixer keeps leakage near the numerical
// noise floor. The sum is deliberately NOT renormalized by the total
// weight-B probability mass; the value is a weight-B-conditional expectation
// scaled by that mass, matching the formulation this solver implements.
func (e *Evaluator) Expectation(theta []float64) (float64, error) {
	bound, err := e.ansatz.Bind(theta)
	if err != nil {
		return 0, fmt.Errorf("failed to bind parameters: %w", err)
	}

	state := bound.Simulate()
	n := e.ansatz.NumQubits

	expectation := 0.0
	for k, amp := range state {
		p := real(amp)*real(amp) + imag(amp)*imag(amp)
		if p < probabilityFloor {
			continue
		}
		if circuit.HammingWeight(k) != e.problem.B {
			continue
		}
		expectation += p * e.problem.Objective(circuit.DecodeIndex(k, n))
	}

	return expectation, nil
}
