package qaoa

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/quantum-portfolio/internal/modules/circuit"
	"github.com/aristath/quantum-portfolio/internal/modules/qubo"
)

// diagProblem is the 4-asset diagonal scenario: Q=diag(1,2,3,4), q=0, B=2.
// Every weight-2 objective lies in [3, 7], minimized by assets {0, 1}.
func diagProblem(t *testing.T) *qubo.Problem {
	t.Helper()
	problem, err := qubo.NewProblem(
		[][]float64{
			{1, 0, 0, 0},
			{0, 2, 0, 0},
			{0, 0, 3, 0},
			{0, 0, 0, 4},
		},
		[]float64{0, 0, 0, 0},
		nil, nil, 2, nil,
	)
	require.NoError(t, err)
	return problem
}

func diagAnsatz(t *testing.T, problem *qubo.Problem, depth int) *circuit.Circuit {
	t.Helper()
	ham := qubo.ToIsing(problem.Quadratic, problem.Linear, problem.Size())
	ansatz, err := circuit.BuildXYAnsatz(problem.Size(), depth, ham.J, ham.H, []int{1, 1, 0, 0})
	require.NoError(t, err)
	return ansatz
}

func TestExpectation_BoundedByObjectiveRange(t *testing.T) {
	problem := diagProblem(t)
	ansatz := diagAnsatz(t, problem, 2)
	evaluator := NewEvaluator(problem, ansatz)

	rng := rand.New(rand.NewSource(17))
	for trial := 0; trial < 10; trial++ {
		theta := make([]float64, ansatz.NumParams())
		for i := range theta {
			theta[i] = rng.Float64() * 2 * math.Pi
		}

		value, err := evaluator.Expectation(theta)
		require.NoError(t, err)
		// The mixer keeps all mass in the weight-2 subspace, so the
		// expectation is a convex combination of weight-2 objectives.
		assert.GreaterOrEqual(t, value, 3.0-1e-9, "trial %d", trial)
		assert.LessOrEqual(t, value, 7.0+1e-9, "trial %d", trial)
	}
}

func TestExpectation_ZeroAnglesMatchInitialState(t *testing.T) {
	problem := diagProblem(t)
	ansatz := diagAnsatz(t, problem, 1)
	evaluator := NewEvaluator(problem, ansatz)

	// At theta=0 the circuit is the identity past state prep, so the
	// expectation equals the objective of the initial bitstring "1100".
	value, err := evaluator.Expectation([]float64{0, 0})
	require.NoError(t, err)
	assert.InDelta(t, 3.0, value, 1e-12)
}

func TestExpectation_RejectsWrongParameterCount(t *testing.T) {
	problem := diagProblem(t)
	ansatz := diagAnsatz(t, problem, 2)
	evaluator := NewEvaluator(problem, ansatz)

	_, err := evaluator.Expectation([]float64{0.1})
	assert.Error(t, err)
}
