package qaoa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/quantum-portfolio/internal/modules/qubo"
)

// quboZeroProblem builds an n-asset problem with all-zero coefficients.
func quboZeroProblem(n, b int) (*qubo.Problem, error) {
	quadratic := make([][]float64, n)
	for i := range quadratic {
		quadratic[i] = make([]float64, n)
	}
	return qubo.NewProblem(quadratic, make([]float64, n), nil, nil, b, nil)
}

func TestSelectBest_PicksMinimumObjective(t *testing.T) {
	problem := diagProblem(t)
	counts := map[string]int{
		"0011": 50, // assets 2,3 -> objective 7
		"1100": 30, // assets 0,1 -> objective 3
		"0101": 20, // assets 1,3 -> objective 6
	}

	selection, err := SelectBest(counts, problem)
	require.NoError(t, err)

	assert.Equal(t, "1100", selection.Bitstring)
	assert.Equal(t, 30, selection.Count)
	assert.InDelta(t, 3.0, selection.Objective, 1e-12)
	assert.Equal(t, []int{0, 1}, selection.Indices)
}

func TestSelectBest_IgnoresWrongCardinality(t *testing.T) {
	problem := diagProblem(t)
	counts := map[string]int{
		"1000": 900, // weight 1, filtered out despite dominating the counts
		"1110": 50,  // weight 3, filtered out
		"0110": 10,  // assets 1,2 -> objective 5
	}

	selection, err := SelectBest(counts, problem)
	require.NoError(t, err)
	assert.Equal(t, "0110", selection.Bitstring)
}

func TestSelectBest_NoValidBitstrings(t *testing.T) {
	problem := diagProblem(t)
	counts := map[string]int{"1000": 100, "1111": 20}

	_, err := SelectBest(counts, problem)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cardinality 2")
}

func TestSelectBest_TiesBreakLexicographically(t *testing.T) {
	// Zero objective everywhere: every weight-1 bitstring ties, and the
	// lexicographically smallest must win regardless of its count.
	problem, err := quboZeroProblem(3, 1)
	require.NoError(t, err)
	counts := map[string]int{"100": 5, "010": 90, "001": 5}

	selection, err := SelectBest(counts, problem)
	require.NoError(t, err)
	assert.Equal(t, "001", selection.Bitstring)
}

func TestSelectBest_RejectsMalformedOutcome(t *testing.T) {
	problem := diagProblem(t)

	_, err := SelectBest(map[string]int{"11x0": 1}, problem)
	assert.Error(t, err)

	_, err = SelectBest(map[string]int{"11": 1}, problem)
	assert.Error(t, err)
}
