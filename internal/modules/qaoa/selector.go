package qaoa

import (
	"fmt"
	"sort"

	"github.com/aristath/quantum-portfolio/internal/modules/circuit"
	"github.com/aristath/quantum-portfolio/internal/modules/qubo"
)

// Selection is the chosen bitstring after cardinality post-selection,
// immutable once created.
type Selection struct {
	Bitstring string  `json:"bitstring"`
	Count     int     `json:"count"`
	Objective float64 `json:"objective"`
	Indices   []int   `json:"indices"`
}

// SelectBest filters the observed counts to bitstrings of Hamming weight
// exactly B and returns the one with the minimum QUBO objective. Candidates
// are visited in lexicographic bitstring order so ties break the same way on
// every run. Zero qualifying bitstrings is a fatal simulation-exhaustion
// error; the caller may re-run with a larger shot count.
func SelectBest(counts map[string]int, problem *qubo.Problem) (*Selection, error) {
	bitstrings := make([]string, 0, len(counts))
	for s := range counts {
		bitstrings = append(bitstrings, s)
	}
	sort.Strings(bitstrings)

	var best *Selection
	for _, s := range bitstrings {
		x, err := circuit.ParseBits(s)
		if err != nil {
			return nil, fmt.Errorf("malformed measurement outcome: %w", err)
		}
		if len(x) != problem.Size() {
			return nil, fmt.Errorf("outcome %q has %d bits, problem has %d assets", s, len(x), problem.Size())
		}
		weight := 0
		for _, bit := range x {
			weight += bit
		}
		if weight != problem.B {
			continue
		}

		objective := problem.Objective(x)
		if best == nil || objective < best.Objective {
			best = &Selection{
				Bitstring: s,
				Count:     counts[s],
				Objective: objective,
				Indices:   circuit.SetBits(x),
			}
		}
	}

	if best == nil {
		return nil, fmt.Errorf("no bitstrings with cardinality %d were observed; re-run with more shots", problem.B)
	}

	return best, nil
}
