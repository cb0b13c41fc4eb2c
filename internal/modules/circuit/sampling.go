package circuit

import (
	"math/rand"
	"sort"
)

// Sample draws shots measurement outcomes from the state's probability
// distribution and returns a map from asset-order bitstring to observed
// count. The generator is passed in explicitly so runs are reproducible;
// Monte Carlo sampling doesn't need crypto-grade randomness.
func Sample(state []complex128, numQubits, shots int, rng *rand.Rand) map[string]int {
	counts := make(map[string]int)
	if shots <= 0 {
		return counts
	}

	probs := Probabilities(state)

	// Cumulative distribution for inverse-transform sampling. The total can
	// drift slightly from 1 through gate rounding, so draws are scaled by it.
	cumulative := make([]float64, len(probs))
	total := 0.0
	for k, p := range probs {
		total += p
		cumulative[k] = total
	}
	if total <= 0 {
		return counts
	}

	for shot := 0; shot < shots; shot++ {
		r := rng.Float64() * total
		k := sort.SearchFloat64s(cumulative, r)
		if k >= len(probs) {
			k = len(probs) - 1
		}
		counts[FormatBits(DecodeIndex(k, numQubits))]++
	}

	return counts
}
