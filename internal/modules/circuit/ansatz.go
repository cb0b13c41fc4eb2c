package circuit

import (
	"fmt"
)

// coeffEpsilon is the magnitude below which cost coefficients are skipped,
// keeping negligible terms out of the gate list.
const coeffEpsilon = 1e-15

// BuildXYAnsatz constructs the parametric QAOA circuit with an XY ring mixer.
//
// Layout: an X gate on every set bit of initBits establishes the fixed
// Hamming-weight starting state; then for each layer k an RZ(2*gamma_k*h[i])
// on every qubit with a non-negligible field, an RZZ(2*gamma_k*J[i][j]) for
// every non-negligible coupling i<j, and an RXX(2*beta_k) plus RYY(2*beta_k)
// on every ring edge (i, (i+1) mod n). The XX+YY mixer commutes with total
// Hamming weight, so the cardinality of the initial state is preserved
// through every layer.
//
// n=1 is special-cased: the ring degenerates to a self-pair, which is
// skipped (a single asset with B=1 needs no mixing).
func BuildXYAnsatz(n, depth int, couplings [][]float64, fields []float64, initBits []int) (*Circuit, error) {
	if n < 1 {
		return nil, fmt.Errorf("circuit needs at least one qubit, got %d", n)
	}
	if depth < 1 {
		return nil, fmt.Errorf("ansatz depth must be at least 1, got %d", depth)
	}
	if len(fields) != n {
		return nil, fmt.Errorf("field vector size %d doesn't match qubit count %d", len(fields), n)
	}
	if len(couplings) != n {
		return nil, fmt.Errorf("coupling matrix size %d doesn't match qubit count %d", len(couplings), n)
	}
	if len(initBits) != n {
		return nil, fmt.Errorf("initial bitstring size %d doesn't match qubit count %d", len(initBits), n)
	}

	var gates []Gate

	for i, bit := range initBits {
		if bit == 1 {
			gates = append(gates, Gate{Kind: GateX, Qubit1: i, Role: RoleNone, Layer: -1})
		}
	}

	for k := 0; k < depth; k++ {
		for i := 0; i < n; i++ {
			if abs(fields[i]) > coeffEpsilon {
				gates = append(gates, Gate{
					Kind:   GateRZ,
					Qubit1: i,
					Role:   RoleGamma,
					Layer:  k,
					Coeff:  2.0 * fields[i],
				})
			}
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if abs(couplings[i][j]) > coeffEpsilon {
					gates = append(gates, Gate{
						Kind:   GateRZZ,
						Qubit1: i,
						Qubit2: j,
						Role:   RoleGamma,
						Layer:  k,
						Coeff:  2.0 * couplings[i][j],
					})
				}
			}
		}
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			if i == j {
				continue
			}
			gates = append(gates,
				Gate{Kind: GateRXX, Qubit1: i, Qubit2: j, Role: RoleBeta, Layer: k, Coeff: 2.0},
				Gate{Kind: GateRYY, Qubit1: i, Qubit2: j, Role: RoleBeta, Layer: k, Coeff: 2.0},
			)
		}
	}

	bits := make([]int, n)
	copy(bits, initBits)

	return &Circuit{
		NumQubits: n,
		Depth:     depth,
		InitBits:  bits,
		gates:     gates,
	}, nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
