package circuit

import (
	"math"
	"math/cmplx"
)

// Simulate runs the bound circuit on the |0...0> state and returns the full
// state vector. Amplitude index bit i corresponds to qubit i (and therefore
// to asset i); the same convention is used when decoding measurement
// outcomes, so the exact-expectation path and the sampling path agree.
//
// Memory and time are O(2^n) per gate; callers cap n.
func (bc *BoundCircuit) Simulate() []complex128 {
	state := make([]complex128, 1<<bc.NumQubits)
	state[0] = 1

	for _, gate := range bc.gates {
		switch gate.kind {
		case GateX:
			applyX(state, gate.qubit1)
		case GateRZ:
			applyRZ(state, gate.qubit1, gate.angle)
		case GateRZZ:
			applyRZZ(state, gate.qubit1, gate.qubit2, gate.angle)
		case GateRXX:
			applyRXX(state, gate.qubit1, gate.qubit2, gate.angle)
		case GateRYY:
			applyRYY(state, gate.qubit1, gate.qubit2, gate.angle)
		}
	}

	return state
}

// Probabilities returns |amplitude|^2 for every basis index.
func Probabilities(state []complex128) []float64 {
	probs := make([]float64, len(state))
	for k, amp := range state {
		probs[k] = real(amp)*real(amp) + imag(amp)*imag(amp)
	}
	return probs
}

func applyX(state []complex128, q int) {
	bit := 1 << q
	for k := range state {
		if k&bit == 0 {
			j := k | bit
			state[k], state[j] = state[j], state[k]
		}
	}
}

// applyRZ applies diag(e^{-i*angle/2}, e^{+i*angle/2}) on qubit q.
func applyRZ(state []complex128, q int, angle float64) {
	bit := 1 << q
	minus := cmplx.Exp(complex(0, -angle/2.0))
	plus := cmplx.Exp(complex(0, angle/2.0))
	for k := range state {
		if k&bit == 0 {
			state[k] *= minus
		} else {
			state[k] *= plus
		}
	}
}

// applyRZZ phases each basis state by the ZZ eigenvalue: e^{-i*angle/2} when
// the two bits agree, e^{+i*angle/2} when they differ.
func applyRZZ(state []complex128, q1, q2 int, angle float64) {
	bit1 := 1 << q1
	bit2 := 1 << q2
	minus := cmplx.Exp(complex(0, -angle/2.0))
	plus := cmplx.Exp(complex(0, angle/2.0))
	for k := range state {
		if (k&bit1 == 0) == (k&bit2 == 0) {
			state[k] *= minus
		} else {
			state[k] *= plus
		}
	}
}

// applyRXX applies cos(angle/2)*I - i*sin(angle/2)*(X@X): each basis state
// mixes with the partner that has both qubit bits flipped.
func applyRXX(state []complex128, q1, q2 int, angle float64) {
	mask := (1 << q1) | (1 << q2)
	cos := complex(math.Cos(angle/2.0), 0)
	isin := complex(0, math.Sin(angle/2.0))
	for k := range state {
		partner := k ^ mask
		if k < partner {
			a, b := state[k], state[partner]
			state[k] = cos*a - isin*b
			state[partner] = cos*b - isin*a
		}
	}
}

// applyRYY applies cos(angle/2)*I - i*sin(angle/2)*(Y@Y). Y@Y maps |00> to
// -|11> and |01> to +|10>, so the mixing sign depends on whether the two
// bits agree.
func applyRYY(state []complex128, q1, q2 int, angle float64) {
	bit1 := 1 << q1
	bit2 := 1 << q2
	mask := bit1 | bit2
	cos := complex(math.Cos(angle/2.0), 0)
	isin := complex(0, math.Sin(angle/2.0))
	for k := range state {
		partner := k ^ mask
		if k < partner {
			sign := complex(1, 0)
			if (k&bit1 == 0) == (k&bit2 == 0) {
				sign = -sign
			}
			a, b := state[k], state[partner]
			state[k] = cos*a - isin*sign*b
			state[partner] = cos*b - isin*sign*a
		}
	}
}
