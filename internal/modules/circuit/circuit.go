// Package circuit builds and simulates the cardinality-preserving QAOA-XY
// ansatz. A Circuit is an immutable parametric template; binding a concrete
// parameter vector produces a new BoundCircuit that can be simulated exactly
// or sampled with finite shots.
package circuit

import (
	"fmt"
)

// GateKind identifies the gate set used by the ansatz.
type GateKind int

const (
	// GateX is a fixed bit flip used for initial state preparation.
	GateX GateKind = iota
	// GateRZ is a single-qubit Z rotation (cost layer, local field).
	GateRZ
	// GateRZZ is a two-qubit ZZ phase rotation (cost layer, coupling).
	GateRZZ
	// GateRXX is a two-qubit XX rotation (mixer layer).
	GateRXX
	// GateRYY is a two-qubit YY rotation (mixer layer).
	GateRYY
)

// ParamRole distinguishes which half of the parameter vector a gate reads.
type ParamRole int

const (
	// RoleNone marks a fixed (non-parametric) gate.
	RoleNone ParamRole = iota
	// RoleGamma binds the gate angle to a cost-layer parameter.
	RoleGamma
	// RoleBeta binds the gate angle to a mixer-layer parameter.
	RoleBeta
)

// Gate is one operation of the parametric template. For parametric gates the
// bound angle is Coeff * theta[role,layer]; fixed gates ignore Coeff.
type Gate struct {
	Kind   GateKind
	Qubit1 int
	Qubit2 int // second qubit for two-qubit gates, unused otherwise
	Role   ParamRole
	Layer  int // parameter layer index, -1 for fixed gates
	Coeff  float64
}

// Circuit is an immutable parametric template over n qubits with Depth
// alternating cost/mixer layers. The parameter vector is ordered as Depth
// gammas followed by Depth betas.
type Circuit struct {
	NumQubits int
	Depth     int
	InitBits  []int
	gates     []Gate
}

// boundGate is a gate with its angle resolved to a concrete value.
type boundGate struct {
	kind   GateKind
	qubit1 int
	qubit2 int
	angle  float64
}

// BoundCircuit is a concrete (non-parametric) circuit produced by Bind.
type BoundCircuit struct {
	NumQubits int
	gates     []boundGate
}

// NumParams returns the length of the expected parameter vector (2*Depth).
func (c *Circuit) NumParams() int {
	return 2 * c.Depth
}

// NumGates returns the number of operations in the template.
func (c *Circuit) NumGates() int {
	return len(c.gates)
}

// Bind resolves the template against a concrete parameter vector theta
// (gammas first, then betas) and returns a new executable circuit. The
// template itself is never mutated.
func (c *Circuit) Bind(theta []float64) (*BoundCircuit, error) {
	if len(theta) != c.NumParams() {
		return nil, fmt.Errorf("parameter vector has %d values, circuit expects %d", len(theta), c.NumParams())
	}

	bound := make([]boundGate, len(c.gates))
	for i, gate := range c.gates {
		angle := 0.0
		switch gate.Role {
		case RoleGamma:
			angle = gate.Coeff * theta[gate.Layer]
		case RoleBeta:
			angle = gate.Coeff * theta[c.Depth+gate.Layer]
		}
		bound[i] = boundGate{
			kind:   gate.Kind,
			qubit1: gate.Qubit1,
			qubit2: gate.Qubit2,
			angle:  angle,
		}
	}

	return &BoundCircuit{NumQubits: c.NumQubits, gates: bound}, nil
}
