package qubo

// Hamiltonian is the Ising form of a QUBO instance under the substitution
// x_i = (1 - Z_i)/2. J holds the upper-triangular pair couplings, H the local
// fields, and Const the accumulated constant shift.
type Hamiltonian struct {
	J     [][]float64
	H     []float64
	Const float64
}

// ToIsing converts QUBO coefficients to Ising form. The mapping is an exact
// algebraic substitution: for each unordered pair i<j the coupling is
// Q[i][j]/4 with -Q[i][j]/4 pushed into each local field and +Q[i][j]/4 into
// the constant; each diagonal term contributes -(Q[i][i]/2 + q[i]/2) to the
// field and the negated amount to the constant.
func ToIsing(quadratic [][]float64, linear []float64, n int) Hamiltonian {
	j := make([][]float64, n)
	for i := range j {
		j[i] = make([]float64, n)
	}
	h := make([]float64, n)
	var constant float64

	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			coupling := quadratic[a][b] / 4.0
			j[a][b] = coupling
			h[a] -= coupling
			h[b] -= coupling
			constant += coupling
		}
	}
	for a := 0; a < n; a++ {
		diag := quadratic[a][a]/2.0 + linear[a]/2.0
		h[a] -= diag
		constant += diag
	}

	return Hamiltonian{J: j, H: h, Const: constant}
}

// Energy evaluates the Hamiltonian at the spin configuration implied by the
// binary vector x (Z_i = 1 - 2x_i). Used to verify the substitution: the
// energy at x equals the single-counted quadratic form
// sum_i (Q[i][i]+q[i]) x_i + sum_{i<j} Q[i][j] x_i x_j.
func (ham Hamiltonian) Energy(x []int) float64 {
	n := len(ham.H)
	z := make([]float64, n)
	for i := 0; i < n; i++ {
		z[i] = 1.0 - 2.0*float64(x[i])
	}

	energy := ham.Const
	for i := 0; i < n; i++ {
		energy += ham.H[i] * z[i]
		for j := i + 1; j < n; j++ {
			energy += ham.J[i][j] * z[i] * z[j]
		}
	}
	return energy
}
