package qpu

import (
	"fmt"
	"math/cmplx"

	"github.com/oqtopus-team/oqtopus-engine/sfbridge/circuit"
)

func newZeroState(qubitCount int) StateVector {
	s := make(StateVector, 1<<qubitCount)
	s[0] = 1
	return s
}

func (s StateVector) qubitCount() int {
	n := 0
	for 1<<n < len(s) {
		n++
	}
	return n
}

func (s StateVector) shift(qubit int) uint {
	return uint(s.qubitCount() - qubit)
}

// apply multiplies u into the amplitudes of the given 1-based qubits in
// place. The first qubit is the most significant bit of u's index.
func (s StateVector) apply(u circuit.Matrix, qubits []int) error {
	k := len(qubits)
	dim := 1 << k
	if u.Dim() != dim || !u.IsSquare() {
		return fmt.Errorf("matrix of dim %d does not act on %d qubits", u.Dim(), k)
	}
	shifts := make([]uint, k)
	mask := 0
	for j, q := range qubits {
		shifts[j] = s.shift(q)
		mask |= 1 << shifts[j]
	}
	idx := make([]int, dim)
	amps := make([]complex128, dim)
	for base := range s {
		if base&mask != 0 {
			continue
		}
		for sub := 0; sub < dim; sub++ {
			i := base
			for j := 0; j < k; j++ {
				if (sub>>(k-1-j))&1 == 1 {
					i |= 1 << shifts[j]
				}
			}
			idx[sub] = i
			amps[sub] = s[i]
		}
		for r := 0; r < dim; r++ {
			var v complex128
			for c := 0; c < dim; c++ {
				v += u[r][c] * amps[c]
			}
			s[idx[r]] = v
		}
	}
	return nil
}

func (s StateVector) probabilities() []float64 {
	probs := make([]float64, len(s))
	for i, a := range s {
		abs := cmplx.Abs(a)
		probs[i] = abs * abs
	}
	return probs
}

// marginal sums probs over every qubit not in qubits.
func (s StateVector) marginal(qubits []int) []float64 {
	k := len(qubits)
	out := make([]float64, 1<<k)
	for i, p := range s.probabilities() {
		o := 0
		for j, q := range qubits {
			if (i>>s.shift(q))&1 == 1 {
				o |= 1 << (k - 1 - j)
			}
		}
		out[o] += p
	}
	return out
}

func (s StateVector) bit(index, qubit int) byte {
	if (index>>s.shift(qubit))&1 == 1 {
		return '1'
	}
	return '0'
}
