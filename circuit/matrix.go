package circuit

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Matrix is a dense row-major complex matrix.
type Matrix [][]complex128

func NewMatrix(rows, cols int) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		m[i] = make([]complex128, cols)
	}
	return m
}

func IdentityMatrix(dim int) Matrix {
	m := NewMatrix(dim, dim)
	for i := 0; i < dim; i++ {
		m[i][i] = 1
	}
	return m
}

func (m Matrix) Dim() int {
	return len(m)
}

func (m Matrix) IsSquare() bool {
	for _, row := range m {
		if len(row) != len(m) {
			return false
		}
	}
	return true
}

// Kron returns the Kronecker product m ⊗ o.
func (m Matrix) Kron(o Matrix) Matrix {
	r := NewMatrix(len(m)*len(o), len(m[0])*len(o[0]))
	for i, mrow := range m {
		for j, a := range mrow {
			for k, orow := range o {
				for l, b := range orow {
					r[i*len(o)+k][j*len(orow)+l] = a * b
				}
			}
		}
	}
	return r
}

func (m Matrix) MulVec(v []complex128) ([]complex128, error) {
	if len(m) == 0 || len(m[0]) != len(v) {
		return nil, fmt.Errorf("dimension mismatch/matrix:%d/vector:%d", len(m), len(v))
	}
	r := make([]complex128, len(m))
	for i, row := range m {
		var s complex128
		for j, a := range row {
			s += a * v[j]
		}
		r[i] = s
	}
	return r, nil
}

func (m Matrix) IsHermitian(tol float64) bool {
	if !m.IsSquare() {
		return false
	}
	for i := range m {
		for j := range m {
			if cmplx.Abs(m[i][j]-cmplx.Conj(m[j][i])) > tol {
				return false
			}
		}
	}
	return true
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func log2(n int) int {
	return int(math.Round(math.Log2(float64(n))))
}
