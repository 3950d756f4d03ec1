package circuit

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-faster/errors"
)

const (
	PauliX    = "PauliX"
	PauliY    = "PauliY"
	PauliZ    = "PauliZ"
	Hadamard  = "Hadamard"
	Identity  = "Identity"
	Hermitian = "Hermitian"
)

var namedObservables = map[string]Matrix{
	PauliX: {{0, 1}, {1, 0}},
	PauliY: {{0, -1i}, {1i, 0}},
	PauliZ: {{1, 0}, {0, -1}},
	Hadamard: {
		{complex(1/math.Sqrt2, 0), complex(1/math.Sqrt2, 0)},
		{complex(1/math.Sqrt2, 0), complex(-1/math.Sqrt2, 0)},
	},
	Identity: {{1, 0}, {0, 1}},
}

// Observable is a measured quantity over some wires. Matrix is nil when the
// observable has no matrix representation.
type Observable struct {
	Name   string
	Wires  []int
	Matrix Matrix
}

// NewObservable returns a named single wire observable. Unknown names are
// accepted and carry no matrix.
func NewObservable(name string, wire int) *Observable {
	o := &Observable{
		Name:  name,
		Wires: []int{wire},
	}
	if m, ok := namedObservables[name]; ok {
		o.Matrix = m
	}
	return o
}

func NewHermitian(m Matrix, wires ...int) (*Observable, error) {
	if !isPowerOfTwo(m.Dim()) || log2(m.Dim()) != len(wires) {
		return nil, fmt.Errorf("matrix of dim %d does not act on %d wires", m.Dim(), len(wires))
	}
	if !m.IsHermitian(1e-9) {
		return nil, errors.New("matrix is not hermitian")
	}
	return &Observable{
		Name:   Hermitian,
		Wires:  append([]int(nil), wires...),
		Matrix: m,
	}, nil
}

// Tensor returns the product observable of a and b on disjoint wires.
func Tensor(a, b *Observable) (*Observable, error) {
	for _, wa := range a.Wires {
		for _, wb := range b.Wires {
			if wa == wb {
				return nil, fmt.Errorf("wire %d is shared by %s and %s", wa, a.Name, b.Name)
			}
		}
	}
	o := &Observable{
		Name:  strings.Join([]string{a.Name, b.Name}, "@"),
		Wires: append(append([]int(nil), a.Wires...), b.Wires...),
	}
	if a.HasMatrix() && b.HasMatrix() {
		o.Matrix = a.Matrix.Kron(b.Matrix)
	}
	return o, nil
}

func (o *Observable) HasMatrix() bool {
	return o != nil && o.Matrix != nil
}

func (o *Observable) String() string {
	return fmt.Sprintf("%s%v", o.Name, o.Wires)
}
