package qpu

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/oqtopus-team/oqtopus-engine/sfbridge/circuit"
)

const (
	SIGMA_X       = "sigma_x"
	SIGMA_Y       = "sigma_y"
	SIGMA_Z       = "sigma_z"
	HADAMARD      = "hadamard"
	CONTROL_X     = "control_x"
	CONTROL_Z     = "control_z"
	SWAP          = "swap"
	ISWAP         = "iswap"
	ROTATION_X    = "rotation_x"
	ROTATION_Y    = "rotation_y"
	ROTATION_Z    = "rotation_z"
	ROTATION      = "rotation"
	PHASE_SHIFT   = "phase_shift"
	IDENTITY_GATE = "identity_gate"
	TOFFOLI       = "toffoli"
	UNIVERSAL     = "universal"
	PI_8          = "pi_8"
	CONTROLLED    = "controlled"
)

// gateTypeNames are the names reported by AsDictionaries.
var gateTypeNames = map[string]string{
	SIGMA_X:       "SigmaX",
	SIGMA_Y:       "SigmaY",
	SIGMA_Z:       "SigmaZ",
	HADAMARD:      "Hadamard",
	CONTROL_X:     "ControlX",
	CONTROL_Z:     "ControlZ",
	SWAP:          "Swap",
	ISWAP:         "ISwap",
	ROTATION_X:    "RotationX",
	ROTATION_Y:    "RotationY",
	ROTATION_Z:    "RotationZ",
	ROTATION:      "Rotation",
	PHASE_SHIFT:   "PhaseShift",
	IDENTITY_GATE: "Identity",
	TOFFOLI:       "Toffoli",
	UNIVERSAL:     "Universal",
	PI_8:          "Pi8",
	CONTROLLED:    "Controlled",
}

func newGate(name string, params []float64, qubits ...int) *Gate {
	return &Gate{
		Name:            name,
		ConnectedQubits: qubits,
		Params:          params,
	}
}

func SigmaX(q int) *Gate   { return newGate(SIGMA_X, nil, q) }
func SigmaY(q int) *Gate   { return newGate(SIGMA_Y, nil, q) }
func SigmaZ(q int) *Gate   { return newGate(SIGMA_Z, nil, q) }
func Hadamard(q int) *Gate { return newGate(HADAMARD, nil, q) }
func Pi8(q int) *Gate      { return newGate(PI_8, nil, q) }

func IdentityGate(q int) *Gate { return newGate(IDENTITY_GATE, nil, q) }

func ControlX(control, target int) *Gate { return newGate(CONTROL_X, nil, control, target) }
func ControlZ(control, target int) *Gate { return newGate(CONTROL_Z, nil, control, target) }
func Swap(q1, q2 int) *Gate              { return newGate(SWAP, nil, q1, q2) }
func ISwap(q1, q2 int) *Gate             { return newGate(ISWAP, nil, q1, q2) }

func Toffoli(control1, control2, target int) *Gate {
	return newGate(TOFFOLI, nil, control1, control2, target)
}

func RotationX(q int, theta float64) *Gate { return newGate(ROTATION_X, []float64{theta}, q) }
func RotationY(q int, theta float64) *Gate { return newGate(ROTATION_Y, []float64{theta}, q) }
func RotationZ(q int, theta float64) *Gate { return newGate(ROTATION_Z, []float64{theta}, q) }
func PhaseShift(q int, phi float64) *Gate  { return newGate(PHASE_SHIFT, []float64{phi}, q) }

func Rotation(q int, theta, phi float64) *Gate {
	return newGate(ROTATION, []float64{theta, phi}, q)
}

func Universal(q int, theta, phi, lambda float64) *Gate {
	return newGate(UNIVERSAL, []float64{theta, phi, lambda}, q)
}

// Controlled applies kernel when every control qubit is 1.
func Controlled(kernel *Gate, controls ...int) *Gate {
	qubits := append(append([]int{}, controls...), kernel.ConnectedQubits...)
	return &Gate{
		Name:            CONTROLLED,
		ConnectedQubits: qubits,
		Kernel:          kernel,
	}
}

// TypeName is the name of the gate as reported by introspection.
func (g *Gate) TypeName() string {
	if n, ok := gateTypeNames[g.Name]; ok {
		return n
	}
	return g.Name
}

// Matrix returns the unitary of the gate over its connected qubits, the
// first connected qubit being the most significant.
func (g *Gate) Matrix() (circuit.Matrix, error) {
	p := func(i int) (float64, error) {
		if i >= len(g.Params) {
			return 0, fmt.Errorf("%s needs %d parameters, got %d", g.Name, i+1, len(g.Params))
		}
		return g.Params[i], nil
	}
	switch g.Name {
	case SIGMA_X:
		return circuit.Matrix{{0, 1}, {1, 0}}, nil
	case SIGMA_Y:
		return circuit.Matrix{{0, -1i}, {1i, 0}}, nil
	case SIGMA_Z:
		return circuit.Matrix{{1, 0}, {0, -1}}, nil
	case HADAMARD:
		h := complex(1/math.Sqrt2, 0)
		return circuit.Matrix{{h, h}, {h, -h}}, nil
	case IDENTITY_GATE:
		return circuit.IdentityMatrix(2), nil
	case PI_8:
		return circuit.Matrix{{1, 0}, {0, cmplx.Exp(complex(0, math.Pi/4))}}, nil
	case ROTATION_X, ROTATION_Y, ROTATION_Z, PHASE_SHIFT:
		theta, err := p(0)
		if err != nil {
			return nil, err
		}
		return singleAngleMatrix(g.Name, theta), nil
	case ROTATION:
		theta, err := p(0)
		if err != nil {
			return nil, err
		}
		phi, err := p(1)
		if err != nil {
			return nil, err
		}
		c, s := math.Cos(theta/2), math.Sin(theta/2)
		return circuit.Matrix{
			{complex(c, 0), complex(0, -1) * cmplx.Exp(complex(0, -phi)) * complex(s, 0)},
			{complex(0, -1) * cmplx.Exp(complex(0, phi)) * complex(s, 0), complex(c, 0)},
		}, nil
	case UNIVERSAL:
		theta, err := p(0)
		if err != nil {
			return nil, err
		}
		phi, err := p(1)
		if err != nil {
			return nil, err
		}
		lambda, err := p(2)
		if err != nil {
			return nil, err
		}
		c, s := math.Cos(theta/2), math.Sin(theta/2)
		return circuit.Matrix{
			{complex(c, 0), -cmplx.Exp(complex(0, lambda)) * complex(s, 0)},
			{cmplx.Exp(complex(0, phi)) * complex(s, 0), cmplx.Exp(complex(0, phi+lambda)) * complex(c, 0)},
		}, nil
	case CONTROL_X:
		return controlledMatrix(circuit.Matrix{{0, 1}, {1, 0}}, 1), nil
	case CONTROL_Z:
		return controlledMatrix(circuit.Matrix{{1, 0}, {0, -1}}, 1), nil
	case TOFFOLI:
		return controlledMatrix(circuit.Matrix{{0, 1}, {1, 0}}, 2), nil
	case SWAP:
		return circuit.Matrix{
			{1, 0, 0, 0},
			{0, 0, 1, 0},
			{0, 1, 0, 0},
			{0, 0, 0, 1},
		}, nil
	case ISWAP:
		return circuit.Matrix{
			{1, 0, 0, 0},
			{0, 0, 1i, 0},
			{0, 1i, 0, 0},
			{0, 0, 0, 1},
		}, nil
	case CONTROLLED:
		if g.Kernel == nil {
			return nil, fmt.Errorf("controlled gate without kernel")
		}
		k, err := g.Kernel.Matrix()
		if err != nil {
			return nil, err
		}
		return controlledMatrix(k, len(g.ConnectedQubits)-len(g.Kernel.ConnectedQubits)), nil
	default:
		return nil, fmt.Errorf("no matrix for gate %s", g.Name)
	}
}

func singleAngleMatrix(name string, theta float64) circuit.Matrix {
	c, s := math.Cos(theta/2), math.Sin(theta/2)
	switch name {
	case ROTATION_X:
		return circuit.Matrix{{complex(c, 0), complex(0, -s)}, {complex(0, -s), complex(c, 0)}}
	case ROTATION_Y:
		return circuit.Matrix{{complex(c, 0), complex(-s, 0)}, {complex(s, 0), complex(c, 0)}}
	case ROTATION_Z:
		return circuit.Matrix{{cmplx.Exp(complex(0, -theta/2)), 0}, {0, cmplx.Exp(complex(0, theta/2))}}
	default:
		return circuit.Matrix{{1, 0}, {0, cmplx.Exp(complex(0, theta))}}
	}
}

// controlledMatrix embeds kernel in the lower right block of an identity
// over controls extra qubits.
func controlledMatrix(kernel circuit.Matrix, controls int) circuit.Matrix {
	dim := kernel.Dim() << controls
	m := circuit.IdentityMatrix(dim)
	offset := dim - kernel.Dim()
	for i, row := range kernel {
		for j, v := range row {
			m[offset+i][offset+j] = v
		}
	}
	return m
}
