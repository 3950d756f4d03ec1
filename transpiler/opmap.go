package transpiler

import (
	"sort"

	"github.com/oqtopus-team/oqtopus-engine/sfbridge/qpu"
)

// OPERATION_MAP_VERSION changes whenever an entry of the table changes.
const OPERATION_MAP_VERSION = "1"

type LookupResult int

const (
	Found LookupResult = iota
	Unimplemented
	NotFound
)

func (l LookupResult) String() string {
	switch l {
	case Found:
		return "found"
	case Unimplemented:
		return "unimplemented"
	case NotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// BuildFunc creates the target gate from the parameters of the source
// operation and its already shifted 1-based wires.
type BuildFunc func(params []float64, wires []int) *qpu.Gate

// Entry maps one source operation to a target gate.
type Entry struct {
	Target        string
	Wires         int
	Params        int
	Build         BuildFunc
	Unimplemented bool
}

func oneQubit(target string, gate func(int) *qpu.Gate) Entry {
	return Entry{
		Target: target,
		Wires:  1,
		Build: func(_ []float64, w []int) *qpu.Gate {
			return gate(w[0])
		},
	}
}

func twoQubit(target string, gate func(int, int) *qpu.Gate) Entry {
	return Entry{
		Target: target,
		Wires:  2,
		Build: func(_ []float64, w []int) *qpu.Gate {
			return gate(w[0], w[1])
		},
	}
}

// oneAngle gates take the wire first and the angle second.
func oneAngle(target string, gate func(int, float64) *qpu.Gate) Entry {
	return Entry{
		Target: target,
		Wires:  1,
		Params: 1,
		Build: func(p []float64, w []int) *qpu.Gate {
			return gate(w[0], p[0])
		},
	}
}

var unimplemented = Entry{Unimplemented: true}

var operationMap = map[string]Entry{
	"PauliX":   oneQubit(qpu.SIGMA_X, qpu.SigmaX),
	"PauliY":   oneQubit(qpu.SIGMA_Y, qpu.SigmaY),
	"PauliZ":   oneQubit(qpu.SIGMA_Z, qpu.SigmaZ),
	"Hadamard": oneQubit(qpu.HADAMARD, qpu.Hadamard),
	"Identity": oneQubit(qpu.IDENTITY_GATE, qpu.IdentityGate),
	"T":        oneQubit(qpu.PI_8, qpu.Pi8),

	"CNOT":  twoQubit(qpu.CONTROL_X, qpu.ControlX),
	"CZ":    twoQubit(qpu.CONTROL_Z, qpu.ControlZ),
	"SWAP":  twoQubit(qpu.SWAP, qpu.Swap),
	"ISWAP": twoQubit(qpu.ISWAP, qpu.ISwap),

	"RX":         oneAngle(qpu.ROTATION_X, qpu.RotationX),
	"RY":         oneAngle(qpu.ROTATION_Y, qpu.RotationY),
	"RZ":         oneAngle(qpu.ROTATION_Z, qpu.RotationZ),
	"PhaseShift": oneAngle(qpu.PHASE_SHIFT, qpu.PhaseShift),

	"CRX": {
		Target: qpu.CONTROLLED,
		Wires:  2,
		Params: 1,
		Build: func(p []float64, w []int) *qpu.Gate {
			return qpu.Controlled(qpu.RotationX(w[1], p[0]), w[0])
		},
	},
	"Toffoli": {
		Target: qpu.TOFFOLI,
		Wires:  3,
		Build: func(_ []float64, w []int) *qpu.Gate {
			return qpu.Toffoli(w[0], w[1], w[2])
		},
	},
	"U3": {
		Target: qpu.UNIVERSAL,
		Wires:  1,
		Params: 3,
		Build: func(p []float64, w []int) *qpu.Gate {
			return qpu.Universal(w[0], p[0], p[1], p[2])
		},
	},
	// rotation has no slot for omega, the third parameter is dropped.
	"Rot": {
		Target: qpu.ROTATION,
		Wires:  1,
		Params: 3,
		Build: func(p []float64, w []int) *qpu.Gate {
			return qpu.Rotation(w[0], p[0], p[1])
		},
	},

	"CSWAP":            unimplemented,
	"CRY":              unimplemented,
	"CRZ":              unimplemented,
	"QubitStateVector": unimplemented,
	"StatePrep":        unimplemented,
	"QubitUnitary":     unimplemented,
	"U1":               unimplemented,
	"U2":               unimplemented,
	"IsingXX":          unimplemented,
	"IsingYY":          unimplemented,
	"IsingZZ":          unimplemented,
	"QFT":              unimplemented,
}

func Lookup(name string) (Entry, LookupResult) {
	e, ok := operationMap[name]
	switch {
	case !ok:
		return Entry{}, NotFound
	case e.Unimplemented:
		return e, Unimplemented
	default:
		return e, Found
	}
}

// Operations returns the source operation names with the given lookup
// result, sorted.
func Operations(result LookupResult) []string {
	names := []string{}
	for name := range operationMap {
		if _, r := Lookup(name); r == result {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
