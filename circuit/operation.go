package circuit

import "fmt"

// Operation is one gate application of the source circuit. Wires are the
// labels of the tape, 0-based once the tape uses standard wires.
type Operation struct {
	Name   string
	Params []float64
	Wires  []int
}

func NewOperation(name string, wires []int, params ...float64) Operation {
	return Operation{
		Name:   name,
		Params: params,
		Wires:  wires,
	}
}

var statePrepOperations = map[string]struct{}{
	"StatePrep":        {},
	"QubitStateVector": {},
	"BasisState":       {},
}

// IsStatePrep reports whether the operation prepares the initial state.
func (o Operation) IsStatePrep() bool {
	_, ok := statePrepOperations[o.Name]
	return ok
}

func (o Operation) String() string {
	if len(o.Params) == 0 {
		return fmt.Sprintf("%s(wires=%v)", o.Name, o.Wires)
	}
	return fmt.Sprintf("%s(%v, wires=%v)", o.Name, o.Params, o.Wires)
}
