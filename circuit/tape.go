package circuit

import "fmt"

const DefaultShots = 1

// Tape is a source circuit: ordered operations, requested measurements and
// an optional shot count.
type Tape struct {
	Operations   []Operation
	Measurements []MeasurementRequest
	Shots        *int
}

// ShotCount returns the number of shots, 1 when unset.
func (t *Tape) ShotCount() int {
	if t.Shots == nil || *t.Shots <= 0 {
		return DefaultShots
	}
	return *t.Shots
}

// CheckShots rejects an explicit shot count that is not positive.
func (t *Tape) CheckShots() error {
	if t.Shots != nil && *t.Shots <= 0 {
		return fmt.Errorf("shots must be positive, got %d", *t.Shots)
	}
	return nil
}

// OperationWires returns the distinct wires used by operations in order of
// first appearance.
func (t *Tape) OperationWires() []int {
	seen := make(map[int]struct{})
	wires := []int{}
	for _, op := range t.Operations {
		for _, w := range op.Wires {
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			wires = append(wires, w)
		}
	}
	return wires
}

func (t *Tape) measurementOnlyWires() []int {
	seen := make(map[int]struct{})
	for _, w := range t.OperationWires() {
		seen[w] = struct{}{}
	}
	wires := []int{}
	for _, m := range t.Measurements {
		for _, w := range m.MeasuredWires() {
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			wires = append(wires, w)
		}
	}
	return wires
}

// IsStandard reports whether operation wires are exactly 0..n-1 and wires
// used only by measurements follow them contiguously.
func (t *Tape) IsStandard() bool {
	opWires := t.OperationWires()
	if !isRange(opWires, 0) {
		return false
	}
	return isRange(t.measurementOnlyWires(), len(opWires))
}

func isRange(wires []int, from int) bool {
	set := make(map[int]struct{}, len(wires))
	for _, w := range wires {
		set[w] = struct{}{}
	}
	for i := from; i < from+len(wires); i++ {
		if _, ok := set[i]; !ok {
			return false
		}
	}
	return true
}

// MapToStandardWires returns a tape whose wires are relabelled to 0..n-1,
// operation wires first in order of appearance. A standard tape is returned
// as is.
func (t *Tape) MapToStandardWires() *Tape {
	if t.IsStandard() {
		return t
	}
	wireMap := make(map[int]int)
	for _, w := range append(t.OperationWires(), t.measurementOnlyWires()...) {
		wireMap[w] = len(wireMap)
	}
	relabel := func(wires []int) []int {
		if wires == nil {
			return nil
		}
		r := make([]int, len(wires))
		for i, w := range wires {
			r[i] = wireMap[w]
		}
		return r
	}

	mapped := &Tape{
		Operations:   make([]Operation, len(t.Operations)),
		Measurements: make([]MeasurementRequest, len(t.Measurements)),
		Shots:        t.Shots,
	}
	for i, op := range t.Operations {
		mapped.Operations[i] = Operation{
			Name:   op.Name,
			Params: op.Params,
			Wires:  relabel(op.Wires),
		}
	}
	for i, m := range t.Measurements {
		mm := MeasurementRequest{
			Kind:  m.Kind,
			Wires: relabel(m.Wires),
		}
		if m.Observable != nil {
			mm.Observable = &Observable{
				Name:   m.Observable.Name,
				Wires:  relabel(m.Observable.Wires),
				Matrix: m.Observable.Matrix,
			}
		}
		mapped.Measurements[i] = mm
	}
	return mapped
}
