package circuit

import (
	"fmt"
)

type MeasurementKind int

const (
	Counts MeasurementKind = iota
	Sample
	Probabilities
	ExpectationValue
	State
	Variance
	DensityMatrix
	VnEntropy
	MutualInfo
	Purity
	ClassicalShadow
	ShadowExpval
)

var measurementKindNames = map[MeasurementKind]string{
	Counts:           "counts",
	Sample:           "sample",
	Probabilities:    "probs",
	ExpectationValue: "expval",
	State:            "state",
	Variance:         "var",
	DensityMatrix:    "density_matrix",
	VnEntropy:        "vn_entropy",
	MutualInfo:       "mutual_info",
	Purity:           "purity",
	ClassicalShadow:  "classical_shadow",
	ShadowExpval:     "shadow_expval",
}

func (k MeasurementKind) String() string {
	if s, ok := measurementKindNames[k]; ok {
		return s
	}
	return "unknown"
}

func ParseMeasurementKind(s string) (MeasurementKind, error) {
	for k, name := range measurementKindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown measurement type: %s", s)
}

// MeasurementRequest is one result requested from the tape.
type MeasurementRequest struct {
	Kind       MeasurementKind
	Observable *Observable
	Wires      []int
}

// MeasuredWires returns the explicit wires of the request, falling back to
// the wires of its observable. Empty means all wires.
func (m MeasurementRequest) MeasuredWires() []int {
	if len(m.Wires) > 0 {
		return m.Wires
	}
	if m.Observable != nil {
		return m.Observable.Wires
	}
	return nil
}

func (m MeasurementRequest) String() string {
	if m.Observable != nil {
		return fmt.Sprintf("%s(%s)", m.Kind, m.Observable)
	}
	if len(m.Wires) > 0 {
		return fmt.Sprintf("%s(wires=%v)", m.Kind, m.Wires)
	}
	return fmt.Sprintf("%s()", m.Kind)
}
