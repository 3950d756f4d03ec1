package readout

import (
	"fmt"

	"github.com/go-faster/errors"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/circuit"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/core"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/qpu"
	"go.uber.org/zap"
)

// Manager adds and removes readouts on the circuit it wraps. Wires given to
// it are 0-based; wire w is read into qubit w+1 and bit w+1.
type Manager struct {
	circuit *qpu.QuantumCircuit
}

func NewManager(c *qpu.QuantumCircuit) *Manager {
	return &Manager{circuit: c}
}

func (m *Manager) Circuit() *qpu.QuantumCircuit {
	return m.circuit
}

// ApplyReadouts reads every wire in 0..wireCount-1 when obs is nil, and only
// the first wire of obs otherwise.
func (m *Manager) ApplyReadouts(wireCount int, obs *circuit.Observable) error {
	if obs != nil {
		if len(obs.Wires) == 0 {
			return fmt.Errorf("observable %s has no wires", obs.Name)
		}
		if len(obs.Wires) > 1 {
			zap.L().Debug(fmt.Sprintf("reading only the first wire of %s", obs))
		}
		return m.ApplySingleReadout(obs.Wires[0])
	}
	for w := 0; w < wireCount; w++ {
		if err := m.ApplySingleReadout(w); err != nil {
			return err
		}
	}
	return nil
}

// ApplySingleReadout adds a readout of wire unless one already exists.
func (m *Manager) ApplySingleReadout(wire int) error {
	infos, err := qpu.AsDictionaries(m.circuit)
	if err != nil {
		return err
	}
	qubit := wire + 1
	for _, info := range infos {
		if info.IsReadout() && info.ConnectedQubits[0] == qubit {
			return nil
		}
	}
	if err := m.circuit.Push(qpu.NewReadout(qubit, qubit)); err != nil {
		return errors.Wrapf(err, "readout of wire %d", wire)
	}
	return nil
}

func (m *Manager) HasReadout() (bool, error) {
	infos, err := qpu.AsDictionaries(m.circuit)
	if err != nil {
		return false, err
	}
	for _, info := range infos {
		if info.IsReadout() {
			return true, nil
		}
	}
	return false, nil
}

// RemoveReadouts returns a new circuit holding the gates of the wrapped one
// in order. Qubit and bit counts are kept.
func (m *Manager) RemoveReadouts() (*qpu.QuantumCircuit, error) {
	if _, err := qpu.AsDictionaries(m.circuit); err != nil {
		return nil, err
	}
	stripped := qpu.NewQuantumCircuitWithBits(m.circuit.QubitCount, m.circuit.BitCount)
	for _, in := range m.circuit.Instructions {
		switch v := in.(type) {
		case *qpu.Gate:
			if err := stripped.Push(v); err != nil {
				return nil, err
			}
		case *qpu.Readout:
		default:
			return nil, errors.Wrapf(core.ErrUnclassifiableInstruction, "%T", in)
		}
	}
	return stripped, nil
}
