//go:build unit
// +build unit

package readout

import (
	"testing"

	"github.com/oqtopus-team/oqtopus-engine/sfbridge/circuit"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/qpu"
	"github.com/stretchr/testify/assert"
)

func bell(t *testing.T) *qpu.QuantumCircuit {
	c := qpu.NewQuantumCircuit(2)
	assert.Nil(t, c.Push(qpu.Hadamard(1), qpu.ControlX(1, 2)))
	return c
}

func TestApplyReadouts(t *testing.T) {
	tests := []struct {
		name      string
		wireCount int
		obs       *circuit.Observable
		want      []qpu.Instruction
	}{
		{
			name:      "all wires",
			wireCount: 2,
			want: []qpu.Instruction{
				qpu.Hadamard(1), qpu.ControlX(1, 2),
				qpu.NewReadout(1, 1), qpu.NewReadout(2, 2),
			},
		},
		{
			name:      "single wire observable",
			wireCount: 2,
			obs:       circuit.NewObservable(circuit.PauliZ, 1),
			want: []qpu.Instruction{
				qpu.Hadamard(1), qpu.ControlX(1, 2),
				qpu.NewReadout(2, 2),
			},
		},
		{
			name:      "tensor observable reads its first wire only",
			wireCount: 2,
			obs: func() *circuit.Observable {
				o, err := circuit.Tensor(circuit.NewObservable(circuit.PauliZ, 0), circuit.NewObservable(circuit.PauliZ, 1))
				assert.Nil(t, err)
				return o
			}(),
			want: []qpu.Instruction{
				qpu.Hadamard(1), qpu.ControlX(1, 2),
				qpu.NewReadout(1, 1),
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(bell(t))
			assert.Nil(t, m.ApplyReadouts(tt.wireCount, tt.obs))
			assert.Equal(t, tt.want, m.Circuit().Instructions)
		})
	}
}

func TestApplySingleReadoutIsIdempotent(t *testing.T) {
	m := NewManager(bell(t))
	assert.Nil(t, m.ApplySingleReadout(0))
	assert.Nil(t, m.ApplySingleReadout(0))
	assert.Nil(t, m.ApplyReadouts(2, nil))
	assert.Equal(t, []qpu.Instruction{
		qpu.Hadamard(1), qpu.ControlX(1, 2),
		qpu.NewReadout(1, 1), qpu.NewReadout(2, 2),
	}, m.Circuit().Instructions)
}

func TestApplySingleReadoutOutOfRange(t *testing.T) {
	m := NewManager(bell(t))
	assert.NotNil(t, m.ApplySingleReadout(2))
	assert.Len(t, m.Circuit().Instructions, 2)
}

func TestRemoveReadouts(t *testing.T) {
	c := bell(t)
	m := NewManager(c)

	has, err := m.HasReadout()
	assert.Nil(t, err)
	assert.False(t, has)

	assert.Nil(t, m.ApplyReadouts(2, nil))
	has, err = m.HasReadout()
	assert.Nil(t, err)
	assert.True(t, has)

	stripped, err := m.RemoveReadouts()
	assert.Nil(t, err)
	assert.Equal(t, 2, stripped.QubitCount)
	assert.Equal(t, 2, stripped.BitCount)
	assert.Equal(t, []qpu.Instruction{qpu.Hadamard(1), qpu.ControlX(1, 2)}, stripped.Instructions)
	// the wrapped circuit keeps its readouts
	assert.Len(t, c.Instructions, 4)
}

func TestRemoveThenApplyReadouts(t *testing.T) {
	c := qpu.NewQuantumCircuit(3)
	assert.Nil(t, c.Push(
		qpu.Hadamard(1),
		qpu.NewReadout(1, 1),
		qpu.ControlX(1, 2),
		qpu.SigmaX(3),
	))

	stripped, err := NewManager(c).RemoveReadouts()
	assert.Nil(t, err)
	m := NewManager(stripped)
	assert.Nil(t, m.ApplyReadouts(3, nil))

	assert.Equal(t, []qpu.Instruction{
		qpu.Hadamard(1),
		qpu.ControlX(1, 2),
		qpu.SigmaX(3),
		qpu.NewReadout(1, 1),
		qpu.NewReadout(2, 2),
		qpu.NewReadout(3, 3),
	}, m.Circuit().Instructions)
}
