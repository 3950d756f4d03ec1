//go:generate mockgen -destination=mock_qpu/mock_qpu.go -package=mock_qpu github.com/oqtopus-team/oqtopus-engine/sfbridge/qpu Backend,RemoteClient

package qpu

import (
	"context"

	"github.com/oqtopus-team/oqtopus-engine/sfbridge/circuit"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/core"
)

// StateVector holds 2^n amplitudes, qubit 1 being the most significant bit
// of the index.
type StateVector []complex128

// Backend runs circuits in process.
type Backend interface {
	// SimulateStatevector runs the gates of c from |0...0>. Circuits with
	// readouts are rejected.
	SimulateStatevector(c *QuantumCircuit) (StateVector, error)
	// SimulateShots returns one outcome bitstring of length c.BitCount per
	// shot. Bit 1 is the leftmost character.
	SimulateShots(c *QuantumCircuit, shots int) ([]string, error)
	// Probabilities returns the outcome distribution of the given 1-based
	// qubits, all qubits when empty. Readouts are ignored.
	Probabilities(c *QuantumCircuit, qubits []int) ([]float64, error)
	// Expectation returns <state|observable|state> with observable acting
	// on the given 1-based qubits.
	Expectation(observable circuit.Matrix, qubits []int, state StateVector) (complex128, error)
}

// RemoteResult is the result of a finished remote job.
type RemoteResult struct {
	Histogram core.Counts
	// Memory holds the per shot outcomes when the service returns them.
	Memory []string
}

// RemoteClient talks to a remote hardware service.
type RemoteClient interface {
	Submit(ctx context.Context, c *QuantumCircuit, shots int) (string, error)
	Status(ctx context.Context, jobID string) (core.Status, error)
	Result(ctx context.Context, jobID string) (*RemoteResult, error)
}
