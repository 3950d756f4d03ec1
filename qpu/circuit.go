package qpu

import (
	"fmt"

	"github.com/mohae/deepcopy"
)

// Instruction is one step of a QuantumCircuit. The set of implementations
// is closed: *Gate and *Readout.
type Instruction interface {
	// Qubits returns the 1-based qubits the instruction acts on.
	Qubits() []int
	instruction()
}

type Gate struct {
	Name            string
	ConnectedQubits []int
	Params          []float64
	// Kernel is the controlled gate of a "controlled" gate.
	Kernel *Gate
}

func (g *Gate) Qubits() []int {
	return g.ConnectedQubits
}

func (*Gate) instruction() {}

func (g *Gate) String() string {
	if len(g.Params) == 0 {
		return fmt.Sprintf("%s%v", g.Name, g.ConnectedQubits)
	}
	return fmt.Sprintf("%s%v%v", g.Name, g.ConnectedQubits, g.Params)
}

// Readout measures ConnectedQubit into the classical bit DestinationBit.
type Readout struct {
	ConnectedQubit int
	DestinationBit int
}

func NewReadout(qubit, bit int) *Readout {
	return &Readout{
		ConnectedQubit: qubit,
		DestinationBit: bit,
	}
}

func (r *Readout) Qubits() []int {
	return []int{r.ConnectedQubit}
}

func (*Readout) instruction() {}

func (r *Readout) String() string {
	return fmt.Sprintf("readout[%d->%d]", r.ConnectedQubit, r.DestinationBit)
}

// QuantumCircuit is the executable circuit of the backend. Qubits and bits
// are numbered from 1.
type QuantumCircuit struct {
	QubitCount   int
	BitCount     int
	Instructions []Instruction
}

func NewQuantumCircuit(qubitCount int) *QuantumCircuit {
	return NewQuantumCircuitWithBits(qubitCount, qubitCount)
}

func NewQuantumCircuitWithBits(qubitCount, bitCount int) *QuantumCircuit {
	return &QuantumCircuit{
		QubitCount:   qubitCount,
		BitCount:     bitCount,
		Instructions: []Instruction{},
	}
}

// Push appends instructions after checking their qubits and bits.
func (c *QuantumCircuit) Push(instructions ...Instruction) error {
	for _, in := range instructions {
		if err := c.validate(in); err != nil {
			return err
		}
	}
	c.Instructions = append(c.Instructions, instructions...)
	return nil
}

func (c *QuantumCircuit) validate(in Instruction) error {
	switch v := in.(type) {
	case nil:
		return fmt.Errorf("nil instruction")
	case *Gate:
		if v == nil {
			return fmt.Errorf("nil gate")
		}
	case *Readout:
		if v == nil {
			return fmt.Errorf("nil readout")
		}
	}
	seen := make(map[int]struct{})
	for _, q := range in.Qubits() {
		if q < 1 || q > c.QubitCount {
			return fmt.Errorf("%v targets qubit %d outside of 1..%d", in, q, c.QubitCount)
		}
		if _, ok := seen[q]; ok {
			return fmt.Errorf("%v targets qubit %d twice", in, q)
		}
		seen[q] = struct{}{}
	}
	if r, ok := in.(*Readout); ok {
		if r.DestinationBit < 1 || r.DestinationBit > c.BitCount {
			return fmt.Errorf("%v writes bit %d outside of 1..%d", r, r.DestinationBit, c.BitCount)
		}
	}
	return nil
}

// Clone returns a deep copy of the circuit.
func (c *QuantumCircuit) Clone() *QuantumCircuit {
	cp := deepcopy.Copy(c).(*QuantumCircuit)
	if cp.Instructions == nil {
		cp.Instructions = []Instruction{}
	}
	return cp
}

func (c *QuantumCircuit) String() string {
	return fmt.Sprintf("QuantumCircuit(qubits:%d, bits:%d, instructions:%v)",
		c.QubitCount, c.BitCount, c.Instructions)
}
