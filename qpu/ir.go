package qpu

import (
	"fmt"

	"github.com/go-faster/errors"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/core"
	"go.uber.org/zap"
)

const READOUT_TYPE_NAME = "Readout"

// InstructionInfo is the flat description of one instruction.
type InstructionInfo struct {
	Gate            string `json:"gate"`
	ConnectedQubits []int  `json:"connected_qubits"`
}

func (i InstructionInfo) IsReadout() bool {
	return i.Gate == READOUT_TYPE_NAME
}

// AsDictionaries describes every instruction of c in order. It fails on
// instructions it cannot classify.
func AsDictionaries(c *QuantumCircuit) ([]InstructionInfo, error) {
	infos := make([]InstructionInfo, 0, len(c.Instructions))
	for i, in := range c.Instructions {
		info, err := describe(in)
		if err != nil {
			zap.L().Error(fmt.Sprintf("failed to describe instruction/index:%d/reason:%s", i, err))
			return nil, errors.Wrapf(err, "instruction %d", i)
		}
		infos = append(infos, info)
	}
	return infos, nil
}

func describe(in Instruction) (InstructionInfo, error) {
	switch v := in.(type) {
	case *Gate:
		if v == nil {
			return InstructionInfo{}, errors.Wrap(core.ErrUnclassifiableInstruction, "nil gate")
		}
		return InstructionInfo{
			Gate:            v.TypeName(),
			ConnectedQubits: append([]int(nil), v.ConnectedQubits...),
		}, nil
	case *Readout:
		if v == nil {
			return InstructionInfo{}, errors.Wrap(core.ErrUnclassifiableInstruction, "nil readout")
		}
		return InstructionInfo{
			Gate:            READOUT_TYPE_NAME,
			ConnectedQubits: []int{v.ConnectedQubit},
		}, nil
	default:
		return InstructionInfo{}, errors.Wrapf(core.ErrUnclassifiableInstruction, "%T", in)
	}
}
