package qpu

import (
	"bytes"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/oqtopus-team/oqtopus-engine/sfbridge/circuit"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/core"
	"go.uber.org/zap"
)

// LocalQPU is a dense statevector simulator. Readouts are taken after every
// gate of the circuit.
type LocalQPU struct {
	deviceSetting *DeviceSetting

	mu            sync.Mutex
	randGenerator *rand.Rand
}

func NewLocalQPU(ds *DeviceSetting) *LocalQPU {
	l := &LocalQPU{}
	l.configure(ds)
	return l
}

func (l *LocalQPU) Setup(conf *core.Conf) error {
	zap.L().Debug("setting up local QPU")
	ds, err := LoadDeviceSetting(conf.DeviceSettingPath)
	if err != nil {
		zap.L().Error(fmt.Sprintf("Failed to load a device setting. Reason:%s", err))
		return err
	}
	if conf.Seed != 0 {
		ds.Seed = conf.Seed
	}
	l.configure(ds)
	return nil
}

func (l *LocalQPU) configure(ds *DeviceSetting) {
	if ds == nil {
		ds = NewDeviceSetting()
	}
	seed := ds.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	l.deviceSetting = ds
	l.randGenerator = rand.New(rand.NewSource(seed))
	zap.L().Debug(fmt.Sprintf("local QPU/device:%s/max_qubits:%d/max_shots:%d",
		ds.DeviceName, ds.MaxQubits, ds.MaxShots))
}

func (l *LocalQPU) DeviceSetting() *DeviceSetting {
	return l.deviceSetting
}

func (l *LocalQPU) run(c *QuantumCircuit) (StateVector, error) {
	if c.QubitCount > l.deviceSetting.MaxQubits {
		return nil, fmt.Errorf("circuit has %d qubits, %s supports up to %d",
			c.QubitCount, l.deviceSetting.DeviceName, l.deviceSetting.MaxQubits)
	}
	s := newZeroState(c.QubitCount)
	for i, in := range c.Instructions {
		g, ok := in.(*Gate)
		if !ok {
			continue
		}
		u, err := g.Matrix()
		if err != nil {
			return nil, fmt.Errorf("instruction %d: %w", i, err)
		}
		if err := s.apply(u, g.ConnectedQubits); err != nil {
			return nil, fmt.Errorf("instruction %d: %w", i, err)
		}
	}
	return s, nil
}

func readouts(c *QuantumCircuit) []*Readout {
	rs := []*Readout{}
	for _, in := range c.Instructions {
		if r, ok := in.(*Readout); ok {
			rs = append(rs, r)
		}
	}
	return rs
}

func (l *LocalQPU) SimulateStatevector(c *QuantumCircuit) (StateVector, error) {
	if n := len(readouts(c)); n > 0 {
		return nil, fmt.Errorf("statevector simulation of a circuit with %d readouts", n)
	}
	return l.run(c)
}

func (l *LocalQPU) SimulateShots(c *QuantumCircuit, shots int) ([]string, error) {
	if shots < 1 || shots > l.deviceSetting.MaxShots {
		return nil, fmt.Errorf("shots must be in 1..%d, got %d", l.deviceSetting.MaxShots, shots)
	}
	rs := readouts(c)
	if len(rs) == 0 {
		return nil, fmt.Errorf("shot simulation of a circuit without readouts")
	}
	s, err := l.run(c)
	if err != nil {
		return nil, err
	}
	cumulative := s.probabilities()
	last := 0
	for i := range cumulative {
		if cumulative[i] > 0 {
			last = i
		}
		if i > 0 {
			cumulative[i] += cumulative[i-1]
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	outcomes := make([]string, shots)
	for shot := range outcomes {
		r := 1 - l.randGenerator.Float64()
		index := sort.SearchFloat64s(cumulative, r)
		if index >= len(cumulative) {
			index = last
		}
		bits := bytes.Repeat([]byte{'0'}, c.BitCount)
		for _, ro := range rs {
			bits[ro.DestinationBit-1] = s.bit(index, ro.ConnectedQubit)
		}
		outcomes[shot] = string(bits)
	}
	zap.L().Debug(fmt.Sprintf("simulated %d shots on %d qubits", shots, c.QubitCount))
	return outcomes, nil
}

func (l *LocalQPU) Probabilities(c *QuantumCircuit, qubits []int) ([]float64, error) {
	if err := checkQubits(qubits, c.QubitCount); err != nil {
		return nil, err
	}
	s, err := l.run(c)
	if err != nil {
		return nil, err
	}
	if len(qubits) == 0 {
		return s.probabilities(), nil
	}
	return s.marginal(qubits), nil
}

func (l *LocalQPU) Expectation(observable circuit.Matrix, qubits []int, state StateVector) (complex128, error) {
	if err := checkQubits(qubits, state.qubitCount()); err != nil {
		return 0, err
	}
	applied := append(StateVector(nil), state...)
	if err := applied.apply(observable, qubits); err != nil {
		return 0, err
	}
	var e complex128
	for i, a := range state {
		e += complex(real(a), -imag(a)) * applied[i]
	}
	return e, nil
}

func checkQubits(qubits []int, qubitCount int) error {
	seen := make(map[int]struct{})
	for _, q := range qubits {
		if q < 1 || q > qubitCount {
			return fmt.Errorf("qubit %d is outside of 1..%d", q, qubitCount)
		}
		if _, ok := seen[q]; ok {
			return fmt.Errorf("qubit %d is given twice", q)
		}
		seen[q] = struct{}{}
	}
	return nil
}
