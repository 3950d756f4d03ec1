package dispatcher

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/circuit"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/core"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/log"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/poller"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/qpu"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/readout"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/transpiler"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// Dispatcher evaluates the measurements of a translated tape. Counts and
// samples go to the remote service when a poller is set, everything else
// runs on the local backend.
type Dispatcher struct {
	backend qpu.Backend
	poller  *poller.Poller
	metrics *log.Metrics
}

func NewDispatcher(backend qpu.Backend, p *poller.Poller, metrics *log.Metrics) *Dispatcher {
	if metrics == nil {
		metrics = log.NoopMetrics()
	}
	return &Dispatcher{
		backend: backend,
		poller:  p,
		metrics: metrics,
	}
}

func (d *Dispatcher) IsRemote() bool {
	return d.poller != nil
}

// MeasureAll evaluates the measurements of tr in order. Failures of a single
// measurement are kept on its result; the returned error is set only when
// the remote path failed.
func (d *Dispatcher) MeasureAll(ctx context.Context, tr *transpiler.Translation, shots int) (Results, error) {
	results := make(Results, 0, len(tr.Tape.Measurements))
	for i, m := range tr.Tape.Measurements {
		r, err := d.Measure(ctx, tr, m, shots)
		if err != nil {
			return results, errors.Wrapf(err, "measurement %d (%s)", i, m.Kind)
		}
		results = append(results, r)
	}
	return results, nil
}

// Measure evaluates m on a copy of the translated circuit.
func (d *Dispatcher) Measure(ctx context.Context, tr *transpiler.Translation, m circuit.MeasurementRequest, shots int) (*Result, error) {
	d.metrics.Measurements.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", m.Kind.String()),
		attribute.Bool("remote", d.IsRemote())))
	zap.L().Debug(fmt.Sprintf("measuring %s/shots:%d/remote:%t", m, shots, d.IsRemote()))

	r := &Result{Kind: m.Kind}
	c := tr.Circuit.Clone()
	switch m.Kind {
	case circuit.Counts, circuit.Sample:
		if d.IsRemote() {
			return d.measureRemote(ctx, r, c, tr.WireCount, m, shots)
		}
		r.Err = d.measureShots(r, c, tr.WireCount, m, shots)
	case circuit.Probabilities:
		r.Probabilities, r.Err = d.backend.Probabilities(c, toQubits(m.MeasuredWires()))
	case circuit.ExpectationValue:
		r.Err = d.measureExpectation(r, c, m)
	case circuit.State:
		r.State, r.Err = d.statevector(c)
	default:
		r.Err = errors.Wrapf(core.ErrUnsupportedMeasurement, "%s", m.Kind)
	}
	if r.Err != nil {
		zap.L().Warn(fmt.Sprintf("measurement failed/measurement:%s/reason:%s", m, r.Err))
	}
	return r, nil
}

func (d *Dispatcher) measureShots(r *Result, c *qpu.QuantumCircuit, wireCount int, m circuit.MeasurementRequest, shots int) error {
	if err := readout.NewManager(c).ApplyReadouts(wireCount, m.Observable); err != nil {
		return err
	}
	outcomes, err := d.backend.SimulateShots(c, shots)
	if err != nil {
		return err
	}
	if m.Kind == circuit.Sample {
		r.Samples, err = toSamples(outcomes)
		return err
	}
	r.Counts = toCounts(outcomes)
	return nil
}

func (d *Dispatcher) measureRemote(ctx context.Context, r *Result, c *qpu.QuantumCircuit, wireCount int, m circuit.MeasurementRequest, shots int) (*Result, error) {
	if err := readout.NewManager(c).ApplyReadouts(wireCount, m.Observable); err != nil {
		r.Err = err
		return r, nil
	}
	jd, rr, err := d.poller.Execute(ctx, c, shots)
	r.Job = jd
	if err != nil {
		return nil, err
	}
	if m.Kind == circuit.Counts {
		if total := rr.Histogram.Total(); total != uint32(shots) {
			r.Err = errors.Wrapf(core.ErrShotMismatch, "job %s returned %d outcomes for %d shots", jd.ID, total, shots)
			return r, nil
		}
		r.Counts = rr.Histogram
		return r, nil
	}
	outcomes := rr.Memory
	if len(outcomes) == 0 {
		outcomes = expand(rr.Histogram)
	}
	if len(outcomes) != shots {
		r.Err = errors.Wrapf(core.ErrShotMismatch, "job %s returned %d outcomes for %d shots", jd.ID, len(outcomes), shots)
		return r, nil
	}
	r.Samples, r.Err = toSamples(outcomes)
	return r, nil
}

func (d *Dispatcher) measureExpectation(r *Result, c *qpu.QuantumCircuit, m circuit.MeasurementRequest) error {
	obs := m.Observable
	if !obs.HasMatrix() {
		name := "none"
		if obs != nil {
			name = obs.Name
		}
		return errors.Wrapf(core.ErrObservableWithoutMatrix, "%s", name)
	}
	state, err := d.statevector(c)
	if err != nil {
		return err
	}
	e, err := d.backend.Expectation(obs.Matrix, toQubits(obs.Wires), state)
	if err != nil {
		return err
	}
	r.Expectation = real(e)
	return nil
}

// statevector simulates c without its readouts.
func (d *Dispatcher) statevector(c *qpu.QuantumCircuit) (qpu.StateVector, error) {
	rm := readout.NewManager(c)
	has, err := rm.HasReadout()
	if err != nil {
		return nil, err
	}
	if has {
		if c, err = rm.RemoveReadouts(); err != nil {
			return nil, err
		}
	}
	return d.backend.SimulateStatevector(c)
}

func toQubits(wires []int) []int {
	qubits := make([]int, len(wires))
	for i, w := range wires {
		qubits[i] = w + 1
	}
	return qubits
}

func toCounts(outcomes []string) core.Counts {
	counts := make(core.Counts)
	for _, o := range outcomes {
		counts[o]++
	}
	return counts
}

// toSamples reads each outcome as a base 2 integer, bit 1 first.
func toSamples(outcomes []string) ([]int, error) {
	samples := make([]int, len(outcomes))
	for i, o := range outcomes {
		v, err := strconv.ParseInt(o, 2, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "outcome %d", i)
		}
		samples[i] = int(v)
	}
	return samples, nil
}

func expand(histogram core.Counts) []string {
	outcomes := make([]string, 0, histogram.Total())
	for _, o := range histogram.Outcomes() {
		for n := uint32(0); n < histogram[o]; n++ {
			outcomes = append(outcomes, o)
		}
	}
	return outcomes
}
