//go:build unit
// +build unit

package dispatcher

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/golang/mock/gomock"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/circuit"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/core"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/poller"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/qpu"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/qpu/mock_qpu"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/transpiler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func localQPU() *qpu.LocalQPU {
	ds := qpu.NewDeviceSetting()
	ds.Seed = 42
	return qpu.NewLocalQPU(ds)
}

func translateBell(t *testing.T, measurements ...circuit.MeasurementRequest) *transpiler.Translation {
	tape := &circuit.Tape{
		Operations: []circuit.Operation{
			circuit.NewOperation("Hadamard", []int{0}),
			circuit.NewOperation("CNOT", []int{0, 1}),
		},
		Measurements: measurements,
	}
	tr, err := transpiler.NewTranspiler(transpiler.BEST_EFFORT, nil).Translate(context.Background(), tape)
	require.Nil(t, err)
	return tr
}

func zz(t *testing.T) *circuit.Observable {
	o, err := circuit.Tensor(circuit.NewObservable(circuit.PauliZ, 0), circuit.NewObservable(circuit.PauliZ, 1))
	require.Nil(t, err)
	return o
}

func TestMeasureAllLocal(t *testing.T) {
	tr := translateBell(t,
		circuit.MeasurementRequest{Kind: circuit.Counts},
		circuit.MeasurementRequest{Kind: circuit.Sample},
		circuit.MeasurementRequest{Kind: circuit.Probabilities},
		circuit.MeasurementRequest{Kind: circuit.Probabilities, Wires: []int{1}},
		circuit.MeasurementRequest{Kind: circuit.ExpectationValue, Observable: circuit.NewObservable(circuit.PauliZ, 0)},
		circuit.MeasurementRequest{Kind: circuit.ExpectationValue, Observable: zz(t)},
		circuit.MeasurementRequest{Kind: circuit.State},
	)
	d := NewDispatcher(localQPU(), nil, nil)
	results, err := d.MeasureAll(context.Background(), tr, 1000)
	require.Nil(t, err)
	require.Len(t, results, 7)
	assert.Nil(t, results.Err())

	counts := results[0].Counts
	assert.Equal(t, uint32(1000), counts.Total())
	for _, o := range counts.Outcomes() {
		assert.Contains(t, []string{"00", "11"}, o)
	}

	assert.Len(t, results[1].Samples, 1000)
	for _, s := range results[1].Samples {
		assert.Contains(t, []int{0, 3}, s)
	}

	assert.InDeltaSlice(t, []float64{0.5, 0, 0, 0.5}, results[2].Probabilities, 1e-9)
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, results[3].Probabilities, 1e-9)
	assert.InDelta(t, 0, results[4].Expectation, 1e-9)
	assert.InDelta(t, 1, results[5].Expectation, 1e-9)

	h := 1 / math.Sqrt2
	want := []complex128{complex(h, 0), 0, 0, complex(h, 0)}
	require.Len(t, results[6].State, 4)
	for i := range want {
		assert.InDelta(t, real(want[i]), real(results[6].State[i]), 1e-9)
		assert.InDelta(t, imag(want[i]), imag(results[6].State[i]), 1e-9)
	}

	// every measurement works on its own copy
	assert.Len(t, tr.Circuit.Instructions, 2)
}

func TestMeasurePerMeasurementErrors(t *testing.T) {
	tests := []struct {
		name    string
		request circuit.MeasurementRequest
		wantErr error
	}{
		{
			name:    "variance is unsupported",
			request: circuit.MeasurementRequest{Kind: circuit.Variance, Observable: circuit.NewObservable(circuit.PauliZ, 0)},
			wantErr: core.ErrUnsupportedMeasurement,
		},
		{
			name:    "purity is unsupported",
			request: circuit.MeasurementRequest{Kind: circuit.Purity, Wires: []int{0}},
			wantErr: core.ErrUnsupportedMeasurement,
		},
		{
			name:    "expectation of an observable without matrix",
			request: circuit.MeasurementRequest{Kind: circuit.ExpectationValue, Observable: circuit.NewObservable("Projector", 0)},
			wantErr: core.ErrObservableWithoutMatrix,
		},
		{
			name:    "expectation without observable",
			request: circuit.MeasurementRequest{Kind: circuit.ExpectationValue},
			wantErr: core.ErrObservableWithoutMatrix,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := translateBell(t,
				tt.request,
				circuit.MeasurementRequest{Kind: circuit.Probabilities},
			)
			results, err := NewDispatcher(localQPU(), nil, nil).MeasureAll(context.Background(), tr, 10)
			require.Nil(t, err)
			require.Len(t, results, 2)
			assert.True(t, errors.Is(results[0].Err, tt.wantErr))
			assert.Nil(t, results[1].Err)
			assert.True(t, errors.Is(results.Err(), tt.wantErr))
			assert.Contains(t, results.ToString(), "error")
		})
	}
}

func TestStateAfterReadouts(t *testing.T) {
	tr := translateBell(t)
	assert.Nil(t, tr.Circuit.Push(qpu.NewReadout(1, 1)))

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	backend := mock_qpu.NewMockBackend(ctrl)
	backend.EXPECT().SimulateStatevector(gomock.Any()).DoAndReturn(
		func(c *qpu.QuantumCircuit) (qpu.StateVector, error) {
			assert.Equal(t, []qpu.Instruction{qpu.Hadamard(1), qpu.ControlX(1, 2)}, c.Instructions)
			return qpu.StateVector{1, 0, 0, 0}, nil
		})

	r, err := NewDispatcher(backend, nil, nil).Measure(context.Background(), tr,
		circuit.MeasurementRequest{Kind: circuit.State}, 1)
	assert.Nil(t, err)
	assert.Nil(t, r.Err)
	assert.Equal(t, qpu.StateVector{1, 0, 0, 0}, r.State)
}

func TestCountsReadsObservableWire(t *testing.T) {
	tr := translateBell(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	backend := mock_qpu.NewMockBackend(ctrl)
	backend.EXPECT().SimulateShots(gomock.Any(), 3).DoAndReturn(
		func(c *qpu.QuantumCircuit, _ int) ([]string, error) {
			assert.Equal(t, qpu.NewReadout(2, 2), c.Instructions[len(c.Instructions)-1])
			assert.Len(t, c.Instructions, 3)
			return []string{"01", "00", "01"}, nil
		})

	r, err := NewDispatcher(backend, nil, nil).Measure(context.Background(), tr,
		circuit.MeasurementRequest{Kind: circuit.Counts, Observable: circuit.NewObservable(circuit.PauliZ, 1)}, 3)
	assert.Nil(t, err)
	assert.Equal(t, core.Counts{"01": 2, "00": 1}, r.Counts)
}

func remoteDispatcher(client qpu.RemoteClient) *Dispatcher {
	p := poller.NewPoller(client)
	p.Interval = time.Millisecond
	p.MaxInterval = time.Millisecond
	p.Timeout = time.Second
	return NewDispatcher(localQPU(), p, nil)
}

func TestMeasureRemote(t *testing.T) {
	tests := []struct {
		name        string
		request     circuit.MeasurementRequest
		result      *qpu.RemoteResult
		wantCounts  core.Counts
		wantSamples []int
		wantErr     error
	}{
		{
			name:       "counts",
			request:    circuit.MeasurementRequest{Kind: circuit.Counts},
			result:     &qpu.RemoteResult{Histogram: core.Counts{"00": 1, "11": 2}},
			wantCounts: core.Counts{"00": 1, "11": 2},
		},
		{
			name:        "sample from memory",
			request:     circuit.MeasurementRequest{Kind: circuit.Sample},
			result:      &qpu.RemoteResult{Histogram: core.Counts{"00": 1, "11": 2}, Memory: []string{"11", "00", "11"}},
			wantSamples: []int{3, 0, 3},
		},
		{
			name:        "sample from histogram",
			request:     circuit.MeasurementRequest{Kind: circuit.Sample},
			result:      &qpu.RemoteResult{Histogram: core.Counts{"11": 2, "00": 1}},
			wantSamples: []int{0, 3, 3},
		},
		{
			name:    "counts total differs from shots",
			request: circuit.MeasurementRequest{Kind: circuit.Counts},
			result:  &qpu.RemoteResult{Histogram: core.Counts{"00": 480, "11": 520}},
			wantErr: core.ErrShotMismatch,
		},
		{
			name:    "memory shorter than shots",
			request: circuit.MeasurementRequest{Kind: circuit.Sample},
			result:  &qpu.RemoteResult{Histogram: core.Counts{"00": 1, "11": 2}, Memory: []string{"11", "00"}},
			wantErr: core.ErrShotMismatch,
		},
		{
			name:    "histogram longer than shots",
			request: circuit.MeasurementRequest{Kind: circuit.Sample},
			result:  &qpu.RemoteResult{Histogram: core.Counts{"00": 8, "11": 2}},
			wantErr: core.ErrShotMismatch,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			client := mock_qpu.NewMockRemoteClient(ctrl)
			client.EXPECT().Submit(gomock.Any(), gomock.Any(), 3).DoAndReturn(
				func(_ context.Context, c *qpu.QuantumCircuit, _ int) (string, error) {
					assert.Equal(t, []qpu.Instruction{
						qpu.Hadamard(1), qpu.ControlX(1, 2),
						qpu.NewReadout(1, 1), qpu.NewReadout(2, 2),
					}, c.Instructions)
					return "job-1", nil
				})
			client.EXPECT().Status(gomock.Any(), "job-1").Return(core.SUCCEEDED, nil)
			client.EXPECT().Result(gomock.Any(), "job-1").Return(tt.result, nil)

			tr := translateBell(t, tt.request)
			results, err := remoteDispatcher(client).MeasureAll(context.Background(), tr, 3)
			require.Nil(t, err)
			require.Len(t, results, 1)
			assert.Equal(t, "job-1", results[0].Job.ID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, results[0].Err, tt.wantErr)
				assert.Nil(t, results[0].Counts)
				assert.Nil(t, results[0].Samples)
				return
			}
			assert.Nil(t, results[0].Err)
			assert.Equal(t, tt.wantCounts, results[0].Counts)
			assert.Equal(t, tt.wantSamples, results[0].Samples)
		})
	}
}

func TestMeasureRemoteFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mock_qpu.NewMockRemoteClient(ctrl)
	client.EXPECT().Submit(gomock.Any(), gomock.Any(), 5).Return("job-9", nil)
	client.EXPECT().Status(gomock.Any(), "job-9").Return(core.FAILED, nil)

	tr := translateBell(t,
		circuit.MeasurementRequest{Kind: circuit.Probabilities},
		circuit.MeasurementRequest{Kind: circuit.Counts},
		circuit.MeasurementRequest{Kind: circuit.State},
	)
	results, err := remoteDispatcher(client).MeasureAll(context.Background(), tr, 5)
	assert.NotNil(t, err)
	assert.True(t, core.IsRemoteFailure(err))
	// the measurements before the failure are kept
	assert.Len(t, results, 1)
}

func TestMeasureRemoteSubmitError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mock_qpu.NewMockRemoteClient(ctrl)
	client.EXPECT().Submit(gomock.Any(), gomock.Any(), 5).Return("", fmt.Errorf("connection refused"))

	tr := translateBell(t, circuit.MeasurementRequest{Kind: circuit.Sample})
	_, err := remoteDispatcher(client).MeasureAll(context.Background(), tr, 5)
	assert.NotNil(t, err)
}

func TestToSamples(t *testing.T) {
	got, err := toSamples([]string{"0", "1", "10", "110"})
	assert.Nil(t, err)
	assert.Equal(t, []int{0, 1, 2, 6}, got)

	_, err = toSamples([]string{"2"})
	assert.NotNil(t, err)
}

func TestExpand(t *testing.T) {
	assert.Equal(t, []string{"01", "10", "10"}, expand(core.Counts{"10": 2, "01": 1}))
	assert.Empty(t, expand(core.Counts{}))
}

func TestResultsToString(t *testing.T) {
	rs := Results{
		{Kind: circuit.Counts, Counts: core.Counts{"0": 2}},
		{Kind: circuit.ExpectationValue, Expectation: 0.5},
		{Kind: circuit.Variance, Err: core.ErrUnsupportedMeasurement},
	}
	s := rs.ToString()
	assert.Contains(t, s, `"kind": "counts"`)
	assert.Contains(t, s, `"0": 2`)
	assert.Contains(t, s, `"value": 0.5`)
	assert.Contains(t, s, `"error": "unsupported measurement"`)
}
