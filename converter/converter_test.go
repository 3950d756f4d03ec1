//go:build unit
// +build unit

package converter

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/circuit"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/common"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/core"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/qpu"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/qpu/mock_qpu"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/transpiler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bellTape(t *testing.T) *circuit.Tape {
	path, err := common.GetAssetAbsPath("bell_pair.json")
	require.Nil(t, err)
	tape, err := circuit.LoadTapeFile(path)
	require.Nil(t, err)
	return tape
}

func seededBackend() qpu.Backend {
	ds := qpu.NewDeviceSetting()
	ds.Seed = 7
	return qpu.NewLocalQPU(ds)
}

func TestSimulateLocal(t *testing.T) {
	c, err := New(bellTape(t), WithBackend(seededBackend()))
	require.Nil(t, err)
	assert.False(t, c.IsRemote())

	out, err := c.Simulate(context.Background())
	require.Nil(t, err)
	assert.NotEmpty(t, out.RunID)
	assert.Empty(t, out.Diagnostics)
	require.Len(t, out.Results, 1)
	assert.Nil(t, out.Results[0].Err)
	assert.Equal(t, uint32(1000), out.Results[0].Counts.Total())

	again, err := c.Simulate(context.Background())
	require.Nil(t, err)
	assert.NotEqual(t, out.RunID, again.RunID)
}

func TestSimulateMode(t *testing.T) {
	tape := &circuit.Tape{
		Operations: []circuit.Operation{
			circuit.NewOperation("Hadamard", []int{0}),
			circuit.NewOperation("MyGate", []int{0}),
			circuit.NewOperation("IsingZZ", []int{0, 1}, 0.2),
		},
		Measurements: []circuit.MeasurementRequest{{Kind: circuit.Probabilities}},
	}
	tests := []struct {
		name            string
		mode            transpiler.Mode
		wantErr         error
		wantDiagnostics int
	}{
		{name: "best effort", mode: transpiler.BEST_EFFORT, wantDiagnostics: 2},
		{name: "strict", mode: transpiler.STRICT, wantErr: core.ErrUnknownOperation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tape, WithMode(tt.mode), WithBackend(seededBackend()))
			require.Nil(t, err)
			out, err := c.Simulate(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.Nil(t, err)
			assert.Len(t, out.Diagnostics, tt.wantDiagnostics)
			assert.InDeltaSlice(t, []float64{0.5, 0, 0.5, 0}, out.Results[0].Probabilities, 1e-9)
		})
	}
}

func TestSimulateRemote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mock_qpu.NewMockRemoteClient(ctrl)
	client.EXPECT().Submit(gomock.Any(), gomock.Any(), 1000).Return("job-1", nil)
	client.EXPECT().Status(gomock.Any(), "job-1").Return(core.SUCCEEDED, nil)
	client.EXPECT().Result(gomock.Any(), "job-1").Return(
		&qpu.RemoteResult{Histogram: core.Counts{"00": 500, "11": 500}}, nil)

	c, err := New(bellTape(t),
		WithExecutionContext(completeContext),
		WithRemoteClient(client),
		WithPollSetting(map[string]interface{}{"interval": "1ms"}))
	require.Nil(t, err)
	assert.True(t, c.IsRemote())

	out, err := c.Simulate(context.Background())
	require.Nil(t, err)
	assert.Equal(t, core.Counts{"00": 500, "11": 500}, out.Results[0].Counts)
	assert.Equal(t, "job-1", out.Results[0].Job.ID)
}

func TestSimulateRemoteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mock_qpu.NewMockRemoteClient(ctrl)
	client.EXPECT().Submit(gomock.Any(), gomock.Any(), 1000).Return("job-2", nil)
	client.EXPECT().Status(gomock.Any(), "job-2").Return(core.CANCELLED, nil)

	c, err := New(bellTape(t), WithExecutionContext(completeContext), WithRemoteClient(client))
	require.Nil(t, err)
	out, err := c.Simulate(context.Background())
	assert.Nil(t, out)
	assert.True(t, core.IsRemoteFailure(err))
}

var completeContext = core.ExecutionContext{
	Host:        "https://api.example.com",
	User:        "alice",
	AccessToken: "secret",
	ProjectID:   "project-1",
}

func TestNew(t *testing.T) {
	complete := completeContext
	zero := 0
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mock_qpu.NewMockRemoteClient(ctrl)
	tests := []struct {
		name       string
		tape       *circuit.Tape
		opts       []Option
		wantRemote bool
		wantErr    bool
	}{
		{
			name:       "incomplete execution context stays local",
			tape:       &circuit.Tape{},
			opts:       []Option{WithExecutionContext(core.ExecutionContext{Host: "https://api.example.com"})},
			wantRemote: false,
		},
		{
			name:       "remote client without execution context stays local",
			tape:       &circuit.Tape{},
			opts:       []Option{WithRemoteClient(client)},
			wantRemote: false,
		},
		{
			name: "remote client with partial execution context stays local",
			tape: &circuit.Tape{},
			opts: []Option{
				WithExecutionContext(core.ExecutionContext{Host: "https://api.example.com", User: "alice", AccessToken: "secret"}),
				WithRemoteClient(client),
			},
			wantRemote: false,
		},
		{
			name:       "remote client with complete execution context",
			tape:       &circuit.Tape{},
			opts:       []Option{WithExecutionContext(complete), WithRemoteClient(client)},
			wantRemote: true,
		},
		{
			name:       "complete execution context builds a gateway client",
			tape:       &circuit.Tape{},
			opts:       []Option{WithExecutionContext(complete)},
			wantRemote: true,
		},
		{
			name: "invalid host",
			tape: &circuit.Tape{},
			opts: []Option{WithExecutionContext(core.ExecutionContext{
				Host: "ftp://api.example.com", User: "u", AccessToken: "t", ProjectID: "p"})},
			wantErr: true,
		},
		{
			name:    "invalid poll setting",
			tape:    &circuit.Tape{},
			opts:    []Option{WithExecutionContext(complete), WithPollSetting(map[string]interface{}{"timeout": "never"})},
			wantErr: true,
		},
		{
			name:    "zero shots",
			tape:    &circuit.Tape{Shots: &zero},
			wantErr: true,
		},
		{
			name:    "nil tape",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.tape, tt.opts...)
			if tt.wantErr {
				assert.NotNil(t, err)
				return
			}
			require.Nil(t, err)
			assert.Equal(t, tt.wantRemote, c.IsRemote())
		})
	}
}
