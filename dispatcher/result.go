package dispatcher

import (
	"fmt"

	"github.com/go-faster/errors"
	jsoniter "github.com/json-iterator/go"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/circuit"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/core"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/qpu"
	"github.com/tidwall/pretty"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var jsonIter = jsoniter.ConfigCompatibleWithStandardLibrary

// Result holds the outcome of one measurement. Only the field matching Kind
// is set, and none of them when Err is set.
type Result struct {
	Kind          circuit.MeasurementKind
	Counts        core.Counts
	Samples       []int
	Probabilities []float64
	Expectation   float64
	State         qpu.StateVector
	// Job is the record of the remote job, nil for local runs.
	Job *core.JobData
	Err error
}

// Value returns the field matching Kind.
func (r *Result) Value() interface{} {
	switch r.Kind {
	case circuit.Counts:
		return r.Counts
	case circuit.Sample:
		return r.Samples
	case circuit.Probabilities:
		return r.Probabilities
	case circuit.ExpectationValue:
		return r.Expectation
	case circuit.State:
		amplitudes := make([][2]float64, len(r.State))
		for i, a := range r.State {
			amplitudes[i] = [2]float64{real(a), imag(a)}
		}
		return amplitudes
	default:
		return nil
	}
}

type Results []*Result

// Err combines the errors of every failed measurement.
func (rs Results) Err() error {
	var err error
	for i, r := range rs {
		if r.Err != nil {
			err = multierr.Append(err, errors.Wrapf(r.Err, "measurement %d (%s)", i, r.Kind))
		}
	}
	return err
}

type resultJSON struct {
	Kind  string      `json:"kind"`
	Value interface{} `json:"value,omitempty"`
	JobID string      `json:"job_id,omitempty"`
	Error string      `json:"error,omitempty"`
}

func (rs Results) ToString() string {
	out := make([]resultJSON, len(rs))
	for i, r := range rs {
		out[i] = resultJSON{Kind: r.Kind.String()}
		if r.Job != nil {
			out[i].JobID = r.Job.ID
		}
		if r.Err != nil {
			out[i].Error = r.Err.Error()
			continue
		}
		out[i].Value = r.Value()
	}
	b, err := jsonIter.Marshal(out)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to marshal results/reason:%s", err))
		return ""
	}
	return string(pretty.Pretty(b))
}
