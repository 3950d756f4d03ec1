package log

import (
	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const INSTRUMENTATION_NAME = "github.com/oqtopus-team/oqtopus-engine/sfbridge"

// Metrics holds the instruments recorded by one converter run. Without a
// configured meter provider every instrument is a no-op.
type Metrics struct {
	TranslatedOperations metric.Int64Counter
	SkippedOperations    metric.Int64Counter
	Measurements         metric.Int64Counter
	RemotePolls          metric.Int64Counter
	SimulateDuration     metric.Float64Histogram
}

func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}
	var err error
	if m.TranslatedOperations, err = meter.Int64Counter(
		"sfbridge.translated_operations",
		metric.WithDescription("operations translated into target gates")); err != nil {
		return nil, errors.Wrap(err, "translated_operations")
	}
	if m.SkippedOperations, err = meter.Int64Counter(
		"sfbridge.skipped_operations",
		metric.WithDescription("operations skipped with a diagnostic")); err != nil {
		return nil, errors.Wrap(err, "skipped_operations")
	}
	if m.Measurements, err = meter.Int64Counter(
		"sfbridge.measurements",
		metric.WithDescription("measurements evaluated")); err != nil {
		return nil, errors.Wrap(err, "measurements")
	}
	if m.RemotePolls, err = meter.Int64Counter(
		"sfbridge.remote_polls",
		metric.WithDescription("status requests sent to the remote service")); err != nil {
		return nil, errors.Wrap(err, "remote_polls")
	}
	if m.SimulateDuration, err = meter.Float64Histogram(
		"sfbridge.simulate.duration",
		metric.WithUnit("s"),
		metric.WithDescription("duration of one simulation")); err != nil {
		return nil, errors.Wrap(err, "simulate.duration")
	}
	return m, nil
}

// DefaultMetrics uses the global meter provider and falls back to no-op
// instruments.
func DefaultMetrics() *Metrics {
	m, err := NewMetrics(otel.Meter(INSTRUMENTATION_NAME))
	if err != nil {
		return NoopMetrics()
	}
	return m
}

func NoopMetrics() *Metrics {
	m, _ := NewMetrics(noop.NewMeterProvider().Meter(INSTRUMENTATION_NAME))
	return m
}

func Tracer() trace.Tracer {
	return otel.Tracer(INSTRUMENTATION_NAME)
}
