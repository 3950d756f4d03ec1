package converter

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/circuit"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/core"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/dispatcher"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/log"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/poller"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/qpu"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/transpiler"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Converter runs one source tape on the local backend or, when remote
// credentials are set, on the remote service.
type Converter struct {
	tape *circuit.Tape

	execCtx    core.ExecutionContext
	backend    qpu.Backend
	remote     qpu.RemoteClient
	mode       transpiler.Mode
	poller     *poller.Poller
	pollParams map[string]interface{}
	metrics    *log.Metrics
}

type Output struct {
	RunID       string                  `json:"run_id"`
	Diagnostics []transpiler.Diagnostic `json:"diagnostics"`
	Results     dispatcher.Results      `json:"-"`
}

func New(tape *circuit.Tape, opts ...Option) (*Converter, error) {
	if tape == nil {
		return nil, fmt.Errorf("tape is nil")
	}
	if err := tape.CheckShots(); err != nil {
		return nil, err
	}
	c := &Converter{
		tape: tape,
		mode: transpiler.BEST_EFFORT,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.metrics == nil {
		c.metrics = log.DefaultMetrics()
	}
	if c.backend == nil {
		c.backend = qpu.NewLocalQPU(nil)
	}
	if !c.execCtx.IsComplete() {
		if c.remote != nil || c.poller != nil {
			zap.L().Warn("incomplete execution context, ignoring the remote client and running locally")
		}
		c.remote = nil
		c.poller = nil
		return c, nil
	}
	if c.poller != nil {
		return c, nil
	}
	if c.remote == nil {
		gc, err := qpu.NewGatewayClient(c.execCtx)
		if err != nil {
			return nil, errors.Wrap(err, "remote client")
		}
		c.remote = gc
	}
	if c.remote != nil {
		c.poller = poller.NewPoller(c.remote).WithMetrics(c.metrics)
		if err := c.poller.SetParams(c.pollParams); err != nil {
			return nil, errors.Wrap(err, "poller setting")
		}
	}
	return c, nil
}

func (c *Converter) IsRemote() bool {
	return c.poller != nil
}

// Translate only builds the target circuit.
func (c *Converter) Translate(ctx context.Context) (*transpiler.Translation, error) {
	return transpiler.NewTranspiler(c.mode, c.metrics).Translate(ctx, c.tape)
}

// Simulate translates the tape and evaluates its measurements in order.
// Errors of single measurements are kept on their results; translation
// and remote failures are returned.
func (c *Converter) Simulate(ctx context.Context) (*Output, error) {
	runID := uuid.NewString()
	ctx, span := log.Tracer().Start(ctx, "sfbridge.Simulate", trace.WithAttributes(
		attribute.String("run_id", runID),
		attribute.Bool("remote", c.IsRemote()),
		attribute.String("mode", c.mode.String()),
		attribute.Int("shots", c.tape.ShotCount()),
	))
	defer span.End()
	start := time.Now()
	logger := zap.L().With(zap.String("runID", runID))
	logger.Info(fmt.Sprintf("simulate/operations:%d/measurements:%d/shots:%d/remote:%t",
		len(c.tape.Operations), len(c.tape.Measurements), c.tape.ShotCount(), c.IsRemote()))

	tr, err := c.Translate(ctx)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to translate/reason:%s", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "translation")
		return nil, err
	}
	out := &Output{
		RunID:       runID,
		Diagnostics: tr.Diagnostics,
	}
	results, err := dispatcher.NewDispatcher(c.backend, c.poller, c.metrics).
		MeasureAll(ctx, tr, c.tape.ShotCount())
	if err != nil {
		logger.Error(fmt.Sprintf("failed to measure/reason:%s", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "measurement")
		return nil, err
	}
	out.Results = results
	if err := results.Err(); err != nil {
		logger.Warn(fmt.Sprintf("some measurements failed/reason:%s", err))
	}
	elapsed := time.Since(start)
	c.metrics.SimulateDuration.Record(ctx, elapsed.Seconds())
	logger.Info(fmt.Sprintf("simulated/elapsed:%s/diagnostics:%d", elapsed, len(out.Diagnostics)))
	return out, nil
}
