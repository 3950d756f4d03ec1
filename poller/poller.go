package poller

import (
	"context"
	"fmt"
	"time"

	"github.com/go-faster/errors"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/core"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/log"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/qpu"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

type State int

const PollerSettingKey = "poller"

const (
	SUBMITTED State = iota
	POLLING
	SUCCEEDED
	FAILED
)

const (
	DEFAULT_INTERVAL     = time.Second
	DEFAULT_MAX_INTERVAL = 30 * time.Second
	DEFAULT_TIMEOUT      = 10 * time.Minute
	DEFAULT_MAX_RETRY    = 3
)

func (s State) String() string {
	switch s {
	case SUBMITTED:
		return "SUBMITTED"
	case POLLING:
		return "POLLING"
	case SUCCEEDED:
		return "SUCCEEDED"
	case FAILED:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// Poller submits one circuit to the remote service and polls its status
// until the job ends. A Poller runs one job at a time.
type Poller struct {
	Interval    time.Duration `toml:"interval"`
	MaxInterval time.Duration `toml:"max_interval"`
	Timeout     time.Duration `toml:"timeout"`
	MaxRetry    int           `toml:"max_retry"`

	client  qpu.RemoteClient
	metrics *log.Metrics

	currentPeriod time.Duration
	failures      int
	state         State
	history       []State
}

func NewPoller(client qpu.RemoteClient) *Poller {
	return &Poller{
		Interval:    DEFAULT_INTERVAL,
		MaxInterval: DEFAULT_MAX_INTERVAL,
		Timeout:     DEFAULT_TIMEOUT,
		MaxRetry:    DEFAULT_MAX_RETRY,
		client:      client,
		metrics:     log.NoopMetrics(),
	}
}

func (p *Poller) WithMetrics(m *log.Metrics) *Poller {
	if m != nil {
		p.metrics = m
	}
	return p
}

// SetParams reads the [poller] table of the setting file. Missing or zero
// values fall back to the defaults.
func (p *Poller) SetParams(params interface{}) error {
	if params == nil {
		zap.L().Debug("no params for poller")
		return nil
	}
	pp, ok := params.(map[string]interface{})
	if !ok {
		msg := fmt.Errorf("failed to set params for poller/params: %v", params)
		zap.L().Error(msg.Error())
		return msg
	}
	zap.L().Debug(fmt.Sprintf("Set params for poller: %v", pp))
	if err := setIntField("max_retry", &p.MaxRetry, pp, DEFAULT_MAX_RETRY); err != nil {
		return err
	}
	if err := setDurationField("interval", &p.Interval, pp, DEFAULT_INTERVAL); err != nil {
		return err
	}
	if err := setDurationField("max_interval", &p.MaxInterval, pp, DEFAULT_MAX_INTERVAL); err != nil {
		return err
	}
	if err := setDurationField("timeout", &p.Timeout, pp, DEFAULT_TIMEOUT); err != nil {
		return err
	}
	if p.MaxInterval < p.Interval {
		zap.L().Warn(fmt.Sprintf("max_interval %s is shorter than interval %s, use interval", p.MaxInterval, p.Interval))
		p.MaxInterval = p.Interval
	}
	return nil
}

func setIntField(key string, target *int, pp map[string]interface{}, defaultVal int) error {
	v, ok := pp[key]
	if !ok {
		*target = defaultVal
		zap.L().Debug(fmt.Sprintf("Set default value for %s: %v", key, defaultVal))
		return nil
	}
	// TOML integers decode as int64
	switch n := v.(type) {
	case int:
		*target = n
	case int64:
		*target = int(n)
	default:
		return fmt.Errorf("%s must be an integer, got %v", key, v)
	}
	if *target < 0 {
		return fmt.Errorf("%s must not be negative, got %d", key, *target)
	}
	return nil
}

func setDurationField(key string, target *time.Duration, pp map[string]interface{}, defaultVal time.Duration) error {
	v, ok := pp[key]
	if !ok {
		*target = defaultVal
		zap.L().Debug(fmt.Sprintf("Set default value for %s: %v", key, defaultVal))
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("%s must be a duration string, got %v", key, v)
	}
	dur, err := time.ParseDuration(s)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to parse duration for %s/reason:%s", key, err))
		return errors.Wrapf(err, "parse %s", key)
	}
	if dur <= 0 {
		return fmt.Errorf("%s must be positive, got %s", key, dur)
	}
	*target = dur
	return nil
}

func (p *Poller) State() State {
	return p.state
}

// History returns the states the last job went through.
func (p *Poller) History() []State {
	return append([]State(nil), p.history...)
}

// Execute submits c and waits for its result. The returned JobData is set
// whenever the submission succeeded.
func (p *Poller) Execute(ctx context.Context, c *qpu.QuantumCircuit, shots int) (*core.JobData, *qpu.RemoteResult, error) {
	p.history = []State{}
	p.failures = 0
	p.currentPeriod = p.Interval

	jobID, err := p.client.Submit(ctx, c, shots)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to submit circuit/reason:%s", err))
		return nil, nil, errors.Wrap(err, "submit")
	}
	jd := core.NewJobData(jobID, shots)
	p.updateState(SUBMITTED)

	deadline := time.NewTimer(p.Timeout)
	defer deadline.Stop()
	next := time.NewTimer(0)
	defer next.Stop()
	for {
		select {
		case <-ctx.Done():
			jd.Finish(core.CANCELLED, ctx.Err().Error())
			p.updateState(FAILED)
			return jd, nil, errors.Wrapf(ctx.Err(), "polling job %s", jd.ID)
		case <-deadline.C:
			jd.Finish(core.FAILED, "timeout")
			p.updateState(FAILED)
			zap.L().Error(fmt.Sprintf("polling timed out/job:%s/timeout:%s/polls:%d", jd.ID, p.Timeout, jd.Polls))
			return jd, nil, errors.Wrapf(core.ErrPollTimeout, "job %s after %s", jd.ID, p.Timeout)
		case <-next.C:
		}
		done, err := p.poll(ctx, jd)
		if err != nil {
			return jd, nil, err
		}
		if done {
			break
		}
		next.Reset(p.currentPeriod)
	}

	result, err := p.client.Result(ctx, jd.ID)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to get result/job:%s/reason:%s", jd.ID, err))
		return jd, nil, errors.Wrapf(err, "result of job %s", jd.ID)
	}
	zap.L().Info(fmt.Sprintf("job finished/job:%s/polls:%d/elapsed:%s", jd.ID, jd.Polls, jd.Elapsed()))
	return jd, result, nil
}

// poll requests the status once. It reports true when the job succeeded.
func (p *Poller) poll(ctx context.Context, jd *core.JobData) (bool, error) {
	jd.Polls++
	st, err := p.client.Status(ctx, jd.ID)
	if err != nil {
		p.metrics.RemotePolls.Add(ctx, 1, metric.WithAttributes(attribute.String("status", "error")))
		p.failures++
		if p.failures > p.MaxRetry {
			jd.Finish(core.FAILED, err.Error())
			p.updateState(FAILED)
			zap.L().Error(fmt.Sprintf("Reached max retry/job:%s/reason:%s", jd.ID, err))
			return false, errors.Wrapf(err, "status of job %s failed %d times", jd.ID, p.failures)
		}
		p.currentPeriod *= 2
		if p.currentPeriod > p.MaxInterval {
			p.currentPeriod = p.MaxInterval
		}
		zap.L().Warn(fmt.Sprintf("Failed to get status. Retry after %s/job:%s/failures:%d/reason:%s",
			p.currentPeriod, jd.ID, p.failures, err))
		return false, nil
	}
	p.metrics.RemotePolls.Add(ctx, 1, metric.WithAttributes(attribute.String("status", st.String())))
	p.failures = 0
	p.currentPeriod = p.Interval
	jd.Status = st
	switch st {
	case core.SUCCEEDED:
		jd.Finish(st, "")
		p.updateState(SUCCEEDED)
		return true, nil
	case core.FAILED, core.CANCELLED:
		jd.Finish(st, "")
		p.updateState(FAILED)
		zap.L().Error(fmt.Sprintf("remote job ended/job:%s/status:%s", jd.ID, st))
		return false, &core.RemoteExecutionError{JobID: jd.ID, Status: st}
	default:
		zap.L().Debug(fmt.Sprintf("job is %s/job:%s/polls:%d", st, jd.ID, jd.Polls))
		p.updateState(POLLING)
		return false, nil
	}
}

func (p *Poller) updateState(newState State) {
	p.state = newState
	p.history = append(p.history, newState)
}
