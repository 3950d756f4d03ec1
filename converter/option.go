package converter

import (
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/core"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/log"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/poller"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/qpu"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/transpiler"
)

type Option func(*Converter)

// WithExecutionContext sets the credentials of the remote service. A
// complete context makes the converter submit counts and samples remotely.
func WithExecutionContext(ec core.ExecutionContext) Option {
	return func(c *Converter) {
		c.execCtx = ec
	}
}

func WithBackend(b qpu.Backend) Option {
	return func(c *Converter) {
		c.backend = b
	}
}

// WithRemoteClient overrides the client built from the execution context.
// It is ignored unless the execution context is complete.
func WithRemoteClient(rc qpu.RemoteClient) Option {
	return func(c *Converter) {
		c.remote = rc
	}
}

func WithMode(m transpiler.Mode) Option {
	return func(c *Converter) {
		c.mode = m
	}
}

// WithPoller sets a ready poller. It takes precedence over the remote
// client and the poll setting, and like them needs a complete execution
// context.
func WithPoller(p *poller.Poller) Option {
	return func(c *Converter) {
		c.poller = p
	}
}

// WithPollSetting passes the [poller] table of the setting file.
func WithPollSetting(params map[string]interface{}) Option {
	return func(c *Converter) {
		c.pollParams = params
	}
}

func WithMetrics(m *log.Metrics) Option {
	return func(c *Converter) {
		c.metrics = m
	}
}
