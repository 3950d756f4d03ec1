package core

import (
	"context"
	"fmt"
	"os"

	"github.com/oklog/run"
	"go.uber.org/zap"
)

// RunContext groups the actors of one process run. The first actor to
// return stops the others.
type RunContext struct {
	*run.Group
	context.Context
}

func NewRunContext(ctx context.Context) *RunContext {
	return &RunContext{
		Group:   &run.Group{},
		Context: ctx,
	}
}

// AddTask runs task once. The context passed to task is cancelled when
// another actor of the group returns.
func (rc *RunContext) AddTask(taskName string, task func(context.Context) error) {
	ctx, cancel := context.WithCancel(rc.Context)
	rc.Group.Add(
		func() error {
			zap.L().Info(fmt.Sprintf("[Task/%s/Start]", taskName))
			err := task(ctx)
			if err != nil {
				zap.L().Error(fmt.Sprintf("[Task/%s/Error]reason:%s", taskName, err))
				return err
			}
			zap.L().Info(fmt.Sprintf("[Task/%s/Finished]", taskName))
			return nil
		},
		func(error) {
			zap.L().Debug(fmt.Sprintf("[Task/%s/TearDown]cancelling task", taskName))
			cancel()
		},
	)
}

func (rc *RunContext) AddSignalHandler(signals ...os.Signal) {
	rc.Group.Add(run.SignalHandler(rc.Context, signals...))
}
