package main

import (
	"context"
	"fmt"
	"os"
	"syscall"

	jsoniter "github.com/json-iterator/go"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/circuit"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/converter"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/core"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/log"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/qpu"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/transpiler"
	"github.com/tidwall/pretty"
	"go.uber.org/dig"
	"go.uber.org/zap"
)

const SIMULATE_TASK_NAME = "simulate"

var jsonIter = jsoniter.ConfigCompatibleWithStandardLibrary

type converterParams struct {
	dig.In

	Conf    *core.Conf
	Setting *core.Setting
	ExecCtx core.ExecutionContext
	Backend qpu.Backend
	Remote  qpu.RemoteClient
	Metrics *log.Metrics
}

func newConverter(p converterParams, tape *circuit.Tape) (*converter.Converter, error) {
	mode := transpiler.BEST_EFFORT
	if p.Conf.Strict || p.Setting.Translation.Strict {
		mode = transpiler.STRICT
	}
	opts := []converter.Option{
		converter.WithExecutionContext(p.ExecCtx),
		converter.WithBackend(p.Backend),
		converter.WithMode(mode),
		converter.WithPollSetting(p.Setting.Poller),
		converter.WithMetrics(p.Metrics),
	}
	if p.Remote != nil {
		opts = append(opts, converter.WithRemoteClient(p.Remote))
	}
	return converter.New(tape, opts...)
}

func loadTape(args []string) (*circuit.Tape, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("expected one tape file, got %d arguments", len(args))
	}
	return circuit.LoadTapeFile(args[0])
}

func printJSON(v interface{}) error {
	b, err := jsonIter.Marshal(v)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(pretty.Pretty(b))
	return err
}

type simulateCmd struct{}

func newSimulateCmd() *simulateCmd {
	return &simulateCmd{}
}

type simulateOutput struct {
	RunID       string                  `json:"run_id"`
	Diagnostics []transpiler.Diagnostic `json:"diagnostics"`
	Results     jsoniter.RawMessage     `json:"results"`
}

func (c *simulateCmd) Execute(args []string) error {
	logger, container, err := setup()
	defer logger.Sync()
	if err != nil {
		return err
	}
	tape, err := loadTape(args)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to load tape/reason:%s", err))
		return err
	}

	rc := core.NewRunContext(context.Background())
	rc.AddSignalHandler(os.Interrupt, syscall.SIGTERM)
	rc.AddTask(SIMULATE_TASK_NAME, func(ctx context.Context) error {
		return container.Invoke(func(p converterParams) error {
			conv, err := newConverter(p, tape)
			if err != nil {
				return err
			}
			out, err := conv.Simulate(ctx)
			if err != nil {
				return err
			}
			return printJSON(simulateOutput{
				RunID:       out.RunID,
				Diagnostics: out.Diagnostics,
				Results:     jsoniter.RawMessage(out.Results.ToString()),
			})
		})
	})
	return rc.Run()
}

type translateCmd struct{}

func newTranslateCmd() *translateCmd {
	return &translateCmd{}
}

type translateOutput struct {
	Qubits       int                     `json:"qubits"`
	Instructions []qpu.InstructionInfo   `json:"instructions"`
	Diagnostics  []transpiler.Diagnostic `json:"diagnostics"`
}

func (c *translateCmd) Execute(args []string) error {
	logger, container, err := setup()
	defer logger.Sync()
	if err != nil {
		return err
	}
	tape, err := loadTape(args)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to load tape/reason:%s", err))
		return err
	}
	return container.Invoke(func(p converterParams) error {
		conv, err := newConverter(p, tape)
		if err != nil {
			return err
		}
		tr, err := conv.Translate(context.Background())
		if err != nil {
			return err
		}
		infos, err := qpu.AsDictionaries(tr.Circuit)
		if err != nil {
			return err
		}
		return printJSON(translateOutput{
			Qubits:       tr.WireCount,
			Instructions: infos,
			Diagnostics:  tr.Diagnostics,
		})
	})
}

type operationsCmd struct{}

func newOperationsCmd() *operationsCmd {
	return &operationsCmd{}
}

type operationsOutput struct {
	Version       string   `json:"version"`
	Supported     []string `json:"supported"`
	Unimplemented []string `json:"unimplemented"`
}

func (c *operationsCmd) Execute(_ []string) error {
	return printJSON(operationsOutput{
		Version:       transpiler.OPERATION_MAP_VERSION,
		Supported:     transpiler.Operations(transpiler.Found),
		Unimplemented: transpiler.Operations(transpiler.Unimplemented),
	})
}
