package main

import (
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"
	"github.com/massn/envordot"

	"github.com/oqtopus-team/oqtopus-engine/sfbridge/core"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/log"
	"github.com/oqtopus-team/oqtopus-engine/sfbridge/qpu"

	"go.uber.org/dig"
	"go.uber.org/zap"
)

var versionByBuildFlag string
var parser *flags.Parser
var bridge *Bridge

func init() {
	if err := envordot.Load(false, ".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Not found \".env\" file. Use only environment variables. Reason:%s\n", err.Error())
	}
	bridge = &Bridge{}
	setParser(bridge)
}

type Bridge struct {
	DIContainerParameters *DIContainerParameters
	Conf                  *core.Conf
}

type DIContainerParameters struct {
	Target string `long:"target" description:"where counts and samples run, auto means remote when credentials are complete" default:"auto" choice:"auto" choice:"local" choice:"remote" env:"SFBRIDGE_TARGET"`
}

func setParser(b *Bridge) {
	parser = flags.NewParser(b, flags.Default)
	parser.ShortDescription = "sfbridge"
	parser.LongDescription = "translate circuit tapes into executable circuits and run their measurements."
	parser.AddCommand("simulate", "simulate a tape", "translate a tape file and evaluate its measurements", newSimulateCmd())
	parser.AddCommand("translate", "translate a tape", "translate a tape file and print the executable circuit", newTranslateCmd())
	parser.AddCommand("operations", "list operations", "list the supported and unimplemented source operations", newOperationsCmd())
}

func parse() {
	if _, err := parser.Parse(); err != nil {
		code := 1
		if fe, ok := err.(*flags.Error); ok {
			if fe.Type == flags.ErrHelp {
				code = 0
			}
		}
		if code == 1 {
			fmt.Fprintf(os.Stderr, "failed to run, because %s\n", err)
		}
		os.Exit(code)
	}
}

func (b *Bridge) provideDIContainer() (c *dig.Container, err error) {
	c = dig.New()
	if err = c.Provide(func() *core.Conf { return b.Conf }); err != nil {
		return nil, err
	}
	err = c.Provide(func(conf *core.Conf) (*core.Setting, error) {
		return core.LoadSetting(conf.SettingPath)
	})
	if err != nil {
		return nil, err
	}
	err = c.Provide(func(conf *core.Conf, s *core.Setting) (core.ExecutionContext, error) {
		ec := core.ExecutionContextFromConf(conf).Merge(s.Remote)
		switch b.DIContainerParameters.Target {
		case "local":
			return core.ExecutionContext{}, nil
		case "remote":
			if !ec.IsComplete() {
				return ec, fmt.Errorf("remote target needs host, user, access token and project id")
			}
		}
		return ec, nil
	})
	if err != nil {
		return nil, err
	}
	err = c.Provide(func(conf *core.Conf) (qpu.Backend, error) {
		l := qpu.NewLocalQPU(nil)
		if err := l.Setup(conf); err != nil {
			return nil, err
		}
		return l, nil
	})
	if err != nil {
		return nil, err
	}
	// nil when the execution context is incomplete
	err = c.Provide(func(ec core.ExecutionContext) (qpu.RemoteClient, error) {
		if !ec.IsComplete() {
			return nil, nil
		}
		return qpu.NewGatewayClient(ec)
	})
	if err != nil {
		return nil, err
	}
	err = c.Provide(func() *log.Metrics { return log.DefaultMetrics() })
	return
}

func main() {
	parse()
}

func setZap(conf *core.Conf) *zap.Logger {
	logger, err := log.SetZap(conf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to setup logger. Reason:%s\n", err)
		panic(err)
	}
	return logger
}

// setup starts logging and builds the container shared by the commands.
func setup() (*zap.Logger, *dig.Container, error) {
	logger := setZap(bridge.Conf)
	core.SetVersion(bridge.Conf, versionByBuildFlag)
	zap.L().Debug(fmt.Sprintf("conf:%+v", *core.NewInfo(bridge.Conf).Conf))
	zap.L().Debug(fmt.Sprintf("Providing DI Container with parameters %+v", bridge.DIContainerParameters))
	container, err := bridge.provideDIContainer()
	if err != nil {
		zap.L().Error(fmt.Sprintf("Failed to setting up DI-Container. Reason:%s", err.Error()))
		return logger, nil, err
	}
	return logger, container, nil
}
