package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/homecmd/internal/config"
	"github.com/ja-he/homecmd/internal/control/dispatch"
	"github.com/ja-he/homecmd/internal/home"
	"github.com/ja-he/homecmd/internal/metrics"
)

// Steps of a run, other than slots.
const (
	StepUndo    = "undo"
	StepHistory = "history"
)

// RunCommand contains flags for the `run` command line command, for
// `go-flags` to parse command line args into.
type RunCommand struct {
	History int  `short:"H" long:"history" description:"history capacity (overrides config)" value-name:"<n>"`
	Metrics bool `short:"m" long:"metrics" description:"print metrics after the run"`

	LogOpts

	Args struct {
		Steps []string `positional-arg-name:"step" description:"a slot to execute, 'undo', or 'history'"`
	} `positional-args:"true"`
}

// Execute executes the run command.
// (This gets called by `go-flags` when `run` is provided on the command line)
func (command *RunCommand) Execute(args []string) error {
	cfg, err := loadConfig(config.Dark)
	if err != nil {
		return err
	}

	logger, closeLog, err := command.logger(zerolog.ConsoleWriter{Out: os.Stderr})
	if err != nil {
		return err
	}
	defer closeLog()

	m := metrics.New()
	h, err := home.FromConfig(cfg, command.History, logger, dispatch.WithObserver(m))
	if err != nil {
		return err
	}

	runSteps(h.Dispatcher, append(command.Args.Steps, args...))

	if command.Metrics {
		return m.Dump(os.Stdout)
	}
	return nil
}

// runSteps performs the given steps in order.
// Failing steps are reported by the dispatcher and don't stop the run.
func runSteps(d *dispatch.Dispatcher, steps []string) {
	for _, step := range steps {
		var err error
		switch step {
		case StepUndo:
			err = d.Undo()
		case StepHistory:
			d.ShowHistory()
		default:
			err = d.ExecuteSlot(dispatch.Slot(step))
		}
		if err != nil {
			log.Debug().Err(err).Str("step", step).Msg("step failed")
		}
	}
}
