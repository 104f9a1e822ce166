// Package cli turns command-line arguments into a validated config.Config.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/valvenet/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
//
// Settings are layered: defaults, then the -config file, then any flag that
// was set explicitly.
func Parse(args []string, output io.Writer) (*config.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("valvenet", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
valvenet - maximise released pressure in a valve network within a time budget.

Usage:
  valvenet [options] [INPUT_PATH]

Arguments:
  INPUT_PATH
    Path to the valve list (one "Valve XX has flow rate=N; ..." per line).

Options:
`)
		flagSet.PrintDefaults()
	}

	def := config.Default()
	configFlag := flagSet.String("config", "", "Path to a .yaml/.yml or .toml config file.")
	inputFlag := flagSet.String("input", "", "Path to the valve list.")
	startFlag := flagSet.String("start", def.Start, "ID of the start valve.")
	budgetFlag := flagSet.Int("budget", def.Budget, "Time budget of a single agent.")
	overheadFlag := flagSet.Int("overhead", def.Overhead, "Time each agent loses when two agents work together.")
	maxVisitsFlag := flagSet.Int("max-visits", def.MaxVisits, "Cap on valves one agent opens. 0 is exact.")
	workersFlag := flagSet.Int("workers", def.Workers, "Number of concurrent search workers. 0 uses GOMAXPROCS.")
	partitionFlag := flagSet.String("partition", def.Partition, "Dual-agent splits. Options: 'balanced' or 'all'.")
	strictFlag := flagSet.Bool("strict", def.Strict, "Fail when the network has no value-bearing valves.")
	metricsFlag := flagSet.Bool("metrics", def.Metrics, "Print search metrics in Prometheus text format.")
	logFormatFlag := flagSet.String("log-format", def.Log.Format, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", def.Log.Level, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	cfg := def
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg = loaded
	}

	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = *inputFlag
		case "start":
			cfg.Start = *startFlag
		case "budget":
			cfg.Budget = *budgetFlag
		case "overhead":
			cfg.Overhead = *overheadFlag
		case "max-visits":
			cfg.MaxVisits = *maxVisitsFlag
		case "workers":
			cfg.Workers = *workersFlag
		case "partition":
			cfg.Partition = *partitionFlag
		case "strict":
			cfg.Strict = *strictFlag
		case "metrics":
			cfg.Metrics = *metricsFlag
		case "log-format":
			cfg.Log.Format = strings.ToLower(*logFormatFlag)
		case "log-level":
			cfg.Log.Level = strings.ToLower(*logLevelFlag)
		}
	})
	if flagSet.NArg() > 0 && *inputFlag == "" {
		cfg.Input = flagSet.Arg(0)
	}
	slog.Debug("Input path determined.", "path", cfg.Input)

	if cfg.Input == "" {
		slog.Debug("No input path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return &cfg, false, nil
}
