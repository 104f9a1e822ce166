// Package app wires parsing, distance building, search and reporting into
// one run of the valvenet command.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/valvenet/config"
	"github.com/katalvlaran/valvenet/input"
	"github.com/katalvlaran/valvenet/matrix"
	"github.com/katalvlaran/valvenet/metrics"
	"github.com/katalvlaran/valvenet/search"
)

// App runs searches and writes reports to outW and logs to logW.
type App struct {
	outW io.Writer
	logW io.Writer
}

// New returns an App writing reports to outW and logs to logW.
func New(outW, logW io.Writer) *App {
	return &App{outW: outW, logW: logW}
}

// Run executes one full search described by cfg.
func (a *App) Run(ctx context.Context, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger := newLogger(cfg.Log, a.logW).With("run_id", uuid.NewString())
	began := time.Now()

	network, err := input.ParseFile(cfg.Input, cfg.Start)
	if err != nil {
		return err
	}
	logger.Info("network loaded",
		"input", cfg.Input, "valves", network.Len(),
		"value_bearing", len(network.ValueBearing()), "start", network.Start())
	if len(network.ValueBearing()) == 0 {
		logger.Warn("no value-bearing valves, nothing to open")
	}

	opts := cfg.SearchOptions()
	opts.Logger = logger
	var reg *prometheus.Registry
	if cfg.Metrics {
		reg = prometheus.NewRegistry()
		if opts.Metrics, err = metrics.New(reg); err != nil {
			return fmt.Errorf("register metrics: %w", err)
		}
	}

	dist, err := matrix.Build(network, matrix.WithContext(ctx), matrix.WithBudget(cfg.Budget))
	if err != nil {
		return err
	}
	opts.Metrics.AddMatrixVisits(dist.Visits())
	logger.Debug("distance matrix built",
		"size", dist.Len(), "visits", dist.Visits(), "symmetric", dist.Symmetric())

	res, err := search.Solve(ctx, dist, opts)
	if err != nil {
		return err
	}
	elapsed := time.Since(began)
	logger.Info("search finished",
		"single", res.Single, "dual", res.Dual, "partition", opts.Partition, "elapsed", elapsed)

	if err := report(a.outW, res, elapsed); err != nil {
		return err
	}
	if reg != nil {
		return writeMetrics(a.outW, reg, logger)
	}

	return nil
}

// report prints both optima and the wall time of the run.
func report(w io.Writer, res search.Result, elapsed time.Duration) error {
	_, err := fmt.Fprintf(w,
		"single-agent pressure: %d\ndual-agent pressure:   %d\nelapsed: %s\n",
		res.Single, res.Dual, elapsed.Round(time.Microsecond))
	return err
}

// writeMetrics dumps reg in the Prometheus text exposition format.
func writeMetrics(w io.Writer, reg prometheus.Gatherer, logger *slog.Logger) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	logger.Debug("writing metrics", "families", len(families))
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}
