package server

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"StockPulse/internal/usecase"
	"StockPulse/pkg/config"
	applogger "StockPulse/pkg/logger"
	"StockPulse/pkg/metrics"
)

// App encapsulates one analysis run: build the report, write it out, log a
// metrics summary. It is a batch job, not a long-running server.
type App struct {
	cfg      *config.Config
	log      *applogger.Logger
	reporter *usecase.InsightReporter
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Config, log *applogger.Logger, reporter *usecase.InsightReporter) *App {
	return &App{cfg: cfg, log: log, reporter: reporter}
}

// Run builds the insight report and writes it as indented JSON to the
// configured path, or stdout when none is set.
func (a *App) Run(ctx context.Context) error {
	report, err := a.reporter.BuildReport(ctx, a.cfg.Analytics.HorizonDays)
	if err != nil {
		return fmt.Errorf("build report: %w", err)
	}

	out := os.Stdout
	if a.cfg.Report.Path != "" {
		f, err := os.Create(a.cfg.Report.Path)
		if err != nil {
			return fmt.Errorf("create report file: %w", err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if totals, err := metrics.Totals(); err == nil {
		for _, name := range []string{
			"stockpulse_evaluations_total",
			"stockpulse_anomalies_found_total",
			"stockpulse_recommendations_total",
		} {
			if v, ok := totals[name]; ok {
				a.log.Debug("metric total", applogger.String("metric", name), applogger.Float64("value", v))
			}
		}
	}

	if a.cfg.Report.Path != "" {
		a.log.Info("report written", applogger.String("path", a.cfg.Report.Path))
	}
	return nil
}
