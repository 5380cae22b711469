package di

import (
	"StockPulse/internal/domain/repository"
	internalrepo "StockPulse/internal/repository"
	"StockPulse/internal/services/analytics"
	"StockPulse/internal/usecase"
	"StockPulse/pkg/config"
	applogger "StockPulse/pkg/logger"
	"StockPulse/pkg/metrics"
	"StockPulse/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideEngine builds the analytics engine, seeding the price optimizer
// when the config asks for reproducible draws.
func ProvideEngine(cfg *config.Config) *analytics.Engine {
	var opts []analytics.PriceOption
	if cfg.Analytics.Seed != 0 {
		opts = append(opts, analytics.WithSeed(cfg.Analytics.Seed))
	}
	return analytics.NewEngine(cfg.Analytics.HorizonDays, opts...)
}

// ProvideSalesHistorySource creates the workbook-backed sales history source.
func ProvideSalesHistorySource(cfg *config.Config, log *applogger.Logger) repository.SalesHistorySource {
	return internalrepo.NewWorkbookStore(cfg.Input.Path, log)
}

// ProvideInsightReporter wires the engine's four services into the reporter.
func ProvideInsightReporter(
	cfg *config.Config,
	log *applogger.Logger,
	store repository.SalesHistorySource,
	m repository.Metrics,
	engine *analytics.Engine,
) *usecase.InsightReporter {
	return usecase.NewInsightReporter(store, engine, engine, engine, engine, m, log, cfg.Analytics.Workers)
}

// ProvideApp creates the batch application.
func ProvideApp(cfg *config.Config, log *applogger.Logger, reporter *usecase.InsightReporter) *server.App {
	return server.New(cfg, log, reporter)
}
