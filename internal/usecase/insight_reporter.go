package usecase

import (
	"context"
	"math"
	"sync"
	"time"

	"StockPulse/internal/domain/models"
	domrepo "StockPulse/internal/domain/repository"
	domsvc "StockPulse/internal/domain/service"
	"StockPulse/pkg/logger"
)

// InsightReporter drives the four analytics components over a sales-history
// source and assembles one consolidated report. The components never call
// each other; this is the only place their outputs meet.
type InsightReporter struct {
	store   domrepo.SalesHistorySource
	trend   domsvc.TrendEstimator
	price   domsvc.PriceOptimizer
	anomaly domsvc.AnomalyDetector
	recs    domsvc.RecommendationSynthesizer
	metrics domrepo.Metrics
	log     *logger.Logger
	workers int
}

func NewInsightReporter(
	store domrepo.SalesHistorySource,
	trend domsvc.TrendEstimator,
	price domsvc.PriceOptimizer,
	anomaly domsvc.AnomalyDetector,
	recs domsvc.RecommendationSynthesizer,
	metrics domrepo.Metrics,
	log *logger.Logger,
	workers int,
) *InsightReporter {
	if workers < 1 {
		workers = 1
	}
	return &InsightReporter{
		store:   store,
		trend:   trend,
		price:   price,
		anomaly: anomaly,
		recs:    recs,
		metrics: metrics,
		log:     log,
		workers: workers,
	}
}

// BuildReport evaluates every product with a bounded worker pool. Each result
// lands at its product's input position, so the report order is the catalog
// order regardless of goroutine interleaving.
func (r *InsightReporter) BuildReport(ctx context.Context, horizonDays int) (models.InsightReport, error) {
	start := time.Now()

	products, err := r.store.Products(ctx)
	if err != nil {
		return models.InsightReport{}, err
	}
	snapshots, err := r.store.Snapshots(ctx)
	if err != nil {
		return models.InsightReport{}, err
	}
	snapByID := make(map[string]models.InventorySnapshot, len(snapshots))
	for _, s := range snapshots {
		snapByID[s.ID] = s
	}

	insights := make([]models.ProductInsight, len(products))
	sem := make(chan struct{}, r.workers)
	var wg sync.WaitGroup
	for i, id := range products {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, id string) {
			defer wg.Done()
			defer func() { <-sem }()
			insights[i] = r.productInsight(ctx, id, horizonDays, snapByID)
		}(i, id)
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return models.InsightReport{}, err
	}

	recs := r.recs.GenerateInventoryRecommendations(snapshots)
	r.metrics.RecordEvaluation("recommendations")
	for _, rec := range recs {
		r.metrics.RecordRecommendation(string(rec.Priority))
	}
	r.metrics.RecordLatency("build_report", time.Since(start).Seconds())

	r.log.Info("report built",
		logger.Int("products", len(products)),
		logger.Int("recommendations", len(recs)),
		logger.Duration("took", time.Since(start)))

	return models.InsightReport{
		GeneratedAt:     time.Now().UTC(),
		HorizonDays:     horizonDays,
		Products:        insights,
		Recommendations: recs,
	}, nil
}

func (r *InsightReporter) productInsight(ctx context.Context, id string, horizonDays int, snaps map[string]models.InventorySnapshot) models.ProductInsight {
	out := models.ProductInsight{ProductID: id}

	series, err := r.store.DemandSeries(ctx, id)
	if err != nil {
		r.log.Warn("demand series unavailable", logger.String("product", id), logger.Error(err))
		return out
	}

	out.Forecast = r.trend.PredictDemand(series, horizonDays)
	r.metrics.RecordEvaluation("trend")

	out.Anomalies = r.anomaly.DetectAnomalies(series)
	r.metrics.RecordEvaluation("anomaly")
	r.metrics.RecordAnomalies(len(out.Anomalies))

	if snap, ok := snaps[id]; ok && snap.Price > 0 {
		currentDemand := 0
		if len(series) > 0 {
			currentDemand = int(math.Round(series[len(series)-1]))
		}
		pr := r.price.OptimizePrice(snap.Price, currentDemand, snap.StockLevel)
		out.Price = &pr
		r.metrics.RecordEvaluation("price")
	}
	return out
}
