package analytics

import (
	"math"

	"StockPulse/internal/domain/models"
	domsvc "StockPulse/internal/domain/service"
	"StockPulse/internal/services/stats"
)

// Rolling window and z-score thresholds for anomaly scoring.
const (
	anomalyWindow = 7
	zFlag         = 2.0
	zMedium       = 2.5
	zHigh         = 3.0
)

// RollingWindowDetector scores each point against the mean and population
// standard deviation of the 7 points before it.
type RollingWindowDetector struct{}

func NewRollingWindowDetector() *RollingWindowDetector {
	return &RollingWindowDetector{}
}

// DetectAnomalies returns the points whose z-score against their trailing
// window exceeds 2, in ascending index order. Series shorter than the window
// yield no anomalies. A zero-variance window cannot score its point, so that
// index is skipped.
func (d *RollingWindowDetector) DetectAnomalies(series []float64) []models.StockAnomaly {
	if len(series) < anomalyWindow {
		return nil
	}

	var anomalies []models.StockAnomaly
	for i := anomalyWindow; i < len(series); i++ {
		window := series[i-anomalyWindow : i]
		mean := stats.Mean(window)
		sd := stats.StdDev(window)
		if sd == 0 {
			continue
		}

		v := series[i]
		z := math.Abs(v-mean) / sd
		if z <= zFlag {
			continue
		}

		severity := models.SeverityLow
		switch {
		case z > zHigh:
			severity = models.SeverityHigh
		case z > zMedium:
			severity = models.SeverityMedium
		}

		kind := models.AnomalyDrop
		if v > mean {
			kind = models.AnomalySpike
		}

		anomalies = append(anomalies, models.StockAnomaly{
			Index:    i,
			Value:    v,
			Expected: mean,
			Severity: severity,
			Kind:     kind,
		})
	}
	return anomalies
}

var _ domsvc.AnomalyDetector = (*RollingWindowDetector)(nil)
