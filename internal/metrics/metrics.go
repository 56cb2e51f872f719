// Package metrics provides the centralized Prometheus metrics registry for
// the analysis and settlement engine.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	OpportunitiesParsedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gridline",
		Name:      "opportunities_parsed_total",
		Help:      "Total number of betting opportunities extracted from odds payloads",
	})
	OpportunitiesScoredTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gridline",
		Name:      "opportunities_scored_total",
		Help:      "Total number of opportunities that passed validation and were scored",
	})
	OpportunitiesSkippedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gridline",
		Name:      "opportunities_skipped_total",
		Help:      "Total number of opportunities rejected by validation, by reason",
	}, []string{"reason"})
	ScoringPanicsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gridline",
		Name:      "scoring_panics_total",
		Help:      "Total number of opportunities dropped after a recovered scoring panic",
	})
	BetsSettledTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gridline",
		Name:      "bets_settled_total",
		Help:      "Total number of bets settled against game results",
	})
	SettlementPushesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gridline",
		Name:      "settlement_pushes_total",
		Help:      "Total number of bets settled as a push",
	})
	SettlementErrorsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "gridline",
		Name:      "settlement_errors_total",
		Help:      "Total number of bets that could not be settled",
	})
)

// Histogram metrics
var (
	ExpectedValuePercent = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "gridline",
		Name:      "expected_value_percent",
		Help:      "Distribution of expected value percentages across scored opportunities",
		Buckets:   []float64{-50, -25, -10, -5, 0, 5, 10, 25, 50, 100},
	})
	AnalysisDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "gridline",
		Name:      "analysis_duration_seconds",
		Help:      "Duration of a full payload analysis in seconds",
		Buckets:   prometheus.DefBuckets,
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(OpportunitiesParsedTotal)
		registry.MustRegister(OpportunitiesScoredTotal)
		registry.MustRegister(OpportunitiesSkippedTotal)
		registry.MustRegister(ScoringPanicsTotal)
		registry.MustRegister(BetsSettledTotal)
		registry.MustRegister(SettlementPushesTotal)
		registry.MustRegister(SettlementErrorsTotal)

		registry.MustRegister(ExpectedValuePercent)
		registry.MustRegister(AnalysisDuration)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordOpportunitiesParsed records opportunities extracted from a payload.
func RecordOpportunitiesParsed(count int) {
	OpportunitiesParsedTotal.Add(float64(count))
}

// RecordOpportunityScored records a scored opportunity and its EV.
func RecordOpportunityScored(evPercent float64) {
	OpportunitiesScoredTotal.Inc()
	ExpectedValuePercent.Observe(evPercent)
}

// RecordOpportunitySkipped records a validation rejection.
func RecordOpportunitySkipped(reason string) {
	OpportunitiesSkippedTotal.WithLabelValues(reason).Inc()
}

// RecordScoringPanic records a recovered per-opportunity panic.
func RecordScoringPanic() {
	ScoringPanicsTotal.Inc()
}

// RecordBetSettled records a settled bet, flagging pushes separately.
func RecordBetSettled(push bool) {
	BetsSettledTotal.Inc()
	if push {
		SettlementPushesTotal.Inc()
	}
}

// RecordSettlementError records a bet that could not be settled.
func RecordSettlementError() {
	SettlementErrorsTotal.Inc()
}

// RecordAnalysisDuration records how long a full analysis took.
func RecordAnalysisDuration(durationSeconds float64) {
	AnalysisDuration.Observe(durationSeconds)
}
