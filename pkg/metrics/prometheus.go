package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	articlesScored *prometheus.CounterVec
	articlesStored *prometheus.CounterVec
	errorsTotal    *prometheus.CounterVec
	feedSize       prometheus.Histogram
	trendingSize   prometheus.Gauge
	latency        *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		articlesScored: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "newsrank_articles_scored_total",
				Help: "Total number of articles scored",
			},
			[]string{"source"},
		),
		articlesStored: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "newsrank_articles_stored_total",
				Help: "Total number of articles persisted",
			},
			[]string{"source"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "newsrank_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		feedSize: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "newsrank_feed_size",
				Help:    "Number of articles returned per feed request",
				Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 200},
			},
		),
		trendingSize: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "newsrank_trending_tickers",
				Help: "Number of tickers in the current trending snapshot",
			},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "newsrank_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordArticleScored records a scored article by source.
func (r *Recorder) RecordArticleScored(source string) {
	r.articlesScored.WithLabelValues(source).Inc()
}

// RecordArticleStored records a persisted article by source.
func (r *Recorder) RecordArticleStored(source string) {
	r.articlesStored.WithLabelValues(source).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordFeedSize records the article count of a served feed.
func (r *Recorder) RecordFeedSize(n int) {
	r.feedSize.Observe(float64(n))
}

// RecordTrendingSize records the size of the current trending snapshot.
func (r *Recorder) RecordTrendingSize(n int) {
	r.trendingSize.Set(float64(n))
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
