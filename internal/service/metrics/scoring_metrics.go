package metrics

import (
    "sync"

    "github.com/prometheus/client_golang/prometheus"
)

var (
    once sync.Once

    ScoringLatency = prometheus.NewHistogramVec(
        prometheus.HistogramOpts{
            Namespace: "newsrank",
            Subsystem: "scoring",
            Name:      "latency_seconds",
            Help:      "Latency of scoring pipeline stages",
            Buckets:   prometheus.DefBuckets,
        },
        []string{"stage"},
    )

    ScoringErrors = prometheus.NewCounterVec(
        prometheus.CounterOpts{
            Namespace: "newsrank",
            Subsystem: "scoring",
            Name:      "errors_total",
            Help:      "Errors by scoring pipeline stage",
        },
        []string{"stage"},
    )
)

func Register() {
    once.Do(func() {
        prometheus.MustRegister(ScoringLatency, ScoringErrors)
    })
}
