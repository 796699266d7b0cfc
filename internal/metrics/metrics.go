package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StandardEventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eventstream_standard_events_published_total",
		Help: "Total number of standardized events published, labelled by topic.",
	}, []string{"topic"})

	LegacyEventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eventstream_legacy_events_published_total",
		Help: "Total number of legacy-format events published, labelled by topic.",
	}, []string{"topic"})

	EmitDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "eventstream_emit_duration_ms",
		Help:    "End-to-end emission latency in milliseconds.",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25},
	})

	LedgerSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "eventstream_ledger_records",
		Help: "Current number of records in the in-memory event ledger.",
	})

	EmitRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "eventstream_emit_rejected_total",
		Help: "Total number of gateway emit requests rejected, labelled by reason.",
	}, []string{"reason"})
)
