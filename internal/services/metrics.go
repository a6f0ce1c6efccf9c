package services

import (
	"github.com/prometheus/client_golang/prometheus"
)

// IngestMetrics tracks ingest pipeline activity for the /metrics endpoint.
type IngestMetrics struct {
	FilesProcessed *prometheus.CounterVec
	ParseFailures  *prometheus.CounterVec
	LoadsIngested  prometheus.Counter
	QuartersParsed prometheus.Counter
	IngestDuration prometheus.Histogram
}

// NewIngestMetrics creates and registers the ingest metrics with the given
// registerer. Pass prometheus.DefaultRegisterer in production and a fresh
// prometheus.NewRegistry() in tests.
func NewIngestMetrics(reg prometheus.Registerer) *IngestMetrics {
	m := &IngestMetrics{
		FilesProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "aimdash",
			Subsystem: "ingest",
			Name:      "files_processed_total",
			Help:      "Number of input files processed, by kind.",
		}, []string{"kind"}),
		ParseFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "aimdash",
			Subsystem: "ingest",
			Name:      "parse_failures_total",
			Help:      "Number of input files that failed to parse, by kind.",
		}, []string{"kind"}),
		LoadsIngested: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "aimdash",
			Subsystem: "ingest",
			Name:      "loads_ingested_total",
			Help:      "Number of load records ingested.",
		}),
		QuartersParsed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "aimdash",
			Subsystem: "ingest",
			Name:      "quarters_parsed_total",
			Help:      "Number of quarterly statements parsed.",
		}),
		IngestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "aimdash",
			Subsystem: "ingest",
			Name:      "duration_seconds",
			Help:      "Wall-clock duration of a full ingest run.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		m.FilesProcessed,
		m.ParseFailures,
		m.LoadsIngested,
		m.QuartersParsed,
		m.IngestDuration,
	)

	return m
}
