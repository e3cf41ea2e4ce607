package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CharactersListedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "charexport_characters_listed_total",
		Help: "The total number of character summaries returned by the list endpoint",
	})
	DetailsFetchedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "charexport_details_fetched_total",
		Help: "The total number of character detail records fetched successfully",
	})
	DetailsSkippedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "charexport_details_skipped_total",
		Help: "The total number of characters skipped due to per-item failures",
	})
	ExportErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "charexport_export_errors_total",
		Help: "The total number of errors occurred while writing the output file",
	})
	DetailFetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "charexport_detail_fetch_duration_seconds",
		Help:    "Latency of per-character detail requests",
		Buckets: prometheus.DefBuckets,
	})
)
