package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// FilesProcessed counts list files attempted, including failed ones
	FilesProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "apex_extractor_files_processed_total",
		Help: "Number of list files attempted",
	})

	// FileErrors counts per-file read or write failures
	FileErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "apex_extractor_file_errors_total",
		Help: "Number of list files that failed to process",
	})

	// LinesRead counts input lines, including blank and comment lines
	LinesRead = promauto.NewCounter(prometheus.CounterOpts{
		Name: "apex_extractor_lines_read_total",
		Help: "Number of input lines read",
	})

	// LinesSkipped counts blank and comment lines
	LinesSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "apex_extractor_lines_skipped_total",
		Help: "Number of blank or comment lines skipped",
	})

	// DomainsResolved counts tokens the resolver reduced to an apex
	DomainsResolved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "apex_extractor_domains_resolved_total",
		Help: "Number of domain tokens resolved to an apex domain",
	})

	// UniqueDomains counts apex domains written across all output files
	UniqueDomains = promauto.NewCounter(prometheus.CounterOpts{
		Name: "apex_extractor_unique_domains_total",
		Help: "Number of unique apex domains written",
	})
)

// Serve exposes Prometheus metrics on addr. It blocks.
func Serve(addr string) error {
	http.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(addr, nil)
}
