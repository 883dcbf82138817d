package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RecordingsImported counts ledger rows persisted by the pipeline.
	RecordingsImported = promauto.NewCounter(prometheus.CounterOpts{
		Name: "a2t_recordings_imported_total",
		Help: "Recordings successfully imported into the ledger.",
	})

	// RecordingsSkipped counts discovered files filtered by the dedup index.
	RecordingsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "a2t_recordings_skipped_total",
		Help: "Discovered files skipped as already imported.",
	})

	// ImportFailures counts per-file pipeline failures by stage.
	ImportFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "a2t_import_failures_total",
		Help: "Per-file import failures by pipeline stage.",
	}, []string{"stage"})

	// SourceFilesDeleted counts files reclaimed by the retention sweep.
	SourceFilesDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "a2t_source_files_deleted_total",
		Help: "Source files deleted by the retention sweep.",
	})
)

// Handler exposes the default prometheus registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
