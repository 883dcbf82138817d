// Package retention reclaims space on the source medium by deleting
// original files whose content has been durably imported and has aged past
// the configured threshold. It never touches ledger rows or trimmed files.
package retention

import (
	"os"
	"time"

	"go.uber.org/zap"

	"memo-whisper/internal/app/metrics"
	"memo-whisper/internal/app/repository"
	"memo-whisper/internal/app/util/files"
)

// Outcome classifies what happened to one eligible source file.
type Outcome string

const (
	OutcomeDeleted Outcome = "deleted"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailed  Outcome = "failed"
)

// Skip reasons. Both are expected conditions, not errors.
const (
	ReasonAlreadyRemoved = "source file no longer exists"
	ReasonOutsideMount   = "outside active mount"
)

// FileResult records the sweep's decision for one age-eligible file.
type FileResult struct {
	Path    string
	Outcome Outcome
	Reason  string
	Err     error
}

// SweepReport aggregates one retention sweep.
type SweepReport struct {
	Examined int
	Eligible int
	Deleted  int
	Results  []FileResult
}

// Cleaner runs retention sweeps against the ledger.
type Cleaner struct {
	db     repository.RecordingDAO
	logger *zap.Logger
}

func NewCleaner(db repository.RecordingDAO, logger *zap.Logger) *Cleaner {
	return &Cleaner{db: db, logger: logger}
}

// Sweep deletes the source file of every ledger row (soft-deleted rows
// included) older than retentionDays, gated on the file still existing and,
// when activeMount is non-empty, on the path lying within it. Per-file
// errors are recorded and swallowed; only a failure to read the ledger
// fails the sweep as a whole.
//
// A row whose mtime sits exactly on the cutoff is not yet eligible.
func (c *Cleaner) Sweep(activeMount string, retentionDays int) (*SweepReport, error) {
	sources, err := c.db.SourceFiles()
	if err != nil {
		return nil, err
	}

	cutoff := time.Now().Unix() - int64(retentionDays)*86400
	report := &SweepReport{Examined: len(sources)}

	for _, src := range sources {
		if src.Mtime >= cutoff {
			continue
		}
		report.Eligible++

		if _, err := os.Stat(src.Path); os.IsNotExist(err) {
			report.Results = append(report.Results, FileResult{
				Path: src.Path, Outcome: OutcomeSkipped, Reason: ReasonAlreadyRemoved,
			})
			continue
		}

		if activeMount != "" && !files.PathWithin(activeMount, src.Path) {
			report.Results = append(report.Results, FileResult{
				Path: src.Path, Outcome: OutcomeSkipped, Reason: ReasonOutsideMount,
			})
			c.logger.Debug("retention: skipping file outside active mount",
				zap.String("path", src.Path), zap.String("mount", activeMount))
			continue
		}

		if err := os.Remove(src.Path); err != nil {
			report.Results = append(report.Results, FileResult{
				Path: src.Path, Outcome: OutcomeFailed, Err: err,
			})
			c.logger.Warn("retention: could not delete source file",
				zap.String("path", src.Path), zap.Error(err))
			continue
		}

		report.Deleted++
		report.Results = append(report.Results, FileResult{
			Path: src.Path, Outcome: OutcomeDeleted,
		})
		metrics.SourceFilesDeleted.Inc()
		c.logger.Info("retention: deleted aged source file", zap.String("path", src.Path))
	}

	return report, nil
}
