// Package importer sequences the ingestion pipeline: discovery, dedup,
// trim, transcribe, segment, persist. Files are processed one at a time in
// a fixed order; a failure aborts only the current file.
package importer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"memo-whisper/internal/app/api"
	"memo-whisper/internal/app/audio"
	"memo-whisper/internal/app/config"
	apperrors "memo-whisper/internal/app/errors"
	"memo-whisper/internal/app/metrics"
	"memo-whisper/internal/app/model"
	"memo-whisper/internal/app/progress"
	"memo-whisper/internal/app/repository"
	"memo-whisper/internal/app/segment"
	"memo-whisper/internal/app/util/files"
	"memo-whisper/internal/app/utils"
)

type Importer struct {
	cfg         *config.Config
	db          repository.RecordingDAO
	trimmer     audio.Trimmer
	transcriber api.Transcriber
	logger      *zap.Logger
	progressCfg progress.Config
}

func New(cfg *config.Config, db repository.RecordingDAO, trimmer audio.Trimmer, transcriber api.Transcriber, logger *zap.Logger) *Importer {
	return &Importer{
		cfg:         cfg,
		db:          db,
		trimmer:     trimmer,
		transcriber: transcriber,
		logger:      logger,
	}
}

func (imp *Importer) Close() error {
	return imp.db.Close()
}

// SetProgress enables progress-bar rendering for interactive runs.
func (imp *Importer) SetProgress(cfg progress.Config) {
	imp.progressCfg = cfg
}

// RunReport summarizes one import run.
type RunReport struct {
	Discovered int
	Imported   int
	Skipped    int
	Failed     int
	Failures   []FileFailure
}

type FileFailure struct {
	Path string
	Err  error
}

type outcome int

const (
	outcomeImported outcome = iota
	outcomeSkipped
	outcomeFailed
)

// Run imports all new recordings found under <mount>/<subdir>. The dedup
// index is loaded once at the start; rows committed during the run become
// visible to it immediately. Per-file failures are collected in the report;
// the returned error is non-nil only for run-fatal conditions (ledger
// unavailable, context cancelled).
func (imp *Importer) Run(ctx context.Context, mount string) (*RunReport, error) {
	srcRoot := filepath.Join(mount, strings.TrimPrefix(imp.cfg.Subdir, "/"))
	wavDir := filepath.Join(imp.cfg.OutputDir, "wav")
	if err := files.CheckAndCreateDirectory(wavDir); err != nil {
		return nil, err
	}

	existing, err := imp.db.ExistingHashes()
	if err != nil {
		return nil, err
	}

	candidates, err := files.FindWavFiles(srcRoot)
	if err != nil {
		return nil, err
	}

	imp.logger.Info("starting import run",
		zap.String("mount", mount),
		zap.Int("candidates", len(candidates)),
		zap.Int("known_hashes", len(existing)))

	report := &RunReport{Discovered: len(candidates)}
	manager := progress.NewManager(imp.progressCfg)
	bar := manager.CreateBar(len(candidates), "importing")

	for _, path := range candidates {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		result, err := imp.importFile(ctx, path, existing, wavDir)
		bar.Increment()

		switch result {
		case outcomeImported:
			report.Imported++
			metrics.RecordingsImported.Inc()
		case outcomeSkipped:
			report.Skipped++
			metrics.RecordingsSkipped.Inc()
		case outcomeFailed:
			var ledgerErr *apperrors.LedgerError
			if errors.As(err, &ledgerErr) {
				// The ledger itself is unhealthy; no point continuing.
				return report, err
			}
			report.Failed++
			report.Failures = append(report.Failures, FileFailure{Path: path, Err: err})
			metrics.ImportFailures.WithLabelValues(failureStage(err)).Inc()
			imp.logger.Error("import failed", zap.String("path", path), zap.Error(err))
		}
	}

	manager.Wait()
	imp.logger.Info("import run finished",
		zap.Int("imported", report.Imported),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", report.Failed))
	return report, nil
}

func (imp *Importer) importFile(ctx context.Context, path string, existing map[string]struct{}, wavDir string) (outcome, error) {
	st, err := os.Stat(path)
	if err != nil {
		return outcomeFailed, &apperrors.HashError{Path: path, Err: err}
	}

	hash, err := utils.FileFingerprint(path)
	if err != nil {
		return outcomeFailed, err
	}
	if _, ok := existing[hash]; ok {
		imp.logger.Debug("already imported, skipping", zap.String("path", path))
		return outcomeSkipped, nil
	}

	id, err := uuid.NewV7()
	if err != nil {
		return outcomeFailed, err
	}
	rid := id.String()
	trimmedPath := filepath.Join(wavDir, rid+".wav")

	trimCtx, cancel := context.WithTimeout(ctx, time.Duration(imp.cfg.Timeouts.TrimSec)*time.Second)
	duration, err := imp.trimmer.TrimSilence(trimCtx, path, trimmedPath, audio.TrimOptions{
		ThresholdDB:     imp.cfg.Trim.ThresholdDB,
		MinSilenceLenMs: imp.cfg.Trim.MinSilenceLenMs,
		KeepSilenceMs:   imp.cfg.Trim.KeepSilenceMs,
	})
	cancel()
	if err != nil {
		imp.discardArtifact(trimmedPath)
		return outcomeFailed, err
	}

	transcribeCtx, cancel := context.WithTimeout(ctx, time.Duration(imp.cfg.Timeouts.TranscribeSec)*time.Second)
	output, err := imp.transcriber.Transcribe(transcribeCtx, trimmedPath)
	cancel()
	if err != nil {
		imp.discardArtifact(trimmedPath)
		return outcomeFailed, err
	}

	words := segment.WordsFromOutput(output)
	sentences := segment.Sentences(words)

	rec := &model.Recording{
		ID:          rid,
		SourcePath:  path,
		SourceMtime: st.ModTime().Unix(),
		SourceHash:  hash,
		Subdir:      imp.cfg.Subdir,
		TrimmedPath: trimmedPath,
		DurationSec: duration,
		ImportedAt:  time.Now().Unix(),
		Transcription: model.TranscriptionPayload{
			Words:     *output,
			Sentences: sentences,
		},
	}

	if err := imp.db.Insert(rec); err != nil {
		imp.discardArtifact(trimmedPath)
		if errors.Is(err, apperrors.ErrDuplicateHash) {
			// A concurrent run won the race; the content is durable either
			// way.
			imp.logger.Info("duplicate content committed concurrently, skipping",
				zap.String("path", path), zap.String("hash", hash))
			return outcomeSkipped, nil
		}
		return outcomeFailed, err
	}

	// Committed rows are immediately visible to dedup within this run.
	existing[hash] = struct{}{}

	imp.logger.Info("imported recording",
		zap.String("id", rid),
		zap.String("path", path),
		zap.Float64("duration_sec", duration),
		zap.Int("sentences", len(sentences)))
	return outcomeImported, nil
}

// discardArtifact removes a trimmed file produced before a later-stage
// failure so aborted pipelines leave no stray output behind.
func (imp *Importer) discardArtifact(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		imp.logger.Warn("could not remove orphaned trimmed file",
			zap.String("path", path), zap.Error(err))
	}
}

func failureStage(err error) string {
	var hashErr *apperrors.HashError
	var audioErr *apperrors.AudioProcessingError
	var transcriptionErr *apperrors.TranscriptionError
	switch {
	case errors.As(err, &hashErr):
		return "hash"
	case errors.As(err, &audioErr):
		return "trim"
	case errors.As(err, &transcriptionErr):
		return "transcribe"
	default:
		return "persist"
	}
}
