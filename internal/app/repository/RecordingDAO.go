package repository

import (
	"memo-whisper/internal/app/model"
)

// RecordingDAO is the ledger access contract. It is the sole source of
// truth for dedup and for the viewer.
type RecordingDAO interface {
	Close() error

	// Insert persists one recording in a single transactional write. A
	// source_hash collision among active rows returns
	// errors.ErrDuplicateHash.
	Insert(rec *model.Recording) error

	// ExistingHashes returns the source_hash set of all non-deleted rows.
	ExistingHashes() (map[string]struct{}, error)

	// ListActive returns non-deleted recordings ordered by imported_at
	// descending.
	ListActive() ([]model.Recording, error)

	// Get returns one non-deleted recording with its decoded transcription
	// payload, or errors.ErrRecordingNotFound.
	Get(id string) (*model.Recording, error)

	// TrimmedPath returns the trimmed-audio path for id, soft-deleted rows
	// included.
	TrimmedPath(id string) (string, error)

	// MarkDeleted sets the soft-delete flag. Idempotent.
	MarkDeleted(id string) error

	// SourceFiles returns provenance of every row, soft-deleted ones
	// included, for the retention sweep.
	SourceFiles() ([]model.SourceFile, error)
}
