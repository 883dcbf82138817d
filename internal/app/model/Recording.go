package model

// Recording is one imported recording, the unit of durable state in the
// ledger. Rows are inserted exactly once after a full successful pipeline
// run and are never updated afterwards except for the soft-delete flag.
type Recording struct {
	ID            string
	SourcePath    string
	SourceMtime   int64
	SourceHash    string
	Subdir        string
	TrimmedPath   string
	DurationSec   float64
	ImportedAt    int64
	Transcription TranscriptionPayload
	Diarized      bool
	Deleted       bool
}

// SourceFile is the provenance slice of a ledger row used by the retention
// sweep. It covers all rows, soft-deleted ones included.
type SourceFile struct {
	Path  string
	Mtime int64
}
