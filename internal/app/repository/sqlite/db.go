package sqlite

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	apperrors "memo-whisper/internal/app/errors"
)

// The uniqueness constraint on source_hash only covers active rows, so
// re-importing content whose earlier row was soft-deleted is allowed.
const schema = `
CREATE TABLE IF NOT EXISTS recordings (
  id TEXT PRIMARY KEY,
  source_path TEXT NOT NULL,
  source_mtime INTEGER NOT NULL,
  source_hash TEXT NOT NULL,
  subdir TEXT NOT NULL,
  trimmed_path TEXT NOT NULL,
  duration_sec REAL NOT NULL,
  imported_at INTEGER NOT NULL,
  transcription_json TEXT NOT NULL,
  diarized INTEGER NOT NULL DEFAULT 0,
  deleted INTEGER NOT NULL DEFAULT 0
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_recordings_hash ON recordings(source_hash) WHERE deleted = 0;
CREATE INDEX IF NOT EXISTS idx_recordings_mtime ON recordings(source_mtime);
`

// Open opens (creating if necessary) the ledger database at dbFilePath and
// bootstraps the schema. The connection is capped at a single open conn:
// the pipeline is designed for one writer per ledger.
func Open(dbFilePath string) (*RecordingDB, error) {
	if dir := filepath.Dir(dbFilePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, &apperrors.LedgerError{Op: "open", Err: err}
		}
	}

	db, err := sql.Open("sqlite3", dbFilePath)
	if err != nil {
		return nil, &apperrors.LedgerError{Op: "open", Err: err}
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, &apperrors.LedgerError{Op: "init schema", Err: err}
	}

	return &RecordingDB{db: db}, nil
}
