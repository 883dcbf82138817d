package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/mattn/go-sqlite3"

	apperrors "memo-whisper/internal/app/errors"
	"memo-whisper/internal/app/model"
)

// RecordingDB implements repository.RecordingDAO on SQLite.
type RecordingDB struct {
	db *sql.DB
}

// NewRecordingDB wraps an existing connection; used by tests that inject a
// mocked *sql.DB.
func NewRecordingDB(db *sql.DB) *RecordingDB {
	return &RecordingDB{db: db}
}

func (rdb *RecordingDB) Close() error {
	return rdb.db.Close()
}

func (rdb *RecordingDB) Insert(rec *model.Recording) error {
	payload, err := json.Marshal(rec.Transcription)
	if err != nil {
		return &apperrors.LedgerError{Op: "encode transcription", Err: err}
	}

	insertSQL := `INSERT INTO recordings
		(id, source_path, source_mtime, source_hash, subdir, trimmed_path, duration_sec, imported_at, transcription_json, diarized, deleted)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`
	_, err = rdb.db.Exec(insertSQL,
		rec.ID, rec.SourcePath, rec.SourceMtime, rec.SourceHash, rec.Subdir,
		rec.TrimmedPath, rec.DurationSec, rec.ImportedAt, string(payload),
		boolToInt(rec.Diarized), boolToInt(rec.Deleted))
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			// A racing importer committed the same content first; treat as
			// already imported.
			return apperrors.ErrDuplicateHash
		}
		return &apperrors.LedgerError{Op: "insert", Err: err}
	}
	return nil
}

func (rdb *RecordingDB) ExistingHashes() (map[string]struct{}, error) {
	rows, err := rdb.db.Query(`SELECT source_hash FROM recordings WHERE deleted = 0`)
	if err != nil {
		return nil, &apperrors.LedgerError{Op: "load hashes", Err: err}
	}
	defer rows.Close()

	hashes := make(map[string]struct{})
	for rows.Next() {
		var h string
		if err := rows.Scan(&h); err != nil {
			return nil, &apperrors.LedgerError{Op: "scan hash", Err: err}
		}
		hashes[h] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, &apperrors.LedgerError{Op: "load hashes", Err: err}
	}
	return hashes, nil
}

func (rdb *RecordingDB) ListActive() ([]model.Recording, error) {
	listSQL := `
		SELECT id, source_path, source_mtime, source_hash, subdir, trimmed_path, duration_sec, imported_at, transcription_json, diarized, deleted
		FROM recordings
		WHERE deleted = 0
		ORDER BY imported_at DESC;`
	rows, err := rdb.db.Query(listSQL)
	if err != nil {
		return nil, &apperrors.LedgerError{Op: "list", Err: err}
	}
	defer rows.Close()

	recordings := make([]model.Recording, 0)
	for rows.Next() {
		rec, err := scanRecording(rows)
		if err != nil {
			return nil, err
		}
		recordings = append(recordings, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, &apperrors.LedgerError{Op: "list", Err: err}
	}
	return recordings, nil
}

func (rdb *RecordingDB) Get(id string) (*model.Recording, error) {
	getSQL := `
		SELECT id, source_path, source_mtime, source_hash, subdir, trimmed_path, duration_sec, imported_at, transcription_json, diarized, deleted
		FROM recordings
		WHERE id = ? AND deleted = 0;`
	row := rdb.db.QueryRow(getSQL, id)
	rec, err := scanRecording(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrRecordingNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (rdb *RecordingDB) TrimmedPath(id string) (string, error) {
	var path string
	err := rdb.db.QueryRow(`SELECT trimmed_path FROM recordings WHERE id = ?`, id).Scan(&path)
	if errors.Is(err, sql.ErrNoRows) {
		return "", apperrors.ErrRecordingNotFound
	}
	if err != nil {
		return "", &apperrors.LedgerError{Op: "trimmed path", Err: err}
	}
	return path, nil
}

func (rdb *RecordingDB) MarkDeleted(id string) error {
	if _, err := rdb.db.Exec(`UPDATE recordings SET deleted = 1 WHERE id = ?`, id); err != nil {
		return &apperrors.LedgerError{Op: "mark deleted", Err: err}
	}
	return nil
}

func (rdb *RecordingDB) SourceFiles() ([]model.SourceFile, error) {
	rows, err := rdb.db.Query(`SELECT source_path, source_mtime FROM recordings`)
	if err != nil {
		return nil, &apperrors.LedgerError{Op: "source files", Err: err}
	}
	defer rows.Close()

	sources := make([]model.SourceFile, 0)
	for rows.Next() {
		var s model.SourceFile
		if err := rows.Scan(&s.Path, &s.Mtime); err != nil {
			return nil, &apperrors.LedgerError{Op: "scan source file", Err: err}
		}
		sources = append(sources, s)
	}
	if err := rows.Err(); err != nil {
		return nil, &apperrors.LedgerError{Op: "source files", Err: err}
	}
	return sources, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecording(row rowScanner) (*model.Recording, error) {
	var rec model.Recording
	var payload string
	var diarized, deleted int
	err := row.Scan(&rec.ID, &rec.SourcePath, &rec.SourceMtime, &rec.SourceHash, &rec.Subdir,
		&rec.TrimmedPath, &rec.DurationSec, &rec.ImportedAt, &payload, &diarized, &deleted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, &apperrors.LedgerError{Op: "scan recording", Err: err}
	}
	if err := json.Unmarshal([]byte(payload), &rec.Transcription); err != nil {
		return nil, &apperrors.LedgerError{Op: "decode transcription", Err: err}
	}
	rec.Diarized = diarized != 0
	rec.Deleted = deleted != 0
	return &rec, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
