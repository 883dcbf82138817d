package testutil

import (
	"sync"

	apperrors "memo-whisper/internal/app/errors"
	"memo-whisper/internal/app/model"
)

// MockRecordingDAO is an in-memory repository.RecordingDAO. It enforces the
// same uniqueness rule as the real ledger: one source_hash among active
// rows.
type MockRecordingDAO struct {
	mu         sync.Mutex
	Recordings []model.Recording

	// InsertErr, when set, is returned by every Insert.
	InsertErr error
}

func NewMockRecordingDAO() *MockRecordingDAO {
	return &MockRecordingDAO{}
}

func (m *MockRecordingDAO) Close() error {
	return nil
}

func (m *MockRecordingDAO) Insert(rec *model.Recording) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.InsertErr != nil {
		return m.InsertErr
	}
	for _, existing := range m.Recordings {
		if !existing.Deleted && existing.SourceHash == rec.SourceHash {
			return apperrors.ErrDuplicateHash
		}
	}
	m.Recordings = append(m.Recordings, *rec)
	return nil
}

func (m *MockRecordingDAO) ExistingHashes() (map[string]struct{}, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	hashes := make(map[string]struct{})
	for _, rec := range m.Recordings {
		if !rec.Deleted {
			hashes[rec.SourceHash] = struct{}{}
		}
	}
	return hashes, nil
}

func (m *MockRecordingDAO) ListActive() ([]model.Recording, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	active := make([]model.Recording, 0)
	for _, rec := range m.Recordings {
		if !rec.Deleted {
			active = append(active, rec)
		}
	}
	return active, nil
}

func (m *MockRecordingDAO) Get(id string) (*model.Recording, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, rec := range m.Recordings {
		if rec.ID == id && !rec.Deleted {
			r := rec
			return &r, nil
		}
	}
	return nil, apperrors.ErrRecordingNotFound
}

func (m *MockRecordingDAO) TrimmedPath(id string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, rec := range m.Recordings {
		if rec.ID == id {
			return rec.TrimmedPath, nil
		}
	}
	return "", apperrors.ErrRecordingNotFound
}

func (m *MockRecordingDAO) MarkDeleted(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.Recordings {
		if m.Recordings[i].ID == id {
			m.Recordings[i].Deleted = true
		}
	}
	return nil
}

func (m *MockRecordingDAO) SourceFiles() ([]model.SourceFile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sources := make([]model.SourceFile, 0, len(m.Recordings))
	for _, rec := range m.Recordings {
		sources = append(sources, model.SourceFile{Path: rec.SourcePath, Mtime: rec.SourceMtime})
	}
	return sources, nil
}
