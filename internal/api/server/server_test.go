package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"memo-whisper/internal/app/config"
	"memo-whisper/internal/app/model"
	"memo-whisper/internal/app/testutil"
)

func newTestServer(t *testing.T, dao *testutil.MockRecordingDAO) http.Handler {
	t.Helper()
	cfg := &config.Config{Server: config.ServerConfig{Host: "127.0.0.1", Port: "0"}}
	return New(cfg, dao, zap.NewNop()).Router()
}

func seedRecordings(t *testing.T, dao *testutil.MockRecordingDAO) {
	t.Helper()
	require.NoError(t, dao.Insert(&model.Recording{
		ID: "rec-older", SourceHash: "h1", ImportedAt: 100, DurationSec: 4.2, Subdir: "memos",
		Transcription: model.TranscriptionPayload{
			Sentences: []model.Sentence{{Start: 0.1, End: 2.0, Text: "Hello world."}},
		},
	}))
	require.NoError(t, dao.Insert(&model.Recording{
		ID: "rec-newer", SourceHash: "h2", ImportedAt: 200, DurationSec: 8.0, Subdir: "memos",
	}))
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestServer(t, testutil.NewMockRecordingDAO())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestListRecordings(t *testing.T) {
	dao := testutil.NewMockRecordingDAO()
	seedRecordings(t, dao)
	router := newTestServer(t, dao)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/recordings", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Recordings []struct {
			ID       string `json:"id"`
			AudioURL string `json:"audioUrl"`
		} `json:"recordings"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Recordings, 2)
	assert.Equal(t, "/audio/"+body.Recordings[0].ID, body.Recordings[0].AudioURL)
}

func TestGetRecording(t *testing.T) {
	dao := testutil.NewMockRecordingDAO()
	seedRecordings(t, dao)
	router := newTestServer(t, dao)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/recordings/rec-older", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		ID        string `json:"id"`
		Subdir    string `json:"subdir"`
		Sentences []struct {
			Start float64 `json:"start"`
			End   float64 `json:"end"`
			Text  string  `json:"text"`
		} `json:"sentences"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "rec-older", body.ID)
	assert.Equal(t, "memos", body.Subdir)
	require.Len(t, body.Sentences, 1)
	assert.Equal(t, "Hello world.", body.Sentences[0].Text)
}

func TestGetRecordingNotFound(t *testing.T) {
	router := newTestServer(t, testutil.NewMockRecordingDAO())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/recordings/no-such-id", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRecordingEmptySentencesIsArrayNotNull(t *testing.T) {
	dao := testutil.NewMockRecordingDAO()
	seedRecordings(t, dao)
	router := newTestServer(t, dao)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/recordings/rec-newer", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"sentences":[]`)
}

func TestDeleteRecordingIsIdempotent(t *testing.T) {
	dao := testutil.NewMockRecordingDAO()
	seedRecordings(t, dao)
	router := newTestServer(t, dao)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/recordings/rec-older/delete", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	// Deleting an id that never existed still reports ok.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/recordings/ghost/delete", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// The deleted recording no longer shows up on the read path.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/recordings/rec-older", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAudioStreamsTrimmedFile(t *testing.T) {
	dao := testutil.NewMockRecordingDAO()
	trimmed := filepath.Join(t.TempDir(), "rec-1.wav")
	require.NoError(t, os.WriteFile(trimmed, []byte("RIFF fake wav bytes"), 0o644))
	require.NoError(t, dao.Insert(&model.Recording{
		ID: "rec-1", SourceHash: "h1", TrimmedPath: trimmed,
	}))
	router := newTestServer(t, dao)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/audio/rec-1", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "audio/wav", w.Header().Get("Content-Type"))
	assert.Equal(t, "RIFF fake wav bytes", w.Body.String())
}

func TestAudioNotFound(t *testing.T) {
	router := newTestServer(t, testutil.NewMockRecordingDAO())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/audio/no-such-id", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAudioServesSoftDeletedRecording(t *testing.T) {
	dao := testutil.NewMockRecordingDAO()
	trimmed := filepath.Join(t.TempDir(), "rec-1.wav")
	require.NoError(t, os.WriteFile(trimmed, []byte("bytes"), 0o644))
	require.NoError(t, dao.Insert(&model.Recording{
		ID: "rec-1", SourceHash: "h1", TrimmedPath: trimmed,
	}))
	require.NoError(t, dao.MarkDeleted("rec-1"))
	router := newTestServer(t, dao)

	// Soft delete hides the row from listings but keeps playback working.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/audio/rec-1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
