package testutil

import (
	"context"
	"sync"

	apperrors "memo-whisper/internal/app/errors"
	"memo-whisper/internal/app/model"
)

// MockTranscriber is a configurable implementation of the api.Transcriber
// interface for testing pipeline scenarios without the external engine.
type MockTranscriber struct {
	mu sync.Mutex

	// DefaultOutput is returned when no map entry or hook applies.
	DefaultOutput *model.WhisperOutput

	// OutputMap and ErrorMap configure per-path behavior (exact path key).
	OutputMap map[string]*model.WhisperOutput
	ErrorMap  map[string]error

	// TranscribeFunc, when set, overrides all other configuration.
	TranscribeFunc func(ctx context.Context, inputFilePath string) (*model.WhisperOutput, error)

	// Call tracking.
	CallCount int
	Calls     []string
}

// NewMockTranscriber creates a MockTranscriber with a small default output.
func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{
		DefaultOutput: WhisperOutputWithWords(
			model.Word{Text: "mock", Start: 0.0, End: 0.4},
			model.Word{Text: "transcription.", Start: 0.5, End: 1.1},
		),
		OutputMap: make(map[string]*model.WhisperOutput),
		ErrorMap:  make(map[string]error),
	}
}

// Transcribe implements the api.Transcriber interface.
func (m *MockTranscriber) Transcribe(ctx context.Context, inputFilePath string) (*model.WhisperOutput, error) {
	m.mu.Lock()
	m.CallCount++
	m.Calls = append(m.Calls, inputFilePath)
	m.mu.Unlock()

	if m.TranscribeFunc != nil {
		return m.TranscribeFunc(ctx, inputFilePath)
	}
	if err, ok := m.ErrorMap[inputFilePath]; ok {
		return nil, &apperrors.TranscriptionError{Path: inputFilePath, Err: err}
	}
	if output, ok := m.OutputMap[inputFilePath]; ok {
		return output, nil
	}
	return m.DefaultOutput, nil
}
