package api

import (
	"context"

	"memo-whisper/internal/app/model"
)

// Transcriber converts a trimmed audio file into word-level timestamped
// output.
type Transcriber interface {
	Transcribe(ctx context.Context, inputFilePath string) (*model.WhisperOutput, error)
}
