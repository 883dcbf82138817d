package testutil

import (
	"context"
	"os"
	"sync"

	"memo-whisper/internal/app/audio"
)

// MockTrimmer is an audio.Trimmer that copies the source bytes into the
// output file instead of invoking ffmpeg, so downstream stages can key
// their behavior off the content.
type MockTrimmer struct {
	mu sync.Mutex

	// Duration is reported for every successful trim.
	Duration float64

	// TrimFunc, when set, overrides the default copy behavior.
	TrimFunc func(ctx context.Context, inPath, outPath string, opt audio.TrimOptions) (float64, error)

	CallCount int
}

func NewMockTrimmer() *MockTrimmer {
	return &MockTrimmer{Duration: 1.5}
}

func (m *MockTrimmer) TrimSilence(ctx context.Context, inPath, outPath string, opt audio.TrimOptions) (float64, error) {
	m.mu.Lock()
	m.CallCount++
	m.mu.Unlock()

	if m.TrimFunc != nil {
		return m.TrimFunc(ctx, inPath, outPath, opt)
	}

	data, err := os.ReadFile(inPath)
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return 0, err
	}
	return m.Duration, nil
}
