package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"memo-whisper/internal/app/model"
)

// WhisperOutputWithWords builds a single-segment engine output from
// explicitly timestamped words.
func WhisperOutputWithWords(words ...model.Word) *model.WhisperOutput {
	seg := model.WhisperSegment{}
	if len(words) > 0 {
		seg.Start = words[0].Start
		seg.End = words[len(words)-1].End
	}
	for _, w := range words {
		start, end := w.Start, w.End
		seg.Words = append(seg.Words, model.WhisperWord{
			Word:  w.Text,
			Start: &start,
			End:   &end,
		})
	}
	return &model.WhisperOutput{Segments: []model.WhisperSegment{seg}}
}

// WriteWav writes content as a fake .wav file under dir and returns its
// path. The pipeline under test never decodes audio, so arbitrary bytes
// suffice.
func WriteWav(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}
