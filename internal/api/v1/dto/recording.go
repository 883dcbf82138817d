package dto

import (
	"memo-whisper/internal/app/model"
)

// RecordingSummary is one row of the listing view.
type RecordingSummary struct {
	ID          string  `json:"id"`
	ImportedAt  int64   `json:"importedAt"`
	DurationSec float64 `json:"durationSec"`
	AudioURL    string  `json:"audioUrl"`
}

// RecordingDetail is the playback view: metadata plus the sentence list.
type RecordingDetail struct {
	ID          string     `json:"id"`
	ImportedAt  int64      `json:"importedAt"`
	DurationSec float64    `json:"durationSec"`
	AudioURL    string     `json:"audioUrl"`
	Subdir      string     `json:"subdir"`
	Sentences   []Sentence `json:"sentences"`
}

type Sentence struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

func NewRecordingSummary(rec model.Recording) RecordingSummary {
	return RecordingSummary{
		ID:          rec.ID,
		ImportedAt:  rec.ImportedAt,
		DurationSec: rec.DurationSec,
		AudioURL:    "/audio/" + rec.ID,
	}
}

func NewRecordingDetail(rec *model.Recording) RecordingDetail {
	sentences := make([]Sentence, 0, len(rec.Transcription.Sentences))
	for _, s := range rec.Transcription.Sentences {
		sentences = append(sentences, Sentence{Start: s.Start, End: s.End, Text: s.Text})
	}
	return RecordingDetail{
		ID:          rec.ID,
		ImportedAt:  rec.ImportedAt,
		DurationSec: rec.DurationSec,
		AudioURL:    "/audio/" + rec.ID,
		Subdir:      rec.Subdir,
		Sentences:   sentences,
	}
}
