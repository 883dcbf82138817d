package model

// WhisperOutput mirrors the word-timestamp JSON emitted by the whisper.cpp
// binary when run with -oj.
type WhisperOutput struct {
	Segments []WhisperSegment `json:"segments"`
}

// WhisperSegment is one recognized segment with optional per-word timing.
type WhisperSegment struct {
	Start float64       `json:"start"`
	End   float64       `json:"end"`
	Text  string        `json:"text,omitempty"`
	Words []WhisperWord `json:"words"`
}

// WhisperWord is a single word. Start/End are pointers because the engine
// may omit per-word timestamps; such words inherit their segment boundaries.
type WhisperWord struct {
	Word  string   `json:"word"`
	Start *float64 `json:"start,omitempty"`
	End   *float64 `json:"end,omitempty"`
}

// Word is a flattened, timestamped word ready for sentence segmentation.
type Word struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Sentence is a sentence-level span derived from word timestamps.
type Sentence struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// TranscriptionPayload is the structured transcription column: the raw
// engine output plus the derived sentence list.
type TranscriptionPayload struct {
	Words     WhisperOutput `json:"words_json"`
	Sentences []Sentence    `json:"sentences"`
}
