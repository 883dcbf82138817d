package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memo-whisper/internal/app/model"
)

func word(text string, start, end float64) model.Word {
	return model.Word{Text: text, Start: start, End: end}
}

func TestSentences(t *testing.T) {
	tests := []struct {
		name  string
		words []model.Word
		want  []model.Sentence
	}{
		{
			name: "two_terminated_sentences",
			words: []model.Word{
				word("Hello", 0.0, 0.5),
				word("world.", 0.6, 1.0),
				word("How", 1.5, 1.8),
				word("are", 1.9, 2.1),
				word("you?", 2.2, 2.6),
			},
			want: []model.Sentence{
				{Start: 0.0, End: 1.0, Text: "Hello world."},
				{Start: 1.5, End: 2.6, Text: "How are you?"},
			},
		},
		{
			name: "trailing_words_without_terminator",
			words: []model.Word{
				word("just", 0.0, 0.4),
				word("talking", 0.5, 1.0),
			},
			want: []model.Sentence{
				{Start: 0.0, End: 1.0, Text: "just talking"},
			},
		},
		{
			name:  "no_words_no_sentences",
			words: nil,
			want:  []model.Sentence{},
		},
		{
			name: "exclamation_and_question_terminate",
			words: []model.Word{
				word("Stop!", 0.0, 0.3),
				word("Why?", 0.4, 0.8),
				word("Because.", 0.9, 1.4),
			},
			want: []model.Sentence{
				{Start: 0.0, End: 0.3, Text: "Stop!"},
				{Start: 0.4, End: 0.8, Text: "Why?"},
				{Start: 0.9, End: 1.4, Text: "Because."},
			},
		},
		{
			name: "mixed_tail_after_terminated_sentence",
			words: []model.Word{
				word("Done.", 0.0, 0.5),
				word("and", 0.6, 0.8),
				word("then", 0.9, 1.2),
			},
			want: []model.Sentence{
				{Start: 0.0, End: 0.5, Text: "Done."},
				{Start: 0.6, End: 1.2, Text: "and then"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sentences(tt.words)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSentencesNeverReturnsNil(t *testing.T) {
	assert.NotNil(t, Sentences(nil))
}

func TestWordsFromOutput(t *testing.T) {
	start1, end1 := 0.2, 0.6

	output := &model.WhisperOutput{
		Segments: []model.WhisperSegment{
			{
				Start: 0.0,
				End:   2.0,
				Words: []model.WhisperWord{
					{Word: " Hello", Start: &start1, End: &end1},
					{Word: "there "}, // no per-word timing
				},
			},
		},
	}

	words := WordsFromOutput(output)
	require.Len(t, words, 2)

	assert.Equal(t, model.Word{Text: "Hello", Start: 0.2, End: 0.6}, words[0])
	// Missing timestamps inherit the segment's boundaries.
	assert.Equal(t, model.Word{Text: "there", Start: 0.0, End: 2.0}, words[1])
}

func TestWordsFromOutputNilAndEmpty(t *testing.T) {
	assert.Nil(t, WordsFromOutput(nil))
	assert.Empty(t, WordsFromOutput(&model.WhisperOutput{}))
}
