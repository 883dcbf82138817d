// Package segment derives sentence-level time spans from word-level
// timestamped transcription output. Both transforms are pure and total:
// malformed or empty input yields an empty result, never an error.
package segment

import (
	"strings"

	"github.com/samber/lo"

	"memo-whisper/internal/app/model"
)

// WordsFromOutput flattens the engine's segments into an ordered word list.
// Words missing explicit timestamps inherit their segment's boundaries.
func WordsFromOutput(output *model.WhisperOutput) []model.Word {
	if output == nil {
		return nil
	}
	var words []model.Word
	for _, seg := range output.Segments {
		for _, w := range seg.Words {
			word := model.Word{
				Text:  strings.TrimSpace(w.Word),
				Start: seg.Start,
				End:   seg.End,
			}
			if w.Start != nil {
				word.Start = *w.Start
			}
			if w.End != nil {
				word.End = *w.End
			}
			words = append(words, word)
		}
	}
	return words
}

// Sentences groups consecutive words into sentences. A sentence closes when
// a word ends with terminal punctuation; trailing words without one still
// form a final sentence.
func Sentences(words []model.Word) []model.Sentence {
	sentences := make([]model.Sentence, 0)
	var buf []model.Word
	for _, w := range words {
		buf = append(buf, w)
		if endsSentence(w.Text) {
			sentences = append(sentences, closeSentence(buf))
			buf = nil
		}
	}
	if len(buf) > 0 {
		sentences = append(sentences, closeSentence(buf))
	}
	return sentences
}

func endsSentence(text string) bool {
	t := strings.TrimSpace(text)
	if t == "" {
		return false
	}
	switch t[len(t)-1] {
	case '.', '!', '?':
		return true
	}
	return false
}

func closeSentence(buf []model.Word) model.Sentence {
	texts := lo.Map(buf, func(w model.Word, _ int) string { return w.Text })
	return model.Sentence{
		Start: buf[0].Start,
		End:   buf[len(buf)-1].End,
		Text:  strings.TrimSpace(strings.Join(texts, " ")),
	}
}
