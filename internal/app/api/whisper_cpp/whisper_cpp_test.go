package whisper_cpp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOutput(t *testing.T) {
	data := []byte(`{
		"segments": [
			{
				"start": 0.0,
				"end": 2.4,
				"text": "Hello world.",
				"words": [
					{"word": " Hello", "start": 0.1, "end": 0.6},
					{"word": " world.", "start": 0.7, "end": 1.2},
					{"word": " untimed"}
				]
			}
		]
	}`)

	output, err := parseOutput(data)
	require.NoError(t, err)
	require.Len(t, output.Segments, 1)

	seg := output.Segments[0]
	assert.Equal(t, 0.0, seg.Start)
	assert.Equal(t, 2.4, seg.End)
	require.Len(t, seg.Words, 3)

	assert.Equal(t, " Hello", seg.Words[0].Word)
	require.NotNil(t, seg.Words[0].Start)
	assert.Equal(t, 0.1, *seg.Words[0].Start)

	// Absent per-word timestamps unmarshal as nil, not zero.
	assert.Nil(t, seg.Words[2].Start)
	assert.Nil(t, seg.Words[2].End)
}

func TestParseOutputMalformed(t *testing.T) {
	_, err := parseOutput([]byte("not json at all"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed engine output")
}

func TestParseOutputEmpty(t *testing.T) {
	output, err := parseOutput([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, output.Segments)
}
