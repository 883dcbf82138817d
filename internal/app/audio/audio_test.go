package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSilenceFilter(t *testing.T) {
	filter := buildSilenceFilter(TrimOptions{
		ThresholdDB:     -35,
		MinSilenceLenMs: 700,
		KeepSilenceMs:   150,
	})

	leading := "silenceremove=start_periods=1:start_duration=0.700:start_threshold=-35dB:start_silence=0.150:detection=peak"
	// The same leading-silence trim runs twice, around a reversal, so both
	// ends are handled symmetrically while interior silence survives.
	assert.Equal(t, leading+",aformat=dblp,areverse,"+leading+",areverse", filter)
}

func TestBuildSilenceFilterZeroKeep(t *testing.T) {
	filter := buildSilenceFilter(TrimOptions{ThresholdDB: -40, MinSilenceLenMs: 500})
	assert.Contains(t, filter, "start_duration=0.500")
	assert.Contains(t, filter, "start_threshold=-40dB")
	assert.Contains(t, filter, "start_silence=0.000")
}
