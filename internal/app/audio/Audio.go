package audio

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	apperrors "memo-whisper/internal/app/errors"
	"memo-whisper/internal/app/model"
)

// Trimmer produces a silence-trimmed working copy of a source recording
// and reports the output's duration.
type Trimmer interface {
	TrimSilence(ctx context.Context, inPath, outPath string, opt TrimOptions) (float64, error)
}

// FFmpegTrimmer implements Trimmer with the external ffmpeg binary.
type FFmpegTrimmer struct{}

func NewFFmpegTrimmer() *FFmpegTrimmer {
	return &FFmpegTrimmer{}
}

func (t *FFmpegTrimmer) TrimSilence(ctx context.Context, inPath, outPath string, opt TrimOptions) (float64, error) {
	return TrimSilence(ctx, inPath, outPath, opt)
}

// TrimOptions are the silence-trimming tunables. ThresholdDB is negative
// (e.g. -35), MinSilenceLenMs is the shortest silence that qualifies for
// removal, KeepSilenceMs is the padding retained at trim boundaries.
type TrimOptions struct {
	ThresholdDB     int
	MinSilenceLenMs int
	KeepSilenceMs   int
}

// buildSilenceFilter assembles the ffmpeg silenceremove chain. The filter
// only trims leading silence, so the signal is reversed, trimmed again and
// reversed back; interior silence is preserved.
// https://ffmpeg.org/ffmpeg-filters.html#silenceremove
func buildSilenceFilter(opt TrimOptions) string {
	leading := fmt.Sprintf(
		"silenceremove=start_periods=1:start_duration=%.3f:start_threshold=%ddB:start_silence=%.3f:detection=peak",
		float64(opt.MinSilenceLenMs)/1000.0,
		opt.ThresholdDB,
		float64(opt.KeepSilenceMs)/1000.0,
	)
	return leading + ",aformat=dblp,areverse," + leading + ",areverse"
}

// TrimSilence writes a copy of inPath with leading and trailing silence
// removed to outPath and returns the duration of the output in seconds.
// The duration is measured with a separate probe on the output file rather
// than trusting the filter's accounting.
func TrimSilence(ctx context.Context, inPath, outPath string, opt TrimOptions) (float64, error) {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return 0, &apperrors.AudioProcessingError{Path: inPath, Err: err}
	}

	cmd := exec.CommandContext(ctx, "ffmpeg", "-y", "-i", inPath, "-af", buildSilenceFilter(opt), outPath)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return 0, &apperrors.AudioProcessingError{Path: inPath, Stderr: stderr.String(), Err: err}
	}

	return ProbeDuration(ctx, outPath)
}

// ProbeDuration returns the duration in seconds of an audio file as
// reported by ffprobe.
func ProbeDuration(ctx context.Context, filePath string) (float64, error) {
	cmd := exec.CommandContext(ctx, "ffprobe", "-v", "error", "-print_format", "json", "-show_format", filePath)
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return 0, &apperrors.AudioProcessingError{Path: filePath, Stderr: string(exitErr.Stderr), Err: err}
		}
		return 0, &apperrors.AudioProcessingError{Path: filePath, Err: err}
	}

	var probe model.FFProbeOutput
	if err := json.Unmarshal(output, &probe); err != nil {
		return 0, &apperrors.AudioProcessingError{Path: filePath, Err: err}
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(probe.Format.Duration), 64)
	if err != nil {
		return 0, &apperrors.AudioProcessingError{Path: filePath, Err: fmt.Errorf("unparseable duration %q", probe.Format.Duration)}
	}
	return duration, nil
}
