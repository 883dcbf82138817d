package whisper_cpp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	apperrors "memo-whisper/internal/app/errors"
	"memo-whisper/internal/app/model"
)

// Options configures the external whisper.cpp invocation.
type Options struct {
	BinaryPath   string
	ModelPath    string
	Language     string
	BeamSize     int
	MaxThreads   int
	VAD          bool
	VADModelPath string
}

// LocalTranscriber implements transcription with the local whisper.cpp
// binary, parsing its -oj word-timestamp JSON output.
type LocalTranscriber struct {
	opts   Options
	logger *zap.Logger
}

// NewLocalTranscriber creates a new instance of LocalTranscriber.
func NewLocalTranscriber(opts Options, logger *zap.Logger) *LocalTranscriber {
	return &LocalTranscriber{opts: opts, logger: logger}
}

// Transcribe runs the engine against inputFilePath and returns the parsed
// word-level output. The engine writes <input base>.json next to the input
// when invoked with -oj/-of.
func (lt *LocalTranscriber) Transcribe(ctx context.Context, inputFilePath string) (*model.WhisperOutput, error) {
	outputBase := strings.TrimSuffix(inputFilePath, filepath.Ext(inputFilePath))

	args := []string{
		"-m", lt.opts.ModelPath,
		"-f", inputFilePath,
		"-l", lt.opts.Language,
		"-oj",
		"-of", outputBase,
		"-bs", strconv.Itoa(lt.opts.BeamSize),
		"-t", strconv.Itoa(lt.opts.MaxThreads),
	}
	if lt.opts.VAD {
		args = append(args, "--vad", "--vad-model", lt.opts.VADModelPath)
	}

	command := exec.CommandContext(ctx, lt.opts.BinaryPath, args...)
	var stdout, stderr bytes.Buffer
	command.Stdout = &stdout
	command.Stderr = &stderr

	lt.logger.Info("running transcription command",
		zap.String("binary", lt.opts.BinaryPath),
		zap.String("args", strings.Join(args, " ")))

	if err := command.Run(); err != nil {
		return nil, &apperrors.TranscriptionError{
			Path: inputFilePath,
			Err:  fmt.Errorf("command execution error: %v, stderr: %s", err, stderr.String()),
		}
	}

	outputFile := outputBase + ".json"
	data, err := os.ReadFile(outputFile)
	if err != nil {
		return nil, &apperrors.TranscriptionError{
			Path: inputFilePath,
			Err:  fmt.Errorf("failed to read output file %s: %w", outputFile, err),
		}
	}

	output, err := parseOutput(data)
	if err != nil {
		return nil, &apperrors.TranscriptionError{Path: inputFilePath, Err: err}
	}
	return output, nil
}

func parseOutput(data []byte) (*model.WhisperOutput, error) {
	var output model.WhisperOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("malformed engine output: %w", err)
	}
	return &output, nil
}
