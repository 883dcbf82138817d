package errors

import (
	"fmt"
)

// Sentinel errors shared across the pipeline.
var (
	// ErrDuplicateHash is returned when an insert collides with the unique
	// source_hash constraint. Under a dedup race this is benign: the content
	// is already in the ledger.
	ErrDuplicateHash = New("recording with identical content already imported")

	// ErrRecordingNotFound is returned for lookups of unknown or deleted ids.
	ErrRecordingNotFound = New("recording not found")
)

// Error represents a standardized error with an optional cause.
type Error struct {
	message string
	cause   error
}

// New creates a new error
func New(message string) *Error {
	return &Error{message: message}
}

// Newf creates a new formatted error
func Newf(format string, args ...interface{}) *Error {
	return &Error{message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{
		message: fmt.Sprintf(format, args...),
		cause:   err,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.cause
}

// Is checks if the error matches target
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.message == t.message
}

// HashError reports a source file that could not be fingerprinted. The file
// is neither imported nor permanently skipped; a later run retries it.
type HashError struct {
	Path string
	Err  error
}

func (e *HashError) Error() string {
	return fmt.Sprintf("hashing %s: %v", e.Path, e.Err)
}

func (e *HashError) Unwrap() error {
	return e.Err
}

// AudioProcessingError reports a failed ffmpeg/ffprobe invocation. Stderr
// carries the engine's diagnostic output for operability.
type AudioProcessingError struct {
	Path   string
	Stderr string
	Err    error
}

func (e *AudioProcessingError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("audio processing %s: %v, stderr: %s", e.Path, e.Err, e.Stderr)
	}
	return fmt.Sprintf("audio processing %s: %v", e.Path, e.Err)
}

func (e *AudioProcessingError) Unwrap() error {
	return e.Err
}

// TranscriptionError reports a recognition engine failure or malformed
// engine output.
type TranscriptionError struct {
	Path string
	Err  error
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("transcribing %s: %v", e.Path, e.Err)
}

func (e *TranscriptionError) Unwrap() error {
	return e.Err
}

// LedgerError reports a database failure. Unless it wraps ErrDuplicateHash
// it is fatal to the current import run.
type LedgerError struct {
	Op  string
	Err error
}

func (e *LedgerError) Error() string {
	return fmt.Sprintf("ledger %s: %v", e.Op, e.Err)
}

func (e *LedgerError) Unwrap() error {
	return e.Err
}
