package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"

	apperrors "memo-whisper/internal/app/errors"
)

// fingerprintChunkSize bounds memory use while hashing arbitrarily large
// source files.
const fingerprintChunkSize = 1 << 20

// FileFingerprint calculates the SHA256 digest of a file's full byte
// content, streamed in fixed-size chunks. Identical bytes always yield the
// same fingerprint regardless of name, path or mtime; this is the sole
// dedup criterion.
func FileFingerprint(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", &apperrors.HashError{Path: filePath, Err: err}
	}
	defer file.Close()

	hash := sha256.New()
	buf := make([]byte, fingerprintChunkSize)
	if _, err := io.CopyBuffer(hash, file, buf); err != nil {
		return "", &apperrors.HashError{Path: filePath, Err: err}
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}
