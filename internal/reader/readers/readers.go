package readers

import (
	"os"
	"unicode/utf8"

	"github.com/sia-framework/sia/internal/reader"
)

// readValidated runs the shared pre-flight checks and returns the raw file
// contents. Filesystem failures propagate with their original kind.
func readValidated(path string) ([]byte, error) {
	if err := reader.ValidateFileExists(path); err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

// decodeUTF8 converts raw bytes to text, rejecting empty files and invalid
// encodings as corrupted content.
func decodeUTF8(path string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", &reader.CorruptedFileError{Path: path, Reason: "file is empty"}
	}
	if !utf8.Valid(data) {
		return "", &reader.CorruptedFileError{Path: path, Reason: "invalid UTF-8 encoding"}
	}
	return string(data), nil
}
