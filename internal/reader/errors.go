package reader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrReader is the root of the reader error taxonomy. Every subsystem
// failure — UnsupportedFormatError and CorruptedFileError — matches it via
// errors.Is, enabling blanket capture. Filesystem failures surfaced by
// ValidateFileExists deliberately do not descend from it.
var ErrReader = errors.New("file reader")

// UnsupportedFormatError is returned only by the factory when no reader is
// registered for a path's computed extension key.
type UnsupportedFormatError struct {
	Extension string   // normalized key; empty when the path has no suffix
	Supported []string // sorted extension keys available at lookup time
}

func (e *UnsupportedFormatError) Error() string {
	ext := ""
	if e.Extension != "" {
		ext = "." + e.Extension
	}
	formats := "none (no readers registered)"
	if len(e.Supported) > 0 {
		formats = strings.Join(e.Supported, ", ")
	}
	return fmt.Sprintf("Unsupported file format: '%s'. Supported formats: %s", ext, formats)
}

func (e *UnsupportedFormatError) Unwrap() error { return ErrReader }

// CorruptedFileError is raised by reader implementations for content that is
// invalid for its claimed format: empty content, bad encoding, malformed
// structure. It is never produced by the factory or the validator. When the
// defect was detected by a lower-level decoder, Err preserves that failure
// as the cause.
type CorruptedFileError struct {
	Path   string // file that failed
	Reason string // nature of the defect
	Err    error  // underlying decode failure, may be nil
}

func (e *CorruptedFileError) Error() string {
	msg := fmt.Sprintf("corrupted file %s: %s", filepath.Base(e.Path), e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap reports both the taxonomy root and the preserved cause, so
// errors.Is(err, ErrReader) and errors.Is(err, cause) both hold.
func (e *CorruptedFileError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrReader, e.Err}
	}
	return []error{ErrReader}
}
