package reader

import (
	"path/filepath"
	"strings"
)

// Reader is the contract every format-specific reader satisfies.
type Reader interface {
	// Extension returns the lowercase extension key this reader claims,
	// without a leading dot. It must be deterministic and side-effect-free:
	// the registry reads it exactly once, at registration time.
	Extension() string

	// Read returns the full textual content of the file at path. Content
	// that is structurally or semantically invalid for the claimed format
	// is reported as a *CorruptedFileError; filesystem-level failures
	// (typically from ValidateFileExists) propagate untranslated.
	Read(path string) (string, error)
}

// Constructor produces a fresh Reader. The factory invokes it once per
// ForPath call; instances are stateless or lightly stateful and bound to no
// particular file.
type Constructor func() Reader

// ExtensionKey derives the registry key from a path: the final suffix,
// lowercased, without the leading dot. A path with no suffix yields the
// empty string. Only the last suffix counts ("archive.tar.txt" → "txt").
func ExtensionKey(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Supports reports whether r claims the file at path, judged by the final
// suffix only and case-insensitively. Paths without a suffix are never
// supported, and "file.txt.bak" does not match a "txt" reader.
func Supports(r Reader, path string) bool {
	if filepath.Ext(path) == "" {
		return false
	}
	return ExtensionKey(path) == r.Extension()
}
