package reader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ValidateFileExists runs the pre-flight checks a reader performs before
// touching a path. The three failure conditions are mutually exclusive and
// checked in order:
//
//  1. the path must resolve to an existing entry (a dangling symlink counts
//     as missing) — wraps fs.ErrNotExist;
//  2. the entry must be a regular file (a symlink to one is fine) — wraps
//     fs.ErrInvalid;
//  3. the file must be readable by the current process — wraps
//     fs.ErrPermission.
//
// A zero-byte readable regular file passes. The wrapped sentinels are the
// generic fs kinds on purpose: these are infrastructure failures, not
// reader-taxonomy failures, and never match ErrReader.
func ValidateFileExists(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("file not found: %s: %w", path, fs.ErrNotExist)
		}
		return err
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("path is not a file: %s: %w", path, fs.ErrInvalid)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("cannot read file: %s: %w", path, fs.ErrPermission)
		}
		return err
	}
	return f.Close()
}
