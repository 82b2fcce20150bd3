package reader

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestValidateFileExistsValidFile(t *testing.T) {
	path := writeTemp(t, "valid.txt", "test content")

	if err := ValidateFileExists(path); err != nil {
		t.Errorf("ValidateFileExists(%q) = %v, want nil", path, err)
	}
}

func TestValidateFileExistsEmptyFile(t *testing.T) {
	// A zero-byte readable regular file passes.
	path := writeTemp(t, "empty.txt", "")

	if err := ValidateFileExists(path); err != nil {
		t.Errorf("ValidateFileExists(%q) = %v, want nil", path, err)
	}
}

func TestValidateFileExistsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent_12345.txt")

	err := ValidateFileExists(path)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error = %v, want fs.ErrNotExist", err)
	}
	if errors.Is(err, fs.ErrInvalid) {
		t.Error("missing file also matches fs.ErrInvalid, conditions must be exclusive")
	}
}

func TestValidateFileExistsDirectory(t *testing.T) {
	dir := t.TempDir()

	err := ValidateFileExists(dir)
	if !errors.Is(err, fs.ErrInvalid) {
		t.Errorf("error = %v, want fs.ErrInvalid", err)
	}
	if errors.Is(err, fs.ErrNotExist) {
		t.Error("directory also matches fs.ErrNotExist, conditions must be exclusive")
	}
}

func TestValidateFileExistsUnreadableFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not reliable on Windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("running as root, permission checks are bypassed")
	}

	path := writeTemp(t, "locked.txt", "secret")
	if err := os.Chmod(path, 0o000); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	defer os.Chmod(path, 0o644)

	err := ValidateFileExists(path)
	if !errors.Is(err, fs.ErrPermission) {
		t.Errorf("error = %v, want fs.ErrPermission", err)
	}
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
		t.Error("permission failure overlaps another condition, conditions must be exclusive")
	}
}

func TestValidateFileExistsSymlinkToFile(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require developer mode on Windows")
	}

	target := writeTemp(t, "target.txt", "content")
	link := filepath.Join(t.TempDir(), "link.txt")
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	if err := ValidateFileExists(link); err != nil {
		t.Errorf("ValidateFileExists(symlink) = %v, want nil", err)
	}
}

func TestValidateFileExistsDanglingSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require developer mode on Windows")
	}

	dir := t.TempDir()
	link := filepath.Join(dir, "broken_link.txt")
	if err := os.Symlink(filepath.Join(dir, "nonexistent_target.txt"), link); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	err := ValidateFileExists(link)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error = %v, want fs.ErrNotExist for dangling symlink", err)
	}
}

func TestValidateFileExistsSymlinkToDirectory(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require developer mode on Windows")
	}

	link := filepath.Join(t.TempDir(), "dirlink")
	if err := os.Symlink(t.TempDir(), link); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	if err := ValidateFileExists(link); !errors.Is(err, fs.ErrInvalid) {
		t.Errorf("error = %v, want fs.ErrInvalid", err)
	}
}
