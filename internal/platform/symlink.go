package platform

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// sidecarSuffix marks the file recording a copy-fallback's intended target.
const sidecarSuffix = ".target"

// CreateSymlink creates a symbolic link at link pointing to target. On
// Windows without developer mode it copies the file instead and writes a
// sidecar so ReadSymlinkTarget can still recover the original target.
func CreateSymlink(target, link string) error {
	if runtime.GOOS != "windows" {
		return os.Symlink(target, link)
	}

	if err := os.Symlink(target, link); err == nil {
		return nil
	}

	if err := copyForLink(target, link); err != nil {
		return fmt.Errorf("symlink fallback (copy) failed: %w", err)
	}

	// Best effort: the copy already succeeded.
	_ = os.WriteFile(link+sidecarSuffix, []byte(target), 0o644)
	return nil
}

// RemoveSymlink removes a symlink, or its fallback copy and sidecar.
func RemoveSymlink(path string) error {
	err := os.Remove(path)
	os.Remove(path + sidecarSuffix) // best-effort
	return err
}

// ReadSymlinkTarget returns the target of a symlink. On Windows, if the link
// was created via the copy fallback, the target comes from the sidecar.
func ReadSymlinkTarget(path string) (string, error) {
	target, err := os.Readlink(path)
	if err == nil {
		return target, nil
	}

	if runtime.GOOS != "windows" {
		return "", err
	}

	data, readErr := os.ReadFile(path + sidecarSuffix)
	if readErr != nil {
		return "", fmt.Errorf("readlink failed and no %s sidecar found: %w", sidecarSuffix, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// IsSymlinkSupported reports whether the platform supports native symlinks.
// On Windows it probes by creating a temporary link.
func IsSymlinkSupported() bool {
	if runtime.GOOS != "windows" {
		return true
	}

	link := filepath.Join(os.TempDir(), ".sia-symlink-test")
	defer os.Remove(link)
	return os.Symlink(os.TempDir(), link) == nil
}

// copyForLink copies src to dst. Relative sources resolve against the
// directory containing dst, matching symlink semantics.
func copyForLink(src, dst string) error {
	if !filepath.IsAbs(src) {
		src = filepath.Join(filepath.Dir(dst), src)
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
