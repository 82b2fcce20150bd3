package platform

import (
	"os"
	"runtime"
)

// Chmod pins the permission bits on a file the installer wrote. os.WriteFile
// applies the process umask, so installed scaffolding files get their mode
// set explicitly afterwards. On Windows this is a no-op because Windows does
// not track Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}
