// Package platform provides cross-platform filesystem operations used by the
// installer: symlink creation for linked prompt installs and permission
// management. On Unix it uses native symlinks and chmod directly. On Windows
// it falls back to copying the file and recording the intended target in a
// sidecar when developer-mode symlinks are unavailable.
package platform
