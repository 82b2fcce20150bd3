// Package reader implements the extensible file-content-reader subsystem.
//
// A Reader knows how to extract text from one file format, identified by a
// normalized extension key (lowercase, no leading dot). Implementations
// register a Constructor at init() time; the factory ForPath dispatches a
// filesystem path to a fresh instance of the registered reader for the
// path's final suffix.
//
// Failures split into two families. Format-level failures descend from
// ErrReader (UnsupportedFormatError from the factory, CorruptedFileError
// from readers). Filesystem-level failures from ValidateFileExists wrap the
// generic fs sentinels instead, so callers can tell an inaccessible file
// apart from an unparseable one.
package reader
