package reader

// ForPath returns a fresh reader instance for the file at path, selected by
// the path's final suffix. The path need not exist; existence is the
// reader's (and ValidateFileExists') concern, not the factory's. When no
// reader is registered for the computed extension key, the returned error is
// an *UnsupportedFormatError enumerating the currently supported formats.
func (r *Registry) ForPath(path string) (Reader, error) {
	ext := ExtensionKey(path)

	ctor, ok := r.Lookup(ext)
	if !ok {
		return nil, &UnsupportedFormatError{
			Extension: ext,
			Supported: r.SupportedFormats(),
		}
	}
	return ctor(), nil
}

// ForPath dispatches path against the default registry.
func ForPath(path string) (Reader, error) { return defaultRegistry.ForPath(path) }
