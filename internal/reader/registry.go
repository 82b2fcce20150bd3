package reader

import (
	"sort"
	"strings"
	"sync"
)

// Registry maps extension keys to reader constructors. The zero value is not
// usable; create instances with NewRegistry. A process-wide default registry
// backs the package-level functions; implementations normally register into
// it from init(), so the registry reflects all known readers before first
// use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Constructor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Constructor)}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used by the package-level
// Register, ForPath, and SupportedFormats functions.
func Default() *Registry { return defaultRegistry }

// Register records ctor under the extension key its readers claim. The key
// is read once, from a throwaway instance, and normalized to lowercase.
// The last registration for a key wins; an earlier entry is silently
// replaced. Nil constructors are ignored.
func (r *Registry) Register(ctor Constructor) {
	if ctor == nil {
		return
	}
	key := normalizeKey(ctor().Extension())

	r.mu.Lock()
	r.entries[key] = ctor
	r.mu.Unlock()
}

// Lookup returns the constructor registered for the given extension key.
func (r *Registry) Lookup(ext string) (Constructor, bool) {
	key := normalizeKey(ext)

	r.mu.RLock()
	ctor, ok := r.entries[key]
	r.mu.RUnlock()

	if ctor == nil {
		return nil, false
	}
	return ctor, ok
}

// SupportedFormats returns all registered extension keys, sorted
// lexicographically ascending. Keys are unique, so the result contains no
// duplicates.
func (r *Registry) SupportedFormats() []string {
	r.mu.RLock()
	formats := make([]string, 0, len(r.entries))
	for ext, ctor := range r.entries {
		if ctor == nil {
			continue
		}
		formats = append(formats, ext)
	}
	r.mu.RUnlock()

	sort.Strings(formats)
	return formats
}

// Isolate clears the registry and returns a function that restores the
// previous contents. Tests use it to observe registration against a known
// empty state:
//
//	defer reg.Isolate()()
func (r *Registry) Isolate() func() {
	r.mu.Lock()
	saved := r.entries
	r.entries = make(map[string]Constructor)
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		r.entries = saved
		r.mu.Unlock()
	}
}

// Register records ctor in the default registry.
func Register(ctor Constructor) { defaultRegistry.Register(ctor) }

// SupportedFormats lists the default registry's extension keys, sorted.
func SupportedFormats() []string { return defaultRegistry.SupportedFormats() }

// Isolate clears the default registry and returns its restore function.
func Isolate() func() { return defaultRegistry.Isolate() }

// normalizeKey is shared by registration and lookup so keys always compare
// lowercase and without a leading dot.
func normalizeKey(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
