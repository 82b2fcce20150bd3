package integrations

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"text/template"
)

//go:embed templates
var templateFS embed.FS

// Data carries project facts into integration templates.
type Data struct {
	ProjectName string
	ProjectType string
}

// Outcome reports what applying one integration did.
type Outcome struct {
	Created []string // paths written, relative to the project root
	Skipped []string // paths preserved because they already exist
}

// Integration installs one editor or agent surface.
type Integration interface {
	// Name is the registry key, e.g. "vscode".
	Name() string
	// Description is a one-liner for listings.
	Description() string
	// Apply installs the integration's files under root, preserving any
	// that already exist.
	Apply(root string, data Data) (*Outcome, error)
	// Detect reports whether the integration's files are present.
	Detect(root string) bool
}

var (
	mu       sync.RWMutex
	registry = make(map[string]Integration)
)

// Register adds an integration to the registry. Integrations register
// themselves from init functions; a later registration under the same name
// replaces the earlier one.
func Register(i Integration) {
	if i == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	registry[i.Name()] = i
}

// Get returns the named integration, or nil.
func Get(name string) Integration {
	mu.RLock()
	defer mu.RUnlock()
	return registry[name]
}

// All returns every registered integration, sorted by name.
func All() []Integration {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]Integration, 0, len(names))
	for _, name := range names {
		out = append(out, registry[name])
	}
	return out
}

// ApplyAll applies every registered integration and merges the outcomes.
func ApplyAll(root string, data Data) (*Outcome, error) {
	merged := &Outcome{}
	for _, i := range All() {
		o, err := i.Apply(root, data)
		if err != nil {
			return nil, fmt.Errorf("applying %s integration: %w", i.Name(), err)
		}
		merged.Created = append(merged.Created, o.Created...)
		merged.Skipped = append(merged.Skipped, o.Skipped...)
	}
	return merged, nil
}

// writeIfAbsent renders an embedded template to rel under root unless the
// destination already exists.
func writeIfAbsent(root, src, rel string, data Data, o *Outcome) error {
	dst := filepath.Join(root, rel)
	if _, err := os.Stat(dst); err == nil {
		o.Skipped = append(o.Skipped, rel)
		return nil
	}

	raw, err := templateFS.ReadFile("templates/" + src)
	if err != nil {
		return fmt.Errorf("reading embedded template %s: %w", src, err)
	}
	tmpl, err := template.New(filepath.Base(src)).Parse(string(raw))
	if err != nil {
		return fmt.Errorf("parsing template %s: %w", src, err)
	}

	if data.ProjectName == "" {
		data.ProjectName = "this project"
	}
	if data.ProjectType == "" {
		data.ProjectType = "generic"
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(rel), err)
	}
	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", rel, err)
	}
	defer f.Close()
	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("rendering %s: %w", rel, err)
	}

	o.Created = append(o.Created, rel)
	return nil
}
