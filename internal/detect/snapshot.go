package detect

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// SnapshotFile is the detection record written at the project root.
const SnapshotFile = ".sia.detected.yaml"

// snapshot is the on-disk shape of the detection record.
type snapshot struct {
	Project struct {
		Name    string   `yaml:"name"`
		Type    string   `yaml:"type"`
		Markers []string `yaml:"markers,omitempty"`
	} `yaml:"project"`
}

// Save writes the report to <root>/.sia.detected.yaml, replacing any
// previous snapshot.
func Save(root string, r *Report) error {
	var s snapshot
	s.Project.Name = r.Name
	s.Project.Type = r.Type
	s.Project.Markers = r.Markers

	data, err := yaml.Marshal(&s)
	if err != nil {
		return fmt.Errorf("encoding detection snapshot: %w", err)
	}
	path := filepath.Join(root, SnapshotFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Load reads a previously saved snapshot from the project root.
func Load(root string) (*Report, error) {
	path := filepath.Join(root, SnapshotFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var s snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &Report{Name: s.Project.Name, Type: s.Project.Type, Markers: s.Project.Markers}, nil
}
