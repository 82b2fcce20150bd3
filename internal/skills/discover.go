package skills

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sia-framework/sia/internal/manifest"
)

// Source is a named root directory that may contain skills.
type Source struct {
	Name     string
	BasePath string
}

// Skill is a discovered skill: its parsed manifest plus where it came from.
type Skill struct {
	Manifest     *manifest.SkillManifest
	Dir          string // absolute directory containing the manifest
	ManifestPath string
	Source       string // name of the source that provided it
	RelPath      string // path relative to the source root, used for overrides
}

// manifestNames lists the filenames probed inside a skill directory, in
// preference order.
var manifestNames = []string{"skill.yaml", "manifest.yaml"}

// Discover walks each source for skill directories. Directories whose name
// starts with "_" (such as _archive) are skipped. Results are sorted by
// skill name.
func Discover(sources []Source) ([]*Skill, error) {
	seen := make(map[string]bool)
	var skills []*Skill

	for _, src := range sources {
		info, err := os.Stat(src.BasePath)
		if err != nil || !info.IsDir() {
			continue // absent sources are fine
		}

		err = filepath.WalkDir(src.BasePath, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() {
				return nil
			}
			if strings.HasPrefix(d.Name(), "_") && path != src.BasePath {
				return filepath.SkipDir
			}

			mpath := findManifest(path)
			if mpath == "" {
				return nil
			}

			rel, err := filepath.Rel(src.BasePath, path)
			if err != nil {
				return err
			}
			if seen[rel] {
				return filepath.SkipDir // earlier source already provided it
			}

			m, err := manifest.ParseSkill(mpath)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", mpath, err)
			}

			seen[rel] = true
			skills = append(skills, &Skill{
				Manifest:     m,
				Dir:          path,
				ManifestPath: mpath,
				Source:       src.Name,
				RelPath:      rel,
			})
			return filepath.SkipDir // skills do not nest
		})
		if err != nil {
			return nil, fmt.Errorf("discovering skills in %s: %w", src.BasePath, err)
		}
	}

	sort.Slice(skills, func(i, j int) bool {
		return skills[i].Manifest.Name < skills[j].Manifest.Name
	})
	return skills, nil
}

// findManifest returns the first manifest file present in dir, or "".
func findManifest(dir string) string {
	for _, name := range manifestNames {
		p := filepath.Join(dir, name)
		if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
			return p
		}
	}
	return ""
}

// Find returns the discovered skill with the given name, or nil.
func Find(skills []*Skill, name string) *Skill {
	for _, s := range skills {
		if s.Manifest.Name == name {
			return s
		}
	}
	return nil
}
