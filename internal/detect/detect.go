package detect

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Report is the outcome of scanning a project directory.
type Report struct {
	Name    string   // project name, best-effort from build files
	Type    string   // python, fastapi, node, go, rust or generic
	Markers []string // files that drove the decision
}

// Project type values produced by Detect.
const (
	TypePython  = "python"
	TypeFastAPI = "fastapi"
	TypeNode    = "node"
	TypeGo      = "go"
	TypeRust    = "rust"
	TypeGeneric = "generic"
)

// Detect scans root for build files and classifies the project. It never
// fails on malformed build files; those simply stop contributing detail.
func Detect(root string) *Report {
	r := &Report{Type: TypeGeneric, Name: filepath.Base(root)}

	if mark := exists(root, "pyproject.toml"); mark != "" {
		r.Type = TypePython
		r.Markers = append(r.Markers, mark)
		if name, fastapi := inspectPyproject(filepath.Join(root, mark)); name != "" || fastapi {
			if name != "" {
				r.Name = name
			}
			if fastapi {
				r.Type = TypeFastAPI
			}
		}
	} else if mark := exists(root, "requirements.txt"); mark != "" {
		r.Type = TypePython
		r.Markers = append(r.Markers, mark)
		if dependsOnFastAPI(filepath.Join(root, mark)) {
			r.Type = TypeFastAPI
		}
	} else if mark := exists(root, "package.json"); mark != "" {
		r.Type = TypeNode
		r.Markers = append(r.Markers, mark)
		if name := inspectPackageJSON(filepath.Join(root, mark)); name != "" {
			r.Name = name
		}
	} else if mark := exists(root, "go.mod"); mark != "" {
		r.Type = TypeGo
		r.Markers = append(r.Markers, mark)
		if name := inspectGoMod(filepath.Join(root, mark)); name != "" {
			r.Name = name
		}
	} else if mark := exists(root, "Cargo.toml"); mark != "" {
		r.Type = TypeRust
		r.Markers = append(r.Markers, mark)
		if name := inspectCargo(filepath.Join(root, mark)); name != "" {
			r.Name = name
		}
	}

	return r
}

func exists(root, name string) string {
	if info, err := os.Stat(filepath.Join(root, name)); err == nil && info.Mode().IsRegular() {
		return name
	}
	return ""
}

// pyproject models the slice of pyproject.toml detection cares about.
type pyproject struct {
	Project struct {
		Name         string   `toml:"name"`
		Dependencies []string `toml:"dependencies"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Name         string         `toml:"name"`
			Dependencies map[string]any `toml:"dependencies"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

func inspectPyproject(path string) (name string, fastapi bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	var pp pyproject
	if err := toml.Unmarshal(data, &pp); err != nil {
		return "", false
	}

	name = pp.Project.Name
	if name == "" {
		name = pp.Tool.Poetry.Name
	}
	for _, dep := range pp.Project.Dependencies {
		if strings.HasPrefix(strings.ToLower(dep), "fastapi") {
			fastapi = true
		}
	}
	if _, ok := pp.Tool.Poetry.Dependencies["fastapi"]; ok {
		fastapi = true
	}
	return name, fastapi
}

func dependsOnFastAPI(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "fastapi") {
			return true
		}
	}
	return false
}

func inspectPackageJSON(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	var pkg struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return ""
	}
	return pkg.Name
}

func inspectGoMod(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "module ") {
			mod := strings.TrimSpace(strings.TrimPrefix(line, "module "))
			return filepath.Base(mod)
		}
	}
	return ""
}

func inspectCargo(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	var c struct {
		Package struct {
			Name string `toml:"name"`
		} `toml:"package"`
	}
	if err := toml.Unmarshal(data, &c); err != nil {
		return ""
	}
	return c.Package.Name
}

// Summary renders a one-line human description of the report.
func (r *Report) Summary() string {
	if len(r.Markers) == 0 {
		return fmt.Sprintf("%s (%s, no build files found)", r.Name, r.Type)
	}
	return fmt.Sprintf("%s (%s, via %s)", r.Name, r.Type, strings.Join(r.Markers, ", "))
}
