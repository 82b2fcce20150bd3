// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package, then rebuild. Go's //go:embed
// bakes the file into the binary; hard defaults cover a missing or empty file.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	ProjectDir  string `yaml:"project_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	GitHubRepo  string `yaml:"github_repo"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "sia",
			DisplayName: "SIA",
			Description: "Installer for the SIA documentation-and-agent scaffolding framework",
			HomeDir:     ".sia",
			ProjectDir:  ".sia",
			EnvPrefix:   "SIA",
			GoModule:    "github.com/sia-framework/sia",
			GitHubRepo:  "sia-framework/sia",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "sia").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "SIA").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".sia").
func HomeDir() string { load(); return defaults.HomeDir }

// ProjectDir returns the workspace directory name created inside a host
// project (e.g., ".sia").
func ProjectDir() string { load(); return defaults.ProjectDir }

// EnvPrefix returns the environment variable prefix (e.g., "SIA").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Used by rebranding scripts,
// not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string (e.g., "sia-framework/sia").
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "SIA_HOME".
func EnvVar(suffix string) string {
	return EnvPrefix() + "_" + strings.ToUpper(suffix)
}
