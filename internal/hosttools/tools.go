package hosttools

import (
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Tool describes a probed host tool.
type Tool struct {
	Name       string          // canonical name, e.g. "python3"
	Path       string          // resolved executable path
	Version    *semver.Version // parsed version, nil if unparseable
	RawVersion string          // first line of the version output
}

// MinPython is the interpreter floor the original installer enforces.
const MinPython = ">= 3.10.0"

// KnownTools is the standard probe set reported by install and doctor.
var KnownTools = []string{"python3", "node", "go", "git", "uv"}

// aliases lists fallback executable names per canonical tool name.
var aliases = map[string][]string{
	"python3": {"python3", "python"},
}

// versionArgs returns the argument vector that makes a tool print its
// version. Go is the odd one out.
func versionArgs(name string) []string {
	if name == "go" {
		return []string{"version"}
	}
	return []string{"--version"}
}

var versionRE = regexp.MustCompile(`v?(\d+\.\d+(?:\.\d+)?)`)

// Probe locates a tool on PATH and parses its reported version. A tool that
// exists but prints an unparseable version is still returned, with a nil
// Version.
func Probe(name string) (*Tool, error) {
	candidates := aliases[name]
	if candidates == nil {
		candidates = []string{name}
	}

	var path string
	var resolved string
	for _, candidate := range candidates {
		p, err := exec.LookPath(candidate)
		if err == nil {
			path, resolved = p, candidate
			break
		}
	}
	if path == "" {
		return nil, fmt.Errorf("%s: not found on PATH", name)
	}

	out, err := exec.Command(resolved, versionArgs(name)...).CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("%s: running version probe: %w", name, err)
	}

	raw := strings.TrimSpace(string(out))
	if i := strings.IndexByte(raw, '\n'); i >= 0 {
		raw = raw[:i]
	}

	tool := &Tool{Name: name, Path: path, RawVersion: raw}
	if v, err := ParseVersion(raw); err == nil {
		tool.Version = v
	}
	return tool, nil
}

// ParseVersion extracts the first version-looking token from a tool's
// version output ("Python 3.12.1", "go version go1.25.7 linux/amd64", ...).
func ParseVersion(output string) (*semver.Version, error) {
	m := versionRE.FindStringSubmatch(output)
	if m == nil {
		return nil, fmt.Errorf("no version found in %q", output)
	}
	return semver.NewVersion(m[1])
}

// Meets reports whether the tool's version satisfies a semver constraint
// such as ">= 3.10.0". A tool with no parsed version never satisfies a
// constraint.
func (t *Tool) Meets(constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing constraint %q: %w", constraint, err)
	}
	if t.Version == nil {
		return false, nil
	}
	return c.Check(t.Version), nil
}

// MinConstraint converts a bare minimum version ("3.10.0") into the
// constraint form Meets expects. Strings that already carry an operator
// pass through unchanged.
func MinConstraint(min string) string {
	trimmed := strings.TrimSpace(min)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, ">") || strings.HasPrefix(trimmed, "<") ||
		strings.HasPrefix(trimmed, "=") || strings.HasPrefix(trimmed, "^") ||
		strings.HasPrefix(trimmed, "~") {
		return trimmed
	}
	return ">= " + trimmed
}
