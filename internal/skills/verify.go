package skills

import (
	"fmt"

	"github.com/sia-framework/sia/internal/hosttools"
	"github.com/sia-framework/sia/internal/manifest"
)

// Issue describes one unmet tool requirement of a skill.
type Issue struct {
	Skill   string
	Problem string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Skill, i.Problem)
}

// ProbeFunc resolves a tool name to a probed host tool. Tests substitute
// their own; production code passes hosttools.Probe.
type ProbeFunc func(name string) (*hosttools.Tool, error)

// Verify checks every skill's declared tool requirements against the host
// and returns the unmet ones. Probes are cached per tool name, so a tool
// shared by many skills is resolved once.
func Verify(all []*Skill, probe ProbeFunc) []Issue {
	if probe == nil {
		probe = hosttools.Probe
	}

	cache := make(map[string]*hosttools.Tool)
	failed := make(map[string]bool)
	var issues []Issue

	for _, s := range all {
		for _, req := range s.Manifest.Requires {
			tool := cache[req.Name]
			if tool == nil && !failed[req.Name] {
				t, err := probe(req.Name)
				if err != nil {
					failed[req.Name] = true
				} else {
					cache[req.Name] = t
					tool = t
				}
			}

			if tool == nil {
				issues = append(issues, Issue{
					Skill:   s.Manifest.Name,
					Problem: fmt.Sprintf("requires %s, not found on PATH", req.Name),
				})
				continue
			}

			if req.MinVersion == "" {
				continue
			}
			ok, err := tool.Meets(hosttools.MinConstraint(req.MinVersion))
			if err != nil {
				issues = append(issues, Issue{
					Skill:   s.Manifest.Name,
					Problem: fmt.Sprintf("requirement %s %s is unparseable: %v", req.Name, req.MinVersion, err),
				})
				continue
			}
			if !ok {
				issues = append(issues, Issue{
					Skill:   s.Manifest.Name,
					Problem: fmt.Sprintf("requires %s >= %s, found %s", req.Name, req.MinVersion, tool.RawVersion),
				})
			}
		}
	}
	return issues
}

// RequirementsOf flattens the tool requirements of a set of skills,
// deduplicated by tool name keeping the highest declared minimum first seen.
func RequirementsOf(all []*Skill) []manifest.ToolRequirement {
	seen := make(map[string]bool)
	var reqs []manifest.ToolRequirement
	for _, s := range all {
		for _, req := range s.Manifest.Requires {
			if seen[req.Name] {
				continue
			}
			seen[req.Name] = true
			reqs = append(reqs, req)
		}
	}
	return reqs
}
