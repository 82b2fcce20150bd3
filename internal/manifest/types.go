package manifest

// BaseManifest contains fields shared by all manifest types.
type BaseManifest struct {
	Name        string   `yaml:"name" json:"name"`
	Type        string   `yaml:"type" json:"type"`
	Version     string   `yaml:"version" json:"version"`
	Description string   `yaml:"description" json:"description"`
	Tags        []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	Author      string   `yaml:"author,omitempty" json:"author,omitempty"`
}

// SkillManifest describes a skill: a reusable capability that ingests
// knowledge files and exposes them to agents.
type SkillManifest struct {
	BaseManifest `yaml:",inline"`
	Entrypoint   string            `yaml:"entrypoint,omitempty" json:"entrypoint,omitempty"`
	Formats      []string          `yaml:"formats,omitempty" json:"formats,omitempty"`
	Knowledge    []string          `yaml:"knowledge,omitempty" json:"knowledge,omitempty"`
	Requires     []ToolRequirement `yaml:"requires,omitempty" json:"requires,omitempty"`
}

// AgentManifest describes an agent persona kept under .sia/agents/.
type AgentManifest struct {
	BaseManifest `yaml:",inline"`
	Role         string   `yaml:"role,omitempty" json:"role,omitempty"`
	Expertise    []string `yaml:"expertise,omitempty" json:"expertise,omitempty"`
	Prompts      []string `yaml:"prompts,omitempty" json:"prompts,omitempty"`
	Skills       []string `yaml:"skills,omitempty" json:"skills,omitempty"`
}

// PromptManifest describes a slash-command prompt under .sia/prompts/.
type PromptManifest struct {
	BaseManifest `yaml:",inline"`
	Template     string   `yaml:"template,omitempty" json:"template,omitempty"`
	Context      []string `yaml:"context,omitempty" json:"context,omitempty"`
	Agent        string   `yaml:"agent,omitempty" json:"agent,omitempty"`
}

// ToolRequirement declares a host tool a skill depends on, with an optional
// minimum version understood as a semver constraint.
type ToolRequirement struct {
	Name       string `yaml:"name" json:"name"`
	MinVersion string `yaml:"min_version,omitempty" json:"min_version,omitempty"`
}

// Manifest type constants for the type discriminator field.
const (
	TypeSkill  = "skill"
	TypeAgent  = "agent"
	TypePrompt = "prompt"
)

// ValidTypes contains all valid manifest type values.
var ValidTypes = []string{TypeSkill, TypeAgent, TypePrompt}
