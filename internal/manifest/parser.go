package manifest

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Parse reads a manifest file and returns only the base fields. Useful for
// quick type detection without full parsing.
func Parse(path string) (*BaseManifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var base BaseManifest
	if err := yaml.Unmarshal(data, &base); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	return &base, nil
}

// ParseFile reads a manifest file, detects its type, and returns the fully
// typed manifest struct: one of *SkillManifest, *AgentManifest, or
// *PromptManifest.
func ParseFile(path string) (interface{}, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	typeName, err := detectType(data)
	if err != nil {
		return nil, fmt.Errorf("detecting manifest type in %s: %w", path, err)
	}

	switch typeName {
	case TypeSkill:
		return parseTyped[SkillManifest](data, path)
	case TypeAgent:
		return parseTyped[AgentManifest](data, path)
	case TypePrompt:
		return parseTyped[PromptManifest](data, path)
	default:
		return nil, fmt.Errorf("unknown manifest type %q in %s", typeName, path)
	}
}

// ParseSkill reads a manifest file and parses it as a SkillManifest.
func ParseSkill(path string) (*SkillManifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return parseTyped[SkillManifest](data, path)
}

// ParseAgent reads a manifest file and parses it as an AgentManifest.
func ParseAgent(path string) (*AgentManifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return parseTyped[AgentManifest](data, path)
}

// ParsePrompt reads a manifest file and parses it as a PromptManifest.
func ParsePrompt(path string) (*PromptManifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return parseTyped[PromptManifest](data, path)
}

// parseTyped unmarshals YAML data into a typed manifest struct.
func parseTyped[T any](data []byte, path string) (*T, error) {
	var m T
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &m, nil
}

// detectType unmarshals YAML data into a generic map and extracts the type field.
func detectType(data []byte) (string, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return "", fmt.Errorf("unmarshaling YAML: %w", err)
	}

	typeVal, ok := raw["type"]
	if !ok {
		return "", fmt.Errorf("manifest missing required 'type' field")
	}

	typeName, ok := typeVal.(string)
	if !ok {
		return "", fmt.Errorf("manifest 'type' field is not a string")
	}

	return typeName, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
