// Package manifest parses and validates the YAML manifests that describe
// SIA types: skills, agents, and prompts. Parsing uses yaml.v3; structural
// validation runs against an embedded JSON Schema so authoring mistakes are
// reported as field-level issues instead of parse panics deeper in the
// installer.
package manifest
