// Package detect inspects a project directory for language and framework
// markers and records the result in .sia.detected.yaml at the project root.
// The snapshot lets prompts and integrations tailor themselves to the
// project without re-scanning on every invocation.
package detect
