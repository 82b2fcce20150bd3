// Package scaffold installs the SIA project layout: the .sia directory tree
// with its knowledge, requirements, skills, agents and prompts areas, editor
// integration stubs under .vscode and .github, and the project .gitignore
// block. Installation is idempotent and never overwrites files the user
// already has.
package scaffold
