// Package readers provides the concrete reader implementations shipped with
// the framework: plain text, markdown, JSON, YAML, TOML, HTML, and CSV.
// Each implementation registers itself with the default reader registry in
// init(), so importing this package (usually blank, from the CLI) is all it
// takes to make the formats available through reader.ForPath.
package readers
