// Package hosttools probes the host system for the interpreters and tools
// that SIA skills depend on (python3, node, go, git, uv) and evaluates
// skill version requirements against what it finds. SIA never executes
// skills itself; probing exists so install and doctor can report missing or
// outdated tools before an agent trips over them.
package hosttools
