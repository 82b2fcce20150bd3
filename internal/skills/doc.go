// Package skills discovers skill manifests across configured sources and
// verifies their declared tool requirements against the host. A source is a
// named directory tree (the project's .sia/skills, the user's ~/.sia/skills);
// when two sources carry a skill under the same relative path, the earlier
// source wins.
package skills
