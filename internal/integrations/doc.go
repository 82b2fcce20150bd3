// Package integrations wires SIA into editors and agent surfaces. Each
// integration registers itself at init time and knows how to install its
// configuration files into a project and how to tell whether it is already
// set up. The installer applies every registered integration; doctor reports
// their status.
package integrations
