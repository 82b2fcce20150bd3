// Package config manages global user settings stored at ~/.sia/config.yaml.
// It wraps Viper so values can also come from SIA_* environment variables.
// Per-project state lives under the project's .sia/ directory instead and is
// handled by the detect and scaffold packages.
package config
