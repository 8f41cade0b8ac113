// Package file provides the TOML-backed ConfigStore adapter. Settings
// live in a single config.toml under the user's goodspot directory and
// are flattened to dot-separated keys.
package file
