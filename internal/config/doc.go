// Package config loads and validates lux configuration.
//
// # Configuration Resolution
//
// The config file location is resolved in order:
//
//  1. Explicit path passed by the caller (the --config flag)
//  2. Otherwise, ~/.config/lux/config.toml (default)
//
// A missing file is not an error: lux falls back to scanning
// ~/Pictures with the default image extensions.
//
// Example config.toml:
//
//	library_dirs = ["~/Pictures", "~/wallpapers"]
//	extensions = [".png", ".jpg", ".jpeg", ".gif"]
//	theme = "Kanagawa"
//	fps = 30
//	rescan_seconds = 5
//
// # Path Expansion
//
// Paths support tilde expansion ("~/Pictures") and are resolved to
// absolute form; relative paths resolve against the working directory.
package config
