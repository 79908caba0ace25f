// Package config provides configuration management for yt2jellyfin.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Environment variable overrides exported by the installer
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Downloads to ~/Music
//	// Archive at ~/.local/share/yt2jellyfin/archive.txt
//	// Thumbnail embedding enabled
//
// # Loading
//
//	settings, err := config.Load(config.DefaultConfigPath())
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// YT2JELLYFIN_OUTPUT and YT2JELLYFIN_ARCHIVE override the file values;
// command-line flags override both. Settings are resolved once at
// startup and passed by reference, never mutated afterwards.
package config
