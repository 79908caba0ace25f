package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Environment variables read at startup, typically exported by the
// installer via the user's shell configuration file.
const (
	// EnvOutput is the default output directory.
	EnvOutput = "YT2JELLYFIN_OUTPUT"

	// EnvArchive is the duplicate-skip archive file path.
	EnvArchive = "YT2JELLYFIN_ARCHIVE"
)

// Settings holds all configuration options.
//
// Precedence, lowest to highest: built-in defaults, the JSON config
// file, environment variables, command-line flags. Settings are
// resolved once at startup and never mutated afterwards.
type Settings struct {
	// OutputDir is the root directory downloads are placed under.
	OutputDir string `json:"output_dir"`

	// ArchivePath is the file the downloader records finished
	// identifiers in. The file is owned and interpreted by the
	// downloader; it is only located here.
	ArchivePath string `json:"archive_path"`

	// UseArchive enables duplicate skipping via the archive file.
	UseArchive bool `json:"use_archive"`

	// EmbedThumbnail embeds the item thumbnail as MP3 cover art.
	EmbedThumbnail bool `json:"embed_thumbnail"`

	// KeepVideo keeps the intermediate video file after audio extraction.
	KeepVideo bool `json:"keep_video"`

	// EnforceOverrides re-asserts custom artist/album values as ID3
	// frames on the files a run produced.
	EnforceOverrides bool `json:"enforce_overrides"`

	// AudioQuality is the extraction quality passed through to the
	// downloader ("0" is best VBR).
	AudioQuality string `json:"audio_quality"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	return &Settings{
		OutputDir:        filepath.Join(homeDir, "Music"),
		ArchivePath:      filepath.Join(homeDir, ".local", "share", "yt2jellyfin", "archive.txt"),
		UseArchive:       true,
		EmbedThumbnail:   true,
		KeepVideo:        false,
		EnforceOverrides: true,
		AudioQuality:     "0",
	}
}

// DefaultConfigPath returns the default config file location.
func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "yt2jellyfin", "config.json")
}

// Load reads settings from a JSON file and applies environment
// overrides. A missing file is not an error; defaults are used.
func Load(path string) (*Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			settings.applyEnv()
			return settings, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	settings.applyEnv()
	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// applyEnv layers the installer-exported environment variables over
// whatever the file provided.
func (s *Settings) applyEnv() {
	if v := os.Getenv(EnvOutput); v != "" {
		s.OutputDir = v
	}
	if v := os.Getenv(EnvArchive); v != "" {
		s.ArchivePath = v
	}
}
