package model

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// LayoutMode selects how downloaded files are nested into folders
// under the output directory.
type LayoutMode int

const (
	// LayoutDefault organizes files as Artist/Album/Title, treating
	// standalone uploads as singles.
	LayoutDefault LayoutMode = iota

	// LayoutFlat places every file directly in the output directory.
	LayoutFlat

	// LayoutPlaylistFolder organizes files as Artist/Playlist/NN - Title,
	// preserving playlist order in filenames.
	LayoutPlaylistFolder
)

// String returns the layout mode name as used in help text.
func (m LayoutMode) String() string {
	switch m {
	case LayoutFlat:
		return "flat"
	case LayoutPlaylistFolder:
		return "playlist-folder"
	default:
		return "default"
	}
}

// DownloadRequest describes one invocation of the downloader.
//
// A request is constructed once per run, validated, and never mutated
// afterwards. It carries everything needed to compute the output path
// template and the metadata-override directives, plus the pass-through
// switches for the external tool.
//
// Example:
//
//	req := &model.DownloadRequest{
//	    Input:     "https://www.youtube.com/watch?v=...",
//	    OutputDir: "/srv/media/music",
//	    UseArchive: true,
//	    EmbedThumbnail: true,
//	}
//	if err := req.Validate(); err != nil {
//	    // usage error
//	}
type DownloadRequest struct {
	// Input is a URL or a free-text search query.
	Input string

	// IsSearch indicates Input is a search query rather than a URL.
	IsSearch bool

	// SearchCount is the number of search results to fetch when
	// IsSearch is set. Must be >= 1; defaults to 1.
	SearchCount int

	// OutputDir is the absolute root directory files are written under.
	OutputDir string

	// Layout selects the folder nesting scheme.
	Layout LayoutMode

	// CustomArtist, when non-empty, overrides the artist path segment
	// and the embedded artist metadata for every item in the batch.
	CustomArtist string

	// CustomAlbum, when non-empty, overrides the album path segment
	// and the embedded album metadata for every item in the batch.
	CustomAlbum string

	// ArchivePath is the duplicate-skip archive file handed to the
	// downloader. Ignored when UseArchive is false.
	ArchivePath string

	// UseArchive enables skipping of previously downloaded identifiers.
	UseArchive bool

	// EmbedThumbnail embeds the item thumbnail as cover art.
	EmbedThumbnail bool

	// KeepVideo keeps the intermediate video file after extraction.
	KeepVideo bool

	// Quiet and Verbose control the external tool's output volume only.
	Quiet   bool
	Verbose bool
}

// Validate checks the request for usage errors. It does not perform
// any I/O; existence of OutputDir is the downloader's concern.
func (r *DownloadRequest) Validate() error {
	if strings.TrimSpace(r.Input) == "" {
		return errors.New("missing URL or search query")
	}
	if r.IsSearch && r.SearchCount < 1 {
		return fmt.Errorf("search result count must be at least 1, got %d", r.SearchCount)
	}
	if r.OutputDir == "" {
		return errors.New("output directory is not set")
	}
	if !filepath.IsAbs(r.OutputDir) {
		return fmt.Errorf("output directory must be an absolute path: %s", r.OutputDir)
	}
	return nil
}

// TargetArgument returns the single positional argument handed to the
// downloader: the raw input for URLs, or a search directive of the
// form "ytsearchN:query" when IsSearch is set. This is the only
// transformation applied to the raw input.
func (r *DownloadRequest) TargetArgument() string {
	if !r.IsSearch {
		return r.Input
	}
	count := r.SearchCount
	if count < 1 {
		count = 1
	}
	return fmt.Sprintf("ytsearch%d:%s", count, r.Input)
}

// HasOverrides reports whether any metadata override is requested.
func (r *DownloadRequest) HasOverrides() bool {
	return r.CustomArtist != "" || r.CustomAlbum != ""
}

// SanitizeFileName removes or replaces characters that are invalid in
// file/folder names.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars) are replaced with underscore
//   - Trailing dots are removed (Windows limitation)
//   - Multiple whitespace is collapsed to single space
//   - Trailing whitespace is removed
//
// Example:
//
//	SanitizeFileName("AC/DC") // Returns "AC_DC"
func SanitizeFileName(name string) string {
	// Replace invalid path/file characters
	invalidChars := regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	name = invalidChars.ReplaceAllString(name, "_")

	// Remove trailing dots
	name = regexp.MustCompile(`\.+$`).ReplaceAllString(name, "")

	// Replace multiple whitespace with single space
	name = regexp.MustCompile(`\s+`).ReplaceAllString(name, " ")

	// Remove trailing whitespace
	name = strings.TrimRight(name, " ")

	return name
}
