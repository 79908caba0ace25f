package layout

import (
	"path/filepath"

	"github.com/yt2jellyfin/yt2jellyfin/internal/model"
)

// Downloader placeholder expressions, resolved by the external tool per
// item at file-write time. The comma form falls back left to right; the
// pipe form supplies a literal default when every field is missing.
const (
	// title of the item, always present.
	segTitle = "%(title)s.%(ext)s"

	// uploader with channel fallback, first-level folder.
	segArtist = "%(uploader,channel)s"

	// album wins over playlist title; standalone uploads with neither
	// land in a Singles bucket.
	segAlbumFirst = "%(album,playlist_title|Singles)s"

	// playlist title wins over album, with the item title as the last
	// resort so a bare video still gets a folder.
	segPlaylistFirst = "%(playlist_title,album,title)s"

	// two-digit index prefix emitted only when the item has a playlist
	// index.
	segIndexedTitle = "%(playlist_index&{:02d} - |)s%(title)s.%(ext)s"
)

// Metadata field names used in override directives.
const (
	FieldArtist = "artist"
	FieldAlbum  = "album"
)

// Override is a metadata-override directive: an instruction forcing an
// embedded file-metadata field to a fixed value for every item in the
// batch, regardless of what the source would otherwise supply.
type Override struct {
	Field string
	Value string
}

// Resolve computes the output path template and the ordered
// metadata-override directives for a request.
//
// The path template nests folder segments according to the layout mode:
//
//	Flat:           outputDir/<title>
//	Default:        outputDir/<uploader|channel>/<album|playlistTitle|Singles>/<title>
//	PlaylistFolder: outputDir/<uploader|channel>/<playlistTitle|album|title>/<index - ><title>
//
// A custom artist replaces the first segment, a custom album the
// second; both also emit override directives (artist first, then
// album). Flat mode has no segments to replace, but the directives are
// still emitted so the embedded metadata reflects the override even
// though the path does not.
//
// Resolve is a pure function of the request and cannot fail.
func Resolve(req *model.DownloadRequest) (string, []Override) {
	overrides := resolveOverrides(req)

	if req.Layout == model.LayoutFlat {
		return filepath.Join(req.OutputDir, segTitle), overrides
	}

	artist := segArtist
	if req.CustomArtist != "" {
		artist = model.SanitizeFileName(req.CustomArtist)
	}

	var folder, file string
	switch req.Layout {
	case model.LayoutPlaylistFolder:
		folder, file = segPlaylistFirst, segIndexedTitle
	default:
		folder, file = segAlbumFirst, segTitle
	}
	if req.CustomAlbum != "" {
		folder = model.SanitizeFileName(req.CustomAlbum)
	}

	return filepath.Join(req.OutputDir, artist, folder, file), overrides
}

// resolveOverrides emits the directives for custom artist/album. The
// directive values are the literal inputs: the path segment is
// sanitized for the filesystem, the embedded tag stays exact.
func resolveOverrides(req *model.DownloadRequest) []Override {
	var overrides []Override
	if req.CustomArtist != "" {
		overrides = append(overrides, Override{Field: FieldArtist, Value: req.CustomArtist})
	}
	if req.CustomAlbum != "" {
		overrides = append(overrides, Override{Field: FieldAlbum, Value: req.CustomAlbum})
	}
	return overrides
}
