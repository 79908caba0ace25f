package ytdlp

import (
	"fmt"

	"github.com/yt2jellyfin/yt2jellyfin/internal/layout"
	"github.com/yt2jellyfin/yt2jellyfin/internal/model"
)

// trackFromIndex maps the playlist index of each item onto its track
// number tag. Items outside a playlist interpolate to an empty string,
// the pattern fails to match, and the field is left alone.
const trackFromIndex = "%(playlist_index|)s:%(meta_track)s"

// BuildArgs assembles the downloader's argument list for a request.
// The resolved output template and override directives come from the
// layout resolver; the single URL-or-search-directive argument goes
// last.
func BuildArgs(req *model.DownloadRequest, template string, overrides []layout.Override, quality string) []string {
	args := []string{
		"--extract-audio",
		"--audio-format", "mp3",
		"--audio-quality", quality,
		"--embed-metadata",
	}

	if req.EmbedThumbnail {
		args = append(args, "--embed-thumbnail")
	}
	if req.KeepVideo {
		args = append(args, "--keep-video")
	}
	if req.UseArchive && req.ArchivePath != "" {
		args = append(args, "--download-archive", req.ArchivePath)
	}

	args = append(args, "--parse-metadata", trackFromIndex)
	for _, o := range overrides {
		args = append(args, "--parse-metadata", overrideDirective(o))
	}

	args = append(args, "--output", template)

	if req.Quiet {
		args = append(args, "--quiet")
	}
	if req.Verbose {
		args = append(args, "--verbose")
	}

	return append(args, req.TargetArgument())
}

// overrideDirective renders a metadata override in the downloader's
// FROM:TO parse syntax: the literal value is interpolated as FROM and
// captured whole into the meta_<field> target.
func overrideDirective(o layout.Override) string {
	return fmt.Sprintf("%s:%%(meta_%s)s", o.Value, o.Field)
}
