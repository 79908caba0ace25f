// Package layout computes output path templates and metadata-override
// directives from a download request.
//
// The templates use the external downloader's placeholder syntax and
// are resolved by it per item at file-write time; this package never
// touches the filesystem.
//
// # Resolving a request
//
//	template, overrides := layout.Resolve(req)
//	// template:  "/music/%(uploader,channel)s/%(album,playlist_title|Singles)s/%(title)s.%(ext)s"
//	// overrides: [{artist X} {album Y}] when -A/-a are given
//
// # Fallback orders
//
// The artist segment falls back uploader then channel in every nested
// mode. The second-level folder differs by mode: default mode prefers
// album over playlist title (standalone uploads are treated as
// Artist/Album with a Singles bucket when no album exists upstream),
// while playlist-folder mode prefers the playlist title.
package layout
