package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/yt2jellyfin/yt2jellyfin/internal/config"
	"github.com/yt2jellyfin/yt2jellyfin/internal/model"
)

// options captures user-supplied CLI parameters before config/env
// enrichment.
type options struct {
	output         string
	search         bool
	number         int
	flat           bool
	playlistFolder bool
	album          string
	artist         string
	noArchive      bool
	noThumbnail    bool
	keepVideo      bool
	quiet          bool
	verbose        bool
	help           bool
	update         bool
	check          bool

	input string
}

// newFlagSet declares the CLI surface on a fresh flag set bound to o.
func (o *options) newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("yt2jellyfin", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVarP(&o.output, "output", "o", "", "output directory (overrides config and YT2JELLYFIN_OUTPUT)")
	fs.BoolVarP(&o.search, "search", "s", false, "treat the argument as a search query instead of a URL")
	fs.IntVarP(&o.number, "number", "n", 1, "number of search results to fetch")
	fs.BoolVarP(&o.flat, "flat", "f", false, "place files directly in the output directory")
	fs.BoolVarP(&o.playlistFolder, "playlist-folder", "p", false, "organize files as Artist/Playlist/NN - Title")
	fs.StringVarP(&o.album, "album", "a", "", "force the album folder and metadata")
	fs.StringVarP(&o.artist, "artist", "A", "", "force the artist folder and metadata")
	fs.BoolVar(&o.noArchive, "no-archive", false, "do not skip previously downloaded items")
	fs.BoolVar(&o.noThumbnail, "no-thumbnail", false, "do not embed the thumbnail as cover art")
	fs.BoolVar(&o.keepVideo, "keep-video", false, "keep the intermediate video file")
	fs.BoolVarP(&o.quiet, "quiet", "q", false, "suppress downloader output")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "show verbose output")
	fs.BoolVarP(&o.help, "help", "h", false, "show this help")
	fs.BoolVar(&o.update, "update", false, "update the external downloader and exit")
	fs.BoolVar(&o.check, "check", false, "check external dependencies and exit")

	return fs
}

// parseArgs parses the command line into options. Usage errors (unknown
// flags, bad values, conflicting layout selectors) are returned, never
// printed here.
func parseArgs(argv []string) (*options, error) {
	opts := &options{}
	fs := opts.newFlagSet()

	if err := fs.Parse(argv); err != nil {
		return nil, err
	}

	if opts.flat && opts.playlistFolder {
		return nil, errors.New("--flat and --playlist-folder are mutually exclusive")
	}
	if opts.number < 1 {
		return nil, fmt.Errorf("--number must be at least 1, got %d", opts.number)
	}
	if fs.NArg() > 1 {
		return nil, fmt.Errorf("expected one URL or search query, got %d arguments", fs.NArg())
	}
	if fs.NArg() == 1 {
		opts.input = fs.Arg(0)
	}

	return opts, nil
}

// buildRequest combines parsed flags with resolved settings into an
// immutable download request.
func buildRequest(opts *options, settings *config.Settings) *model.DownloadRequest {
	outputDir := settings.OutputDir
	if opts.output != "" {
		outputDir = opts.output
	}

	mode := model.LayoutDefault
	switch {
	case opts.flat:
		mode = model.LayoutFlat
	case opts.playlistFolder:
		mode = model.LayoutPlaylistFolder
	}

	return &model.DownloadRequest{
		Input:          opts.input,
		IsSearch:       opts.search,
		SearchCount:    opts.number,
		OutputDir:      outputDir,
		Layout:         mode,
		CustomArtist:   opts.artist,
		CustomAlbum:    opts.album,
		ArchivePath:    settings.ArchivePath,
		UseArchive:     settings.UseArchive && !opts.noArchive,
		EmbedThumbnail: settings.EmbedThumbnail && !opts.noThumbnail,
		KeepVideo:      settings.KeepVideo || opts.keepVideo,
		Quiet:          opts.quiet,
		Verbose:        opts.verbose,
	}
}
