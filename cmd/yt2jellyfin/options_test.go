package main

import (
	"testing"

	"github.com/yt2jellyfin/yt2jellyfin/internal/config"
	"github.com/yt2jellyfin/yt2jellyfin/internal/model"
)

func TestParseArgs_Defaults(t *testing.T) {
	opts, err := parseArgs([]string{"https://youtu.be/abc123"})
	if err != nil {
		t.Fatalf("parseArgs() error = %v", err)
	}
	if opts.input != "https://youtu.be/abc123" {
		t.Errorf("input = %q", opts.input)
	}
	if opts.number != 1 {
		t.Errorf("number = %d, want 1", opts.number)
	}
	if opts.flat || opts.playlistFolder {
		t.Error("no layout selector should be set by default")
	}
}

func TestParseArgs_UnknownFlag(t *testing.T) {
	if _, err := parseArgs([]string{"--bogus", "https://youtu.be/abc123"}); err == nil {
		t.Error("unknown flag should be a usage error")
	}
}

func TestParseArgs_ConflictingLayouts(t *testing.T) {
	if _, err := parseArgs([]string{"-f", "-p", "https://youtu.be/abc123"}); err == nil {
		t.Error("--flat with --playlist-folder should be a usage error")
	}
}

func TestParseArgs_BadNumber(t *testing.T) {
	if _, err := parseArgs([]string{"-n", "0", "query"}); err == nil {
		t.Error("--number 0 should be a usage error")
	}
	if _, err := parseArgs([]string{"-n", "-2", "query"}); err == nil {
		t.Error("negative --number should be a usage error")
	}
}

func TestParseArgs_TooManyArguments(t *testing.T) {
	if _, err := parseArgs([]string{"url1", "url2"}); err == nil {
		t.Error("more than one positional argument should be a usage error")
	}
}

func TestParseArgs_ShortAndLongForms(t *testing.T) {
	short, err := parseArgs([]string{"-o", "/music", "-A", "X", "-a", "Y", "-s", "-n", "3", "q"})
	if err != nil {
		t.Fatalf("parseArgs(short) error = %v", err)
	}
	long, err := parseArgs([]string{"--output", "/music", "--artist", "X", "--album", "Y", "--search", "--number", "3", "q"})
	if err != nil {
		t.Fatalf("parseArgs(long) error = %v", err)
	}
	if *short != *long {
		t.Errorf("short and long forms disagree: %+v vs %+v", short, long)
	}
}

func TestBuildRequest_FlagsOverrideSettings(t *testing.T) {
	settings := &config.Settings{
		OutputDir:      "/from/settings",
		ArchivePath:    "/archive.txt",
		UseArchive:     true,
		EmbedThumbnail: true,
	}

	opts, err := parseArgs([]string{"-o", "/from/flag", "--no-archive", "--no-thumbnail", "-p", "https://youtu.be/abc"})
	if err != nil {
		t.Fatal(err)
	}
	req := buildRequest(opts, settings)

	if req.OutputDir != "/from/flag" {
		t.Errorf("OutputDir = %q, want flag value", req.OutputDir)
	}
	if req.UseArchive {
		t.Error("--no-archive should disable the archive")
	}
	if req.EmbedThumbnail {
		t.Error("--no-thumbnail should disable thumbnail embedding")
	}
	if req.Layout != model.LayoutPlaylistFolder {
		t.Errorf("Layout = %v, want playlist-folder", req.Layout)
	}
}

func TestBuildRequest_SettingsAsFallback(t *testing.T) {
	settings := &config.Settings{
		OutputDir:      "/from/settings",
		ArchivePath:    "/archive.txt",
		UseArchive:     true,
		EmbedThumbnail: true,
	}

	opts, err := parseArgs([]string{"https://youtu.be/abc"})
	if err != nil {
		t.Fatal(err)
	}
	req := buildRequest(opts, settings)

	if req.OutputDir != "/from/settings" {
		t.Errorf("OutputDir = %q, want settings value", req.OutputDir)
	}
	if !req.UseArchive || req.ArchivePath != "/archive.txt" {
		t.Errorf("archive settings not carried: %+v", req)
	}
	if req.Layout != model.LayoutDefault {
		t.Errorf("Layout = %v, want default", req.Layout)
	}
}

func TestBuildRequest_Search(t *testing.T) {
	opts, err := parseArgs([]string{"-s", "-n", "5", "lofi hip hop"})
	if err != nil {
		t.Fatal(err)
	}
	req := buildRequest(opts, config.DefaultSettings())

	if !req.IsSearch || req.SearchCount != 5 {
		t.Errorf("search not carried: %+v", req)
	}
	if got := req.TargetArgument(); got != "ytsearch5:lofi hip hop" {
		t.Errorf("TargetArgument() = %q", got)
	}
}
