package download

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/yt2jellyfin/yt2jellyfin/internal/config"
	"github.com/yt2jellyfin/yt2jellyfin/internal/model"
)

// fakeRunner replays canned downloader output instead of executing
// anything.
type fakeRunner struct {
	lines []string
	err   error
	args  []string
}

func (f *fakeRunner) Run(_ context.Context, args []string, onLine func(string)) error {
	f.args = args
	for _, line := range f.lines {
		onLine(line)
	}
	return f.err
}

func testSettings(t *testing.T) *config.Settings {
	s := config.DefaultSettings()
	s.OutputDir = t.TempDir()
	s.ArchivePath = filepath.Join(t.TempDir(), "archive.txt")
	s.EnforceOverrides = false
	return s
}

func testManager(t *testing.T, runner *fakeRunner) (*Manager, *[]ProgressEvent) {
	events := &[]ProgressEvent{}
	m := NewManager(testSettings(t), func(e ProgressEvent) {
		*events = append(*events, e)
	})
	m.client = runner
	m.probe = func() error { return nil }
	return m, events
}

func testRequest(t *testing.T) *model.DownloadRequest {
	return &model.DownloadRequest{
		Input:     "https://youtu.be/abc123",
		OutputDir: t.TempDir(),
	}
}

func TestManager_DownloadSuccess(t *testing.T) {
	runner := &fakeRunner{lines: []string{
		"[youtube] abc123: Downloading webpage",
		"[download] Destination: /music/Artist/Album/Song.webm",
		"[ExtractAudio] Destination: /music/Artist/Album/Song.mp3",
		"Deleting original file /music/Artist/Album/Song.webm",
	}}
	m, events := testManager(t, runner)

	if err := m.Download(context.Background(), testRequest(t)); err != nil {
		t.Fatalf("Download() error = %v", err)
	}

	dests := m.Destinations()
	if len(dests) != 1 || dests[0] != "/music/Artist/Album/Song.mp3" {
		t.Errorf("Destinations() = %v", dests)
	}

	// Intermediate download destinations are not harvested.
	for _, d := range dests {
		if filepath.Ext(d) != ".mp3" {
			t.Errorf("unexpected destination %q", d)
		}
	}

	var success bool
	for _, e := range *events {
		if e.Level == LevelSuccess {
			success = true
		}
	}
	if !success {
		t.Error("a success event should be emitted")
	}
}

func TestManager_DownloadFailure(t *testing.T) {
	runner := &fakeRunner{
		lines: []string{"ERROR: [youtube] abc123: Video unavailable"},
		err:   errors.New("exit status 1"),
	}
	m, events := testManager(t, runner)

	err := m.Download(context.Background(), testRequest(t))
	if err == nil {
		t.Fatal("Download() should relay the downloader failure")
	}

	var sawError bool
	for _, e := range *events {
		if e.Level == LevelError {
			sawError = true
		}
	}
	if !sawError {
		t.Error("downloader ERROR lines should surface as error events")
	}
}

func TestManager_InvalidRequestRunsNothing(t *testing.T) {
	runner := &fakeRunner{}
	m, _ := testManager(t, runner)

	req := testRequest(t)
	req.Input = ""
	if err := m.Download(context.Background(), req); err == nil {
		t.Fatal("Download() should reject an invalid request")
	}
	if runner.args != nil {
		t.Error("the external tool must not be invoked on a usage error")
	}
}

func TestManager_MissingDependencyRunsNothing(t *testing.T) {
	runner := &fakeRunner{}
	m, _ := testManager(t, runner)
	m.probe = func() error { return errors.New("yt-dlp not found in PATH") }

	if err := m.Download(context.Background(), testRequest(t)); err == nil {
		t.Fatal("Download() should fail when a dependency is missing")
	}
	if runner.args != nil {
		t.Error("the external tool must not be invoked when probing fails")
	}
}

func TestManager_ArchiveSkipsCounted(t *testing.T) {
	runner := &fakeRunner{lines: []string{
		"[download] abc123: has already been recorded in the archive",
		"[download] def456: has already been recorded in the archive",
	}}
	m, _ := testManager(t, runner)

	if err := m.Download(context.Background(), testRequest(t)); err != nil {
		t.Fatalf("Download() error = %v", err)
	}

	written, skipped := m.Stats()
	if written != 0 || skipped != 2 {
		t.Errorf("Stats() = (%d, %d), want (0, 2)", written, skipped)
	}
}
