package download

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/yt2jellyfin/yt2jellyfin/internal/archive"
	"github.com/yt2jellyfin/yt2jellyfin/internal/audio"
	"github.com/yt2jellyfin/yt2jellyfin/internal/config"
	"github.com/yt2jellyfin/yt2jellyfin/internal/layout"
	"github.com/yt2jellyfin/yt2jellyfin/internal/model"
	"github.com/yt2jellyfin/yt2jellyfin/internal/ytdlp"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a download progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// runner is the slice of the downloader client the Manager needs.
type runner interface {
	Run(ctx context.Context, args []string, onLine func(line string)) error
}

// prober verifies the external binaries are present.
type prober func() error

// Manager coordinates one download run: probe dependencies, resolve
// the layout, invoke the external downloader, and re-assert metadata
// overrides on the files it produced.
type Manager struct {
	settings *config.Settings
	client   runner
	probe    prober
	tagger   *audio.Tagger

	onProgress func(ProgressEvent)

	mu           sync.Mutex
	destinations []string
	skipped      int
}

// NewManager creates a new download Manager.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		settings:   settings,
		client:     ytdlp.New(),
		probe:      ytdlp.Probe,
		tagger:     audio.NewTagger(),
		onProgress: onProgress,
	}
}

// Download runs the request to completion. The external tool's failure
// is reported as a binary outcome; no retry is attempted.
func (m *Manager) Download(ctx context.Context, req *model.DownloadRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if err := m.probe(); err != nil {
		return err
	}

	if req.UseArchive && req.ArchivePath != "" {
		if err := archive.Prepare(req.ArchivePath); err != nil {
			return fmt.Errorf("preparing archive directory: %w", err)
		}
		if n, err := archive.Count(req.ArchivePath); err == nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Archive has %d entries: %s", n, req.ArchivePath), Level: LevelVerbose})
		}
	}

	template, overrides := layout.Resolve(req)
	m.progress(ProgressEvent{Message: fmt.Sprintf("Layout: %s", req.Layout), Level: LevelVerbose})
	m.progress(ProgressEvent{Message: fmt.Sprintf("Output template: %s", template), Level: LevelVerbose})

	args := ytdlp.BuildArgs(req, template, overrides, m.settings.AudioQuality)
	m.progress(ProgressEvent{Message: fmt.Sprintf("Downloading %s", req.TargetArgument()), Level: LevelInfo})

	if err := m.client.Run(ctx, args, m.handleLine); err != nil {
		if code := ytdlp.ExitCode(err); code > 0 {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Downloader exited with status %d", code), Level: LevelError})
		}
		return fmt.Errorf("downloader failed: %w", err)
	}

	if m.settings.EnforceOverrides && len(overrides) > 0 {
		m.applyOverrides(overrides)
	}

	done, skipped := m.Stats()
	msg := fmt.Sprintf("Done, %d file(s) written", done)
	if skipped > 0 {
		msg += fmt.Sprintf(", %d already in archive", skipped)
	}
	m.progress(ProgressEvent{Message: msg, Level: LevelSuccess})

	return nil
}

// Destinations returns the MP3 paths the run produced, harvested from
// the downloader's own output.
func (m *Manager) Destinations() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.destinations...)
}

// Stats returns how many files were written and how many items were
// skipped via the archive.
func (m *Manager) Stats() (written, skipped int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.destinations), m.skipped
}

// handleLine turns one line of downloader output into progress state.
func (m *Manager) handleLine(line string) {
	if dest, ok := destinationFromLine(line); ok {
		m.mu.Lock()
		m.destinations = append(m.destinations, dest)
		m.mu.Unlock()
		m.progress(ProgressEvent{Message: fmt.Sprintf("Writing %s", filepath.Base(dest)), Level: LevelInfo})
		return
	}
	if isArchiveSkip(line) {
		m.mu.Lock()
		m.skipped++
		m.mu.Unlock()
		m.progress(ProgressEvent{Message: strings.TrimSpace(line), Level: LevelInfo})
		return
	}
	m.progress(ProgressEvent{Message: line, Level: classifyLine(line)})
}

// applyOverrides re-asserts the override directives on every produced
// file. Failures are warnings; the download itself succeeded.
func (m *Manager) applyOverrides(overrides []layout.Override) {
	for _, path := range m.Destinations() {
		if err := m.tagger.Apply(path, overrides); err != nil {
			m.progress(ProgressEvent{Message: fmt.Sprintf("Error re-tagging %s: %v", filepath.Base(path), err), Level: LevelWarning})
			continue
		}
		m.progress(ProgressEvent{Message: fmt.Sprintf("Re-tagged %s", filepath.Base(path)), Level: LevelVerbose})
	}
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
