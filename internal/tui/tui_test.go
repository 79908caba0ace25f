package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yt2jellyfin/yt2jellyfin/internal/config"
	"github.com/yt2jellyfin/yt2jellyfin/internal/download"
	"github.com/yt2jellyfin/yt2jellyfin/internal/model"
)

func TestToggleLayout(t *testing.T) {
	tests := []struct {
		name    string
		current model.LayoutMode
		toggle  model.LayoutMode
		want    model.LayoutMode
	}{
		{"flat on", model.LayoutDefault, model.LayoutFlat, model.LayoutFlat},
		{"flat off", model.LayoutFlat, model.LayoutFlat, model.LayoutDefault},
		{"playlist replaces flat", model.LayoutFlat, model.LayoutPlaylistFolder, model.LayoutPlaylistFolder},
		{"playlist off", model.LayoutPlaylistFolder, model.LayoutPlaylistFolder, model.LayoutDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toggleLayout(tt.current, tt.toggle); got != tt.want {
				t.Errorf("toggleLayout(%v, %v) = %v, want %v", tt.current, tt.toggle, got, tt.want)
			}
		})
	}
}

func TestUpdate_ResetAfterComplete(t *testing.T) {
	m := NewModel(config.DefaultSettings())
	m.state = StateComplete
	m.written = 3
	m.skipped = 1
	m.logs = []LogEntry{{Message: "old", Level: download.LevelInfo}}
	m.textInput.SetValue("https://youtu.be/abc123")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	reset := updated.(Model)

	if reset.state != StateInput {
		t.Errorf("state = %v, want StateInput", reset.state)
	}
	if reset.written != 0 || reset.skipped != 0 {
		t.Errorf("counters = (%d, %d), want zeroed", reset.written, reset.skipped)
	}
	if len(reset.logs) != 0 {
		t.Errorf("logs should be cleared, got %v", reset.logs)
	}
	if reset.textInput.Value() != "" {
		t.Errorf("input should be cleared, got %q", reset.textInput.Value())
	}
	if reset.buffer == nil {
		t.Error("event buffer should be replaced, not nil")
	}
}

func TestEventBuffer_DrainEmpties(t *testing.T) {
	b := &eventBuffer{}
	b.add(download.ProgressEvent{Message: "one", Level: download.LevelInfo})
	b.add(download.ProgressEvent{Message: "two", Level: download.LevelVerbose})

	events := b.drain()
	if len(events) != 2 {
		t.Fatalf("drain() returned %d events, want 2", len(events))
	}
	if len(b.drain()) != 0 {
		t.Error("second drain() should be empty")
	}
}
