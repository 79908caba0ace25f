// Package tui provides a Bubble Tea terminal user interface for
// yt2jellyfin.
package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/yt2jellyfin/yt2jellyfin/internal/config"
	"github.com/yt2jellyfin/yt2jellyfin/internal/download"
	"github.com/yt2jellyfin/yt2jellyfin/internal/model"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateDownloading
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   download.ProgressLevel
}

// eventBuffer collects progress events from the manager goroutine for
// the UI to drain on its own schedule.
type eventBuffer struct {
	mu     sync.Mutex
	events []download.ProgressEvent
}

func (b *eventBuffer) add(e download.ProgressEvent) {
	b.mu.Lock()
	b.events = append(b.events, e)
	b.mu.Unlock()
}

func (b *eventBuffer) drain() []download.ProgressEvent {
	b.mu.Lock()
	defer b.mu.Unlock()
	events := b.events
	b.events = nil
	return events
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	settings  *config.Settings
	logs      []LogEntry
	err       error

	ctx    context.Context
	cancel context.CancelFunc

	buffer *eventBuffer

	written int
	skipped int

	// Options
	search      bool
	layout      model.LayoutMode
	noThumbnail bool
	verbose     bool

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel(settings *config.Settings) Model {
	ti := textinput.New()
	ti.Placeholder = "https://www.youtube.com/watch?v=... or a search query"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		settings:  settings,
		logs:      make([]LogEntry, 0),
		buffer:    &eventBuffer{},
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// DownloadDoneMsg is sent when the download run finishes.
	DownloadDoneMsg struct {
		Written int
		Skipped int
		Err     error
	}

	// TickMsg drains buffered progress events.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateDownloading {
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "enter":
			if m.state == StateInput && m.textInput.Value() != "" {
				m.state = StateDownloading
				return m, tea.Batch(m.startDownload(), m.tick(), m.spinner.Tick)
			}

		case "s":
			if m.state == StateInput {
				m.search = !m.search
			}

		case "f":
			if m.state == StateInput {
				m.layout = toggleLayout(m.layout, model.LayoutFlat)
			}

		case "p":
			if m.state == StateInput {
				m.layout = toggleLayout(m.layout, model.LayoutPlaylistFolder)
			}

		case "t":
			if m.state == StateInput {
				m.noThumbnail = !m.noThumbnail
			}

		case "v":
			if m.state == StateInput {
				m.verbose = !m.verbose
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				// Reset for new download
				m.state = StateInput
				m.logs = nil
				m.err = nil
				m.written = 0
				m.skipped = 0
				m.buffer = &eventBuffer{}
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.textInput.SetValue("")
				m.textInput.Focus()
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case TickMsg:
		for _, event := range m.buffer.drain() {
			if event.Level == download.LevelVerbose && !m.verbose {
				continue
			}
			m.logs = append(m.logs, LogEntry{Message: event.Message, Level: event.Level})
		}
		// Keep only last 12 logs
		if len(m.logs) > 12 {
			m.logs = m.logs[len(m.logs)-12:]
		}
		if m.state == StateDownloading {
			cmds = append(cmds, m.tick())
		}

	case DownloadDoneMsg:
		m.written = msg.Written
		m.skipped = msg.Skipped
		if msg.Err != nil && m.ctx.Err() == nil {
			m.state = StateError
			m.err = msg.Err
		} else if m.ctx.Err() != nil {
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		} else {
			m.state = StateComplete
		}
	}

	// Update text input
	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// toggleLayout flips mode on and off, keeping the selectors mutually
// exclusive.
func toggleLayout(current, mode model.LayoutMode) model.LayoutMode {
	if current == mode {
		return model.LayoutDefault
	}
	return mode
}

// tick returns a command to drain progress events.
func (m Model) tick() tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("🎵 yt2jellyfin"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Download audio into your media library"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateDownloading:
		b.WriteString(m.viewDownloading())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Enter URL or search query:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	check := func(on bool) string {
		if on {
			return "[×]"
		}
		return "[ ]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Search instead of URL (s)\n", check(m.search)))
	b.WriteString(fmt.Sprintf("  %s Flat layout (f)\n", check(m.layout == model.LayoutFlat)))
	b.WriteString(fmt.Sprintf("  %s Playlist folders (p)\n", check(m.layout == model.LayoutPlaylistFolder)))
	b.WriteString(fmt.Sprintf("  %s Skip thumbnail embedding (t)\n", check(m.noThumbnail)))
	b.WriteString(fmt.Sprintf("  %s Verbose output (v)\n", check(m.verbose)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Output directory: %s", m.settings.OutputDir)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewDownloading() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Downloading..."))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	box := boxStyle.Render(fmt.Sprintf(
		"✨ Download Complete!\n\n"+
			"Files written: %d\n"+
			"Skipped (archive): %d",
		m.written,
		m.skipped,
	))
	b.WriteString(box)

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case download.LevelError:
			style = errorStyle
			prefix = "✗"
		case download.LevelWarning:
			style = warningStyle
			prefix = "!"
		case download.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case download.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: start • s: search • f: flat • p: playlist folders • t: thumbnail • v: verbose • esc: quit"
	case StateDownloading:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: new download • q: quit"
	}
	return ""
}

// startDownload runs the manager in the background.
func (m *Model) startDownload() tea.Cmd {
	buffer := m.buffer
	manager := download.NewManager(m.settings, buffer.add)

	req := &model.DownloadRequest{
		Input:          m.textInput.Value(),
		IsSearch:       m.search,
		SearchCount:    1,
		OutputDir:      m.settings.OutputDir,
		Layout:         m.layout,
		ArchivePath:    m.settings.ArchivePath,
		UseArchive:     m.settings.UseArchive,
		EmbedThumbnail: m.settings.EmbedThumbnail && !m.noThumbnail,
		KeepVideo:      m.settings.KeepVideo,
		Verbose:        m.verbose,
	}

	ctx := m.ctx
	return func() tea.Msg {
		err := manager.Download(ctx, req)
		written, skipped := manager.Stats()
		return DownloadDoneMsg{Written: written, Skipped: skipped, Err: err}
	}
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
