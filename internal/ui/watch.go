package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"drover/internal/services"
	"drover/internal/theme"
)

const refreshInterval = 2 * time.Second

// WatchKeyMap contains the watch view keyboard shortcuts
type WatchKeyMap struct {
	Refresh key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the bottom bar
func (k WatchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Refresh, k.Quit}
}

// FullHelp returns the expanded help view bindings
func (k WatchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Refresh, k.Quit}}
}

func newWatchKeyMap() WatchKeyMap {
	return WatchKeyMap{
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type snapshotMsg struct {
	snapshot *services.Snapshot
	err      error
}

type tickMsg time.Time

// WatchModel is the Bubble Tea model showing live sessions and their windows.
type WatchModel struct {
	watch  *services.WatchService
	keys   WatchKeyMap
	help   help.Model
	snap   *services.Snapshot
	err    error
	width  int
	height int
}

// NewWatchModel creates a new WatchModel
func NewWatchModel(watch *services.WatchService) *WatchModel {
	return &WatchModel{
		watch: watch,
		keys:  newWatchKeyMap(),
		help:  help.New(),
	}
}

// Init starts the first snapshot and the refresh ticker
func (m *WatchModel) Init() tea.Cmd {
	return tea.Batch(m.takeSnapshot(), tick())
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *WatchModel) takeSnapshot() tea.Cmd {
	return func() tea.Msg {
		snap, err := m.watch.Take(context.Background())
		return snapshotMsg{snapshot: snap, err: err}
	}
}

// Update handles messages
func (m *WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			return m, m.takeSnapshot()
		}
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.takeSnapshot(), tick())

	case snapshotMsg:
		m.snap = msg.snapshot
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

// View renders the session/window tree
func (m *WatchModel) View() string {
	var b strings.Builder

	b.WriteString(theme.TitleStyle.Render("drover watch"))
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(theme.ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	case m.snap == nil:
		b.WriteString(theme.MutedStyle.Render("Loading sessions..."))
		b.WriteString("\n")
	case len(m.snap.Sessions) == 0:
		b.WriteString(theme.MutedStyle.Render("No active sessions"))
		b.WriteString("\n")
	default:
		for _, s := range m.snap.Sessions {
			b.WriteString(theme.SessionStyle.Render(s.Name))
			b.WriteString(theme.MutedStyle.Render(fmt.Sprintf("  %d window(s)", len(s.Windows))))
			b.WriteString("\n")
			for _, w := range s.Windows {
				b.WriteString(theme.WindowStyle.Render(fmt.Sprintf("%d: %s", w.Index, w.Name)))
				b.WriteString("\n")
			}
		}
		b.WriteString(theme.MutedStyle.Render(
			fmt.Sprintf("\nUpdated %s", m.snap.TakenAt.Format("15:04:05"))))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}
