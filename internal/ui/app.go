package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ynqa/logu/internal/drain"
	"github.com/ynqa/logu/internal/prefs"
	"github.com/ynqa/logu/internal/state"
	"github.com/ynqa/logu/internal/view"
)

// QueueStatsFunc reports the ingestion queue depth and capacity.
type QueueStatsFunc func() (depth, capacity int)

// Options configures the UI.
type Options struct {
	Context        context.Context
	Store          *state.Store
	QueueStats     QueueStatsFunc
	RenderInterval time.Duration
	View           view.Options
	ParamStr       string
	ThemeName      string
	PrefsPath      string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx            context.Context
	store          *state.Store
	queueStats     QueueStatsFunc
	renderInterval time.Duration
	viewOpts       view.Options
	paramStr       string
	prefsPath      string

	// UI state
	keys     keyMap
	theme    Theme
	width    int
	height   int
	ready    bool
	frozen   bool
	showHelp bool

	// Data state
	snapshot state.Snapshot
	rows     []drain.Cluster
	total    int
	depth    int
	capacity int
	rate     lineRate

	// Cluster list
	viewport viewport.Model
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	interval := opts.RenderInterval
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}

	paramStr := opts.ParamStr
	if paramStr == "" {
		paramStr = drain.DefaultParamStr
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	return Model{
		ctx:            ctx,
		store:          opts.Store,
		queueStats:     opts.QueueStats,
		renderInterval: interval,
		viewOpts:       opts.View,
		paramStr:       paramStr,
		prefsPath:      prefsPath,
		keys:           DefaultKeyMap(),
		theme:          GetTheme(themeName),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.renderInterval),
	}
	// Fetch snapshot immediately on start
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store, m.queueStats))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentHeight := max(msg.Height-3, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, contentHeight)
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = contentHeight
		}
		m.ready = true
		m.refreshViewport()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		// A fetch issued before the display froze may still land here.
		if m.frozen {
			return m, nil
		}
		m.snapshot = msg.snapshot
		m.depth = msg.depth
		m.capacity = msg.capacity
		m.total = len(msg.snapshot.Clusters)
		m.rows = view.Project(msg.snapshot.Clusters, m.viewOpts)
		m.rate.Observe(msg.snapshot.Applied, time.Now())
		m.refreshViewport()
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	// Show help overlay if active
	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle help overlay
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		m.refreshViewport()

	case key.Matches(msg, m.keys.Freeze):
		m.frozen = !m.frozen
		// Catch up immediately when unfreezing
		if !m.frozen && m.store != nil {
			return m, fetchSnapshotCmd(m.store, m.queueStats)
		}

	case key.Matches(msg, m.keys.Up):
		m.viewport.LineUp(1)
	case key.Matches(msg, m.keys.Down):
		m.viewport.LineDown(1)
	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.ViewUp()
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.ViewDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.viewport.HalfViewUp()
	case key.Matches(msg, m.keys.HalfPageDown):
		m.viewport.HalfViewDown()
	}

	return m, nil
}

// handleTick processes the render tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// The pipeline cancels the context when ingestion fails fatally or
	// the process is signaled. Follow it down.
	if m.ctx.Err() != nil {
		return m, tea.Quit
	}

	var cmds []tea.Cmd

	// Fetch latest snapshot unless the display is frozen
	if m.store != nil && !m.frozen {
		cmds = append(cmds, fetchSnapshotCmd(m.store, m.queueStats))
	}

	// Schedule next tick
	cmds = append(cmds, tickCmd(m.renderInterval))

	return m, tea.Batch(cmds...)
}

// refreshViewport re-renders the cluster rows into the viewport.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderRows())
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	// Line 1: status bar
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	// Line 2: column header
	b.WriteString(m.renderColumnHeader())
	b.WriteString("\n")

	// Main content: cluster rows
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	// Last line: command bar
	b.WriteString(m.renderFooter())

	return b.String()
}

// Messages

type tickMsg time.Time

type snapshotMsg struct {
	snapshot state.Snapshot
	depth    int
	capacity int
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store, stats QueueStatsFunc) tea.Cmd {
	return func() tea.Msg {
		msg := snapshotMsg{snapshot: store.Snapshot()}
		if stats != nil {
			msg.depth, msg.capacity = stats()
		}
		return msg
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
