package ui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/weatherpane/internal/prefs"
	"github.com/five82/weatherpane/internal/sprite"
	"github.com/five82/weatherpane/internal/state"
)

const (
	defaultFrameInterval = 250 * time.Millisecond
	logOverlayLines      = 200
)

// Options configure the widget.
type Options struct {
	Loop          *state.Loop
	Renderer      *sprite.Renderer
	FrameInterval time.Duration
	Title         string
	ThemeName     string
	Fullscreen    bool

	// PrefsPath is where theme and fullscreen choices are saved. Empty
	// disables saving.
	PrefsPath string
	LogPath   string
	Logger    *slog.Logger
}

type overlay int

const (
	overlayNone overlay = iota
	overlayHelp
	overlayLogs
)

// Model is the Bubble Tea model driving the widget. Every tick it runs one
// state.Loop iteration, so all display state stays on the UI goroutine.
type Model struct {
	loop      *state.Loop
	renderer  *sprite.Renderer
	logger    *slog.Logger
	interval  time.Duration
	title     string
	prefsPath string
	logPath   string

	theme   Theme
	keys    keyMap
	help    help.Model
	logView viewport.Model

	width      int
	height     int
	fullscreen bool
	overlay    overlay
	renderErr  string
}

// New creates the widget model.
func New(opts Options) Model {
	interval := opts.FrameInterval
	if interval <= 0 {
		interval = defaultFrameInterval
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	loop := opts.Loop
	if loop == nil {
		loop = state.NewLoop(nil, nil, nil)
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = sprite.NewRenderer(sprite.ProtocolHalfblocks, 32, 16, lipgloss.ColorProfile())
	}

	m := Model{
		loop:       loop,
		renderer:   renderer,
		logger:     logger,
		interval:   interval,
		title:      opts.Title,
		prefsPath:  opts.PrefsPath,
		logPath:    opts.LogPath,
		theme:      GetTheme(opts.ThemeName),
		keys:       defaultKeyMap(),
		help:       help.New(),
		logView:    viewport.New(72, 16),
		fullscreen: opts.Fullscreen,
	}
	m.logView.KeyMap = m.keys.viewportKeys()
	m.styleHelp()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.HideCursor, tickCmd(m.interval)}
	if m.title != "" {
		cmds = append(cmds, tea.SetWindowTitle(m.title))
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
		m.help.Width = msg.Width
		m.resizeLogView()
		return m, nil

	case tickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleTick runs one update-loop iteration and schedules the next frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.loop.Tick() > 0 {
		m.prerenderIcon()
	}
	if m.overlay == overlayLogs {
		m.refreshLogs()
	}
	return m, tickCmd(m.interval)
}

// prerenderIcon renders the visible icon once outside View so failures are
// logged a single time per change.
func (m *Model) prerenderIcon() {
	entry, ok := m.loop.Catalog().Visible()
	if !ok {
		m.renderErr = ""
		return
	}
	if _, err := m.renderer.Render(entry); err != nil {
		if err.Error() != m.renderErr {
			m.logger.Warn("icon render failed", "icon", entry.ID, "error", err)
		}
		m.renderErr = err.Error()
		return
	}
	m.renderErr = ""
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.overlay == overlayHelp {
		// Any key closes help
		m.overlay = overlayNone
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Escape):
		m.overlay = overlayNone

	case key.Matches(msg, m.keys.Help):
		m.overlay = overlayHelp

	case key.Matches(msg, m.keys.Logs):
		if m.overlay == overlayLogs {
			m.overlay = overlayNone
			return m, nil
		}
		m.overlay = overlayLogs
		m.refreshLogs()
		m.logView.GotoBottom()

	case key.Matches(msg, m.keys.Fullscreen):
		m.fullscreen = !m.fullscreen
		m.savePrefs()
		if m.fullscreen {
			return m, tea.EnterAltScreen
		}
		return m, tea.ExitAltScreen

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.styleHelp()
		m.savePrefs()

	case m.overlay == overlayLogs:
		var cmd tea.Cmd
		m.logView, cmd = m.logView.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, Fullscreen: m.fullscreen}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save prefs failed", "path", m.prefsPath, "error", err)
	}
}

func (m *Model) styleHelp() {
	styles := m.theme.Styles()
	m.help.Styles.ShortKey = styles.AccentText
	m.help.Styles.ShortDesc = styles.FaintText
	m.help.Styles.ShortSeparator = styles.FaintText
	m.help.Styles.FullKey = styles.AccentText
	m.help.Styles.FullDesc = styles.Text
	m.help.Styles.FullSeparator = styles.FaintText
}

// Messages

type tickMsg time.Time

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// ends.
func Run(ctx context.Context, opts Options) error {
	m := New(opts)
	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if m.fullscreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	_, err := tea.NewProgram(m, progOpts...).Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
