package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/daviddao/hlbar/internal/area"
	"github.com/daviddao/hlbar/internal/bar"
	"github.com/daviddao/hlbar/internal/command"
	"github.com/daviddao/hlbar/internal/config"
	"github.com/daviddao/hlbar/internal/imagecache"
	"github.com/daviddao/hlbar/internal/layout"
	"github.com/daviddao/hlbar/internal/logging"
	"github.com/daviddao/hlbar/internal/surface"
)

// --- Messages ---

// lineMsg carries one input line.
type lineMsg string

// inputClosedMsg reports the end of input; err is nil at EOF.
type inputClosedMsg struct{ err error }

type tickMsg time.Time

// redrawMsg drains the dirty bars. At most one is pending at a time, so all
// changes made in one turn share a redraw.
type redrawMsg struct{}

type configChangedMsg struct{}

// --- Key bindings ---

type keyMap struct {
	Quit    key.Binding
	Refresh key.Binding
	Help    key.Binding
}

var keys = keyMap{
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "redraw")),
	Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Refresh, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Refresh, k.Help, k.Quit}}
}

// --- Model ---

type barModel struct {
	reg     *bar.Registry
	disp    *command.Dispatcher
	style   *area.Style // shared by every area
	engine  layout.Engine
	images  *imagecache.Cache
	cfg     *config.Config
	cfgPath string
	watcher *config.Watcher
	log     *slog.Logger

	width  int
	height int
	rows   [2]string // rendered bar per dock

	redrawPending bool
	inputClosed   bool
	lines         int
	rejected      int
	redraws       int

	help     help.Model
	showHelp bool
}

func newBarModel(cfg *config.Config, cfgPath string, log *slog.Logger) barModel {
	reg := bar.NewRegistry(cfg.Bar.Screens)
	style := cfg.Style()
	return barModel{
		reg:     reg,
		disp:    command.NewDispatcher(reg, style, log),
		style:   style,
		engine:  cfg.Engine(),
		images:  imagecache.New(log),
		cfg:     cfg,
		cfgPath: cfgPath,
		log:     logging.Component(log, "ui"),
		help:    help.New(),
	}
}

func (m barModel) Init() tea.Cmd {
	return m.tickEvery()
}

func (m barModel) tickEvery() tea.Cmd {
	return tea.Tick(m.cfg.Clock.Interval.Duration, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m barModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			if m.watcher != nil {
				m.watcher.Close()
			}
			return m, tea.Quit

		case key.Matches(msg, keys.Refresh):
			m.reg.Invalidate()
			cmd := m.scheduleRedraw()
			return m, cmd

		case key.Matches(msg, keys.Help):
			m.showHelp = !m.showHelp
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.reg.Invalidate()
		cmd := m.scheduleRedraw()
		return m, cmd

	case lineMsg:
		m.lines++
		if err := m.disp.Handle(string(msg)); err != nil {
			m.rejected++
		}
		cmd := m.scheduleRedraw()
		return m, cmd

	case inputClosedMsg:
		m.inputClosed = true
		if msg.err != nil {
			m.log.Warn("input closed", "err", msg.err)
		} else {
			m.log.Info("end of input")
		}

	case tickMsg:
		m.reg.Tick(time.Time(msg))
		cmd := tea.Batch(m.scheduleRedraw(), m.tickEvery())
		return m, cmd

	case configChangedMsg:
		m.reload()
		cmd := m.scheduleRedraw()
		return m, cmd

	case redrawMsg:
		m.redrawPending = false
		m.redraw()
	}

	return m, nil
}

// scheduleRedraw returns a redraw command when bars are dirty and none is
// pending.
func (m *barModel) scheduleRedraw() tea.Cmd {
	if m.redrawPending || !m.reg.Dirty() {
		return nil
	}
	m.redrawPending = true
	return func() tea.Msg { return redrawMsg{} }
}

// redraw re-renders the dirty bars of screen 0. Dirty bars of other screens
// are drained without drawing.
func (m *barModel) redraw() {
	dirty := m.reg.TakeDirty()
	if m.width <= 0 {
		return
	}
	for _, b := range dirty {
		if b.Key.Screen != 0 {
			continue
		}
		t := surface.NewTerm(m.width, m.cfg.Bar.CellWidth, m.cfg.Bar.Height, m.images)
		m.engine.Render(t, b.Areas(), t.Width(), m.cfg.Bar.Height)
		m.rows[b.Key.Dock] = t.String()
	}
	m.redraws++
}

// reload re-reads the config, applies the new theme to the shared style and
// forgets cached icons. A config that fails to load keeps the old one.
func (m *barModel) reload() {
	if m.cfgPath != "" {
		cfg, err := config.LoadFromFile(m.cfgPath)
		if err != nil {
			m.log.Warn("config reload failed", "path", m.cfgPath, "err", err)
			return
		}
		if cfg.Bar.Screens != m.cfg.Bar.Screens {
			m.log.Warn("bar.screens change needs a restart", "old", m.cfg.Bar.Screens, "new", cfg.Bar.Screens)
		}
		m.cfg = cfg
		*m.style = *cfg.Style()
		m.engine = cfg.Engine()
		m.log.Info("config reloaded", "path", m.cfgPath)
	}
	m.images.Clear()
	m.reg.Invalidate()
}

// --- Styles ---

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9e9e9e"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4e4e4e"))
)

func (m barModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	lines := make([]string, max(m.height, 2))
	lines[0] = m.rows[area.Top]
	lines[len(lines)-1] = m.rows[area.Bottom]
	if len(lines) > 2 {
		lines[1] = m.renderStatus()
	}
	if m.showHelp && len(lines) > 3 {
		lines[len(lines)-2] = m.help.View(keys)
	}
	return truncateLines(strings.Join(lines, "\n"), m.width)
}

func (m barModel) renderStatus() string {
	left := fmt.Sprintf(" %d areas | %d lines | %d rejected", m.reg.Len(), m.lines, m.rejected)
	if m.inputClosed {
		left += " | input closed"
	}
	right := dimStyle.Render("?: help | q: quit ")
	gap := strings.Repeat(" ", max(0, m.width-lipgloss.Width(left)-lipgloss.Width(right)))
	return statusStyle.Render(left) + gap + right
}

// truncateLines truncates each line in content to at most width visible
// characters, preserving ANSI escape codes.
func truncateLines(content string, width int) string {
	if width <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if lipgloss.Width(line) > width {
			lines[i] = ansi.Truncate(line, width, "")
		}
	}
	return strings.Join(lines, "\n")
}
