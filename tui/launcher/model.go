// Package launcher implements the interactive TUI: pick a folder, pick a
// port, start the server, and watch its lifecycle.
package launcher

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	ctrl "github.com/mattsolo1/servr/internal/launcher"
	"github.com/mattsolo1/servr/pkg/inspect"
	"github.com/mattsolo1/servr/pkg/pathutil"
	"github.com/mattsolo1/servr/pkg/projects"
	"github.com/mattsolo1/servr/pkg/server"
	"github.com/mattsolo1/servr/tui/theme"
)

// focus identifies which pane receives key input.
type focus int

const (
	focusPath focus = iota
	focusPort
	focusRecent
)

// statusKind colors the status line.
type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusError
)

// serverEventMsg wraps an asynchronous lifecycle notification for bubbletea.
type serverEventMsg server.Event

// Model is the launcher TUI model.
type Model struct {
	launcher *ctrl.Launcher

	pathInput textinput.Model
	portInput textinput.Model

	recent  []projects.Entry
	cursor  int
	entries []inspect.Entry

	focus      focus
	status     string
	statusKind statusKind
	serveURL   string

	width    int
	height   int
	keys     KeyMap
	showHelp bool
}

// New creates the TUI model around a launcher controller.
func New(l *ctrl.Launcher) Model {
	pi := textinput.New()
	pi.Placeholder = "/path/to/site"
	pi.CharLimit = 512
	pi.Width = 40
	pi.Focus()

	po := textinput.New()
	po.Placeholder = strconv.Itoa(l.DefaultPort())
	po.CharLimit = 5
	po.Width = 8

	return Model{
		launcher:  l,
		pathInput: pi,
		portInput: po,
		recent:    l.ListRecent(0),
		keys:      defaultKeyMap,
		status:    "Pick a folder to serve",
	}
}

// Init starts listening for lifecycle events.
func (m Model) Init() tea.Cmd {
	return m.listenForEvents()
}

// listenForEvents blocks on the manager's event channel and re-arms itself
// after each delivery.
func (m Model) listenForEvents() tea.Cmd {
	return func() tea.Msg {
		return serverEventMsg(<-m.launcher.Events())
	}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case serverEventMsg:
		switch msg.Type {
		case server.EventStarted:
			m.status = fmt.Sprintf("Server running on port %d", msg.Port)
			m.statusKind = statusSuccess
		case server.EventStopped:
			m.status = "Server stopped"
			m.statusKind = statusInfo
			m.serveURL = ""
		case server.EventFailed:
			m.status = fmt.Sprintf("Server failed: %v", msg.Err)
			m.statusKind = statusError
			m.serveURL = ""
		}
		return m, m.listenForEvents()

	case tea.KeyMsg:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		_ = m.launcher.Stop()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Focus):
		m.focus = (m.focus + 1) % 3
		m.syncFocus()
		return m, nil

	case key.Matches(msg, m.keys.StartStop):
		return m.toggleServer()

	case key.Matches(msg, m.keys.ClearRecent):
		m.launcher.ClearRecent()
		m.recent = nil
		m.cursor = 0
		m.status = "Recent projects cleared"
		m.statusKind = statusInfo
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.loadFolder(m.pathInput.Value())
		return m, nil
	}

	switch m.focus {
	case focusRecent:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.recent)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			if m.cursor < len(m.recent) {
				m.pathInput.SetValue(m.recent[m.cursor].Path)
				m.loadFolder(m.recent[m.cursor].Path)
			}
		}
		return m, nil

	case focusPath:
		if key.Matches(msg, m.keys.Select) {
			m.loadFolder(m.pathInput.Value())
			return m, nil
		}
		var cmd tea.Cmd
		m.pathInput, cmd = m.pathInput.Update(msg)
		return m, cmd

	case focusPort:
		if key.Matches(msg, m.keys.Select) {
			return m.toggleServer()
		}
		var cmd tea.Cmd
		m.portInput, cmd = m.portInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

// syncFocus moves textinput focus to match the focused pane.
func (m *Model) syncFocus() {
	m.pathInput.Blur()
	m.portInput.Blur()
	switch m.focus {
	case focusPath:
		m.pathInput.Focus()
	case focusPort:
		m.portInput.Focus()
	}
}

// loadFolder validates the path and refreshes the contents pane.
func (m *Model) loadFolder(path string) {
	if strings.TrimSpace(path) == "" {
		return
	}
	path, err := pathutil.Expand(path)
	if err != nil {
		m.entries = nil
		m.status = err.Error()
		m.statusKind = statusError
		return
	}
	entries, err := m.launcher.ListFolder(path)
	if err != nil {
		m.entries = nil
		m.status = err.Error()
		m.statusKind = statusError
		return
	}
	m.entries = entries
	m.status = fmt.Sprintf("%d items in %s", len(entries), path)
	m.statusKind = statusInfo
}

// port returns the entered port, falling back to the configured default.
func (m Model) port() int {
	raw := strings.TrimSpace(m.portInput.Value())
	if raw == "" {
		return m.launcher.DefaultPort()
	}
	port, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	return port
}

// toggleServer starts the server if idle, stops it if active.
func (m Model) toggleServer() (tea.Model, tea.Cmd) {
	if m.launcher.IsRunning() {
		if err := m.launcher.Stop(); err != nil {
			m.status = err.Error()
			m.statusKind = statusError
		}
		return m, nil
	}

	dir, err := pathutil.Expand(strings.TrimSpace(m.pathInput.Value()))
	if err != nil {
		m.status = err.Error()
		m.statusKind = statusError
		return m, nil
	}
	res, err := m.launcher.Start(dir, m.port(), true)
	if err != nil {
		m.status = err.Error()
		m.statusKind = statusError
		return m, nil
	}

	m.serveURL = res.URL
	m.status = fmt.Sprintf("Starting server for %s", dir)
	m.statusKind = statusInfo
	m.recent = m.launcher.ListRecent(0)
	return m, nil
}

// View renders the TUI.
func (m Model) View() string {
	t := theme.DefaultTheme

	if m.showHelp {
		return m.helpView(t)
	}

	header := t.Header.Render("servr") + t.Muted.Render("  serve a local folder over HTTP")

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.inputPane(t, "Folder", m.pathInput.View(), m.focus == focusPath),
		m.inputPane(t, "Port", m.portInput.View(), m.focus == focusPort),
		m.recentPane(t),
	)
	right := m.contentsPane(t)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	var statusLine string
	switch m.statusKind {
	case statusSuccess:
		statusLine = t.Success.Render(m.status)
	case statusError:
		statusLine = t.Error.Render(m.status)
	default:
		statusLine = t.Info.Render(m.status)
	}
	if m.serveURL != "" {
		statusLine += t.Muted.Render("  →  ") + t.Accent.Render(m.serveURL)
	}

	footer := m.footerView(t)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, statusLine, footer)
}

func (m Model) inputPane(t *theme.Theme, title, input string, focused bool) string {
	border := t.BlurredBorder
	if focused {
		border = t.FocusedBorder
	}
	return border.Width(46).Render(t.Title.Render(title) + "\n" + input)
}

func (m Model) recentPane(t *theme.Theme) string {
	var b strings.Builder
	b.WriteString(t.Title.Render("Recent projects"))
	b.WriteString("\n")

	if len(m.recent) == 0 {
		b.WriteString(t.Muted.Render("(none yet)"))
	}
	for i, entry := range m.recent {
		line := fmt.Sprintf("%s %s", entry.Path, t.Muted.Render(fmt.Sprintf("×%d", entry.Count)))
		if m.focus == focusRecent && i == m.cursor {
			line = t.Selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	border := t.BlurredBorder
	if m.focus == focusRecent {
		border = t.FocusedBorder
	}
	return border.Width(46).Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) contentsPane(t *theme.Theme) string {
	var b strings.Builder
	b.WriteString(t.Title.Render("Contents"))
	b.WriteString("\n")

	if len(m.entries) == 0 {
		b.WriteString(t.Muted.Render("(pick a folder)"))
	}

	max := len(m.entries)
	if m.height > 0 && max > m.height-8 {
		max = m.height - 8
		if max < 0 {
			max = 0
		}
	}
	for _, e := range m.entries[:max] {
		name := e.Name
		if e.IsDir {
			name += "/"
		}
		b.WriteString(fmt.Sprintf("%s %s\n", theme.EntryIcon(e), name))
	}
	if max < len(m.entries) {
		b.WriteString(t.Muted.Render(fmt.Sprintf("… %d more", len(m.entries)-max)))
	}

	return t.BlurredBorder.Width(40).Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) footerView(t *theme.Theme) string {
	var parts []string
	for _, b := range m.keys.shortHelp() {
		parts = append(parts, fmt.Sprintf("%s %s",
			t.Bold.Render(b.Help().Key), t.Muted.Render(b.Help().Desc)))
	}
	return t.Muted.Render(strings.Join(parts, "  •  "))
}

func (m Model) helpView(t *theme.Theme) string {
	bindings := []key.Binding{
		m.keys.Up, m.keys.Down, m.keys.Focus, m.keys.Select,
		m.keys.StartStop, m.keys.ClearRecent, m.keys.Refresh,
		m.keys.Help, m.keys.Quit,
	}

	var b strings.Builder
	b.WriteString(t.Header.Render("servr keybindings"))
	b.WriteString("\n\n")
	for _, binding := range bindings {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			t.Bold.Render(fmt.Sprintf("%-10s", binding.Help().Key)),
			binding.Help().Desc))
	}
	b.WriteString("\n")
	b.WriteString(t.Muted.Render("press any key to close"))
	return b.String()
}
