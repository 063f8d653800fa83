package ui

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SamuelSmthSmth/HyprPomo/internal/app"
	"github.com/SamuelSmthSmth/HyprPomo/internal/session"
	"github.com/SamuelSmthSmth/HyprPomo/internal/ui/theme"
	"github.com/SamuelSmthSmth/HyprPomo/internal/ui/views"
)

// Debug logging (enable by setting HYPRPOMO_DEBUG=1). Logs go to a
// file because stdout belongs to the TUI.
var debugLog *slog.Logger

func init() {
	if os.Getenv("HYPRPOMO_DEBUG") != "1" {
		return
	}
	f, err := os.OpenFile(filepath.Join(os.TempDir(), "hyprpomo-debug.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return
	}
	debugLog = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func debugf(msg string, args ...any) {
	if debugLog != nil {
		debugLog.Debug(msg, args...)
	}
}

// RootModel hosts the timer view and draws the surrounding chrome
type RootModel struct {
	app    *app.App
	keys   KeyMap
	help   help.Model
	width  int
	height int

	timer       views.TimerView
	helpVisible bool
}

// NewRootModel creates the root model. task carries the CLI task
// words, empty when the picker should decide.
func NewRootModel(application *app.App, task string) RootModel {
	h := help.New()
	h.ShowAll = true

	return RootModel{
		app:   application,
		keys:  DefaultKeyMap(),
		help:  h,
		timer: views.NewTimerView(application, task),
	}
}

// Init initializes the model
func (m RootModel) Init() tea.Cmd {
	debugf("init")
	return m.timer.Init()
}

// Update handles messages
func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	debugf("update", "msg", fmt.Sprintf("%T", msg))

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		// Header and footer take two lines each
		m.timer = m.timer.SetSize(m.width, m.height-4)

	case tea.KeyMsg:
		// The overlay toggles here; every other key falls through so
		// the timer keeps reacting underneath it.
		if key.Matches(msg, m.keys.Help) {
			m.helpVisible = !m.helpVisible
			return m, nil
		}
	}

	newTimer, cmd := m.timer.Update(msg)
	m.timer = newTimer.(views.TimerView)
	return m, cmd
}

// View renders the UI
func (m RootModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	contentHeight := m.height - 4
	var content string
	if m.helpVisible {
		content = m.renderHelp()
	} else {
		content = m.timer.View()
	}

	// Ensure content fills available space
	contentLines := strings.Count(content, "\n") + 1
	if contentLines < contentHeight {
		content += strings.Repeat("\n", contentHeight-contentLines)
	}
	sections = append(sections, content)

	sections = append(sections, m.renderFooter())

	return strings.Join(sections, "\n")
}

// renderHeader renders the header bar
func (m RootModel) renderHeader() string {
	styles := theme.Current.Styles

	title := styles.Header.Render("hyprpomo")

	right := ""
	if name := m.timer.TaskName(); name != "" && !m.timer.Picking() {
		right = styles.Footer.Render(name)
	}

	gap := m.width - lipgloss.Width(title) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return title + strings.Repeat(" ", gap) + right
}

// renderFooter renders the phase-aware key hints
func (m RootModel) renderFooter() string {
	styles := theme.Current.Styles

	key := func(k, desc string) string {
		return styles.HelpKey.Render(k) + styles.HelpDesc.Render(" "+desc)
	}
	sep := styles.HelpSeparator.Render(" │ ")

	var line1, line2 string

	switch {
	case m.timer.Picking():
		line1 = key("j/k", "navigate") + sep + key("enter", "start session")
		line2 = key("q", "quit")

	case m.timer.Confirming():
		line1 = key("y", "task finished") + sep + key("n", "keep it open")
		line2 = key("s", "skip break") + sep + key("q", "quit")

	default:
		switch m.timer.CurrentPhase() {
		case session.PhaseWork:
			line1 = key("p", "pause") + sep + key("s", "skip to break")
			line2 = key("q", "quit") + sep + key("?", "help")
		case session.PhaseFlow:
			line1 = key("b", "end flow, take break") + sep +
				key("s", "skip to break") + sep +
				key("p", "pause")
			line2 = key("q", "quit") + sep + key("?", "help")
		case session.PhaseBreak, session.PhaseLongBreak:
			line1 = key("s", "skip break") + sep + key("p", "pause")
			line2 = key("q", "quit") + sep + key("?", "help")
		default:
			line1 = key("q", "quit") + sep + key("?", "help")
		}
	}

	var lines []string
	if line1 != "" {
		lines = append(lines, line1)
	}
	if line2 != "" {
		lines = append(lines, line2)
	}
	return strings.Join(lines, "\n")
}

// renderHelp renders the help overlay
func (m RootModel) renderHelp() string {
	styles := theme.Current.Styles

	var b strings.Builder
	b.WriteString(styles.Title.Render("Keybindings"))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n\n")
	b.WriteString(styles.Faint.Render("The clock keeps running. Press ? to close."))
	return b.String()
}
