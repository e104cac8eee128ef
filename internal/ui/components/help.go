package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/hartl/internal/ui/msgs"
	"github.com/sadopc/hartl/internal/ui/theme"
)

// mouseHelp lists the pointer gestures, which have no key binding.
var mouseHelp = [][2]string{
	{"left click", "expand / collapse entry"},
	{"right drag", "pan"},
	{"middle click", "reset view"},
	{"wheel", "scroll; shift/ctrl/alt + wheel zooms"},
	{"paste / drop", "open a .har file"},
}

// Help is a help overlay showing keybindings.
type Help struct {
	Visible bool
	model   help.Model
	keys    help.KeyMap
	theme   theme.Theme
	width   int
	height  int
}

// NewHelp creates a new help overlay for keys.
func NewHelp(t theme.Theme, keys help.KeyMap) Help {
	m := Help{
		keys:  keys,
		model: help.New(),
	}
	m.model.ShowAll = true
	m.SetTheme(t)
	return m
}

// SetTheme switches the colors.
func (m *Help) SetTheme(t theme.Theme) {
	m.theme = t
	m.model.Styles.FullKey = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	m.model.Styles.FullDesc = lipgloss.NewStyle().Foreground(t.Text)
	m.model.Styles.FullSeparator = lipgloss.NewStyle().Foreground(t.Muted)
}

// SetSize sets the terminal dimensions for centering.
func (m *Help) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// Toggle toggles help visibility.
func (m *Help) Toggle() {
	m.Visible = !m.Visible
}

// Init implements tea.Model.
func (m Help) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Help) Update(msg tea.Msg) (Help, tea.Cmd) {
	if !m.Visible {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "?", "q":
			m.Visible = false
			return m, func() tea.Msg { return msgs.SetModeMsg{Mode: msgs.ModeTimeline} }
		}
	}
	return m, nil
}

// View renders the help overlay.
func (m Help) View() string {
	if !m.Visible {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(m.theme.Text).
		Bold(true)
	keyStyle := m.model.Styles.FullKey.Width(14)
	sepStyle := m.model.Styles.FullSeparator

	var mouse []string
	for _, b := range mouseHelp {
		mouse = append(mouse, keyStyle.Render(b[0])+m.model.Styles.FullDesc.Render(b[1]))
	}

	var keys string
	if m.keys != nil {
		keys = m.model.FullHelpView(m.keys.FullHelp())
	}

	content := strings.Join([]string{
		titleStyle.Render("Keyboard"),
		keys,
		"",
		titleStyle.Render("Mouse"),
		sepStyle.Render(strings.Repeat("─", 40)),
		strings.Join(mouse, "\n"),
	}, "\n")

	return lipgloss.NewStyle().
		Background(m.theme.Surface).
		Foreground(m.theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Accent).
		Padding(1, 2).
		Render(content)
}
