package components

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/sadopc/hartl/internal/ui/msgs"
	"github.com/sadopc/hartl/internal/ui/theme"
)

// clearStatusMsg clears a temporary status message.
type clearStatusMsg struct{}

// StatusBar is a full-width bottom status bar.
type StatusBar struct {
	source  string
	entries int
	bytes   int64
	elapsed time.Duration
	scale   float64
	loading bool
	mode    msgs.AppMode
	message string
	width   int

	help  help.Model
	keys  help.KeyMap
	theme theme.Theme
}

// NewStatusBar creates a new status bar. keys supplies the short help shown
// on the right; it may be nil.
func NewStatusBar(t theme.Theme, keys help.KeyMap) StatusBar {
	m := StatusBar{
		theme: t,
		keys:  keys,
		mode:  msgs.ModeTimeline,
		help:  help.New(),
		scale: 1,
	}
	m.SetTheme(t)
	return m
}

// SetTheme switches the colors.
func (m *StatusBar) SetTheme(t theme.Theme) {
	m.theme = t
	bg := lipgloss.NewStyle().Background(t.Surface)
	m.help.Styles.ShortKey = bg.Foreground(t.Accent)
	m.help.Styles.ShortDesc = bg.Foreground(t.Muted)
	m.help.Styles.ShortSeparator = bg.Foreground(t.Muted)
	m.help.Styles.Ellipsis = bg.Foreground(t.Muted)
}

// SetFile sets the loaded file summary.
func (m *StatusBar) SetFile(source string, entries int, bytes int64, elapsed time.Duration) {
	m.source = source
	m.entries = entries
	m.bytes = bytes
	m.elapsed = elapsed
}

// SetView sets the current horizontal zoom and whether a load is running.
func (m *StatusBar) SetView(scale float64, loading bool) {
	m.scale = scale
	m.loading = loading
}

// SetMode sets the current app mode.
func (m *StatusBar) SetMode(mode msgs.AppMode) {
	m.mode = mode
}

// SetWidth sets the available width.
func (m *StatusBar) SetWidth(w int) {
	m.width = w
	m.help.Width = w / 2
}

// SetMessage sets a temporary status message.
func (m *StatusBar) SetMessage(text string) {
	m.message = text
}

// ClearAfter returns a Cmd that clears the message after d.
func (m *StatusBar) ClearAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// Init implements tea.Model.
func (m StatusBar) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m StatusBar) Update(msg tea.Msg) (StatusBar, tea.Cmd) {
	switch msg.(type) {
	case clearStatusMsg:
		m.message = ""
	}
	return m, nil
}

// View renders the status bar.
func (m StatusBar) View() string {
	bg := lipgloss.NewStyle().Background(m.theme.Surface)
	barStyle := bg.Foreground(m.theme.Text).Width(m.width).MaxHeight(1)

	// Left: message, or the file summary
	var leftParts []string
	switch {
	case m.message != "":
		leftParts = append(leftParts, bg.Foreground(m.theme.Text).Render(m.message))
	case m.source != "":
		leftParts = append(leftParts,
			bg.Foreground(m.theme.Text).Bold(true).Render(filepath.Base(m.source)),
			bg.Foreground(m.theme.Muted).Render(fmt.Sprintf("%d entries", m.entries)))
		if m.bytes > 0 {
			leftParts = append(leftParts, bg.Foreground(m.theme.Muted).Render(humanize.IBytes(uint64(m.bytes))))
		}
		if m.elapsed > 0 {
			leftParts = append(leftParts, bg.Foreground(m.theme.Muted).Render(formatDuration(m.elapsed)))
		}
	default:
		leftParts = append(leftParts, bg.Foreground(m.theme.Muted).Render("no file"))
	}
	leftParts = append(leftParts, bg.Foreground(m.theme.Muted).Render(fmt.Sprintf("zoom %.2fx", m.scale)))
	left := strings.Join(leftParts, bg.Render(" │ "))

	// Center: mode indicator
	mode := m.mode.String()
	if m.loading {
		mode = "LOADING"
	}
	modeStr := bg.Foreground(m.theme.Accent).Bold(true).Render("[" + mode + "]")

	// Right: key hints
	hint := bg.Foreground(m.theme.Muted).Render("?:help")
	if m.keys != nil {
		hint = m.help.ShortHelpView(m.keys.ShortHelp())
	}

	leftWidth := lipgloss.Width(left)
	centerWidth := lipgloss.Width(modeStr)
	rightWidth := lipgloss.Width(hint)

	totalContent := leftWidth + centerWidth + rightWidth
	if totalContent >= m.width {
		line := " " + left + bg.Render(" ") + modeStr + bg.Render(" ") + hint
		return barStyle.Render(line)
	}

	remaining := m.width - totalContent - 2 // padding
	gap1 := remaining / 2
	gap2 := remaining - gap1

	line := " " + left +
		bg.Render(strings.Repeat(" ", gap1)) + modeStr +
		bg.Render(strings.Repeat(" ", gap2)) + hint

	return barStyle.Render(line)
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}
