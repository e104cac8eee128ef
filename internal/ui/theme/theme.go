package theme

import "github.com/charmbracelet/lipgloss"

// Theme holds all colors used by the timeline and the surrounding chrome.
type Theme struct {
	Name string

	// Canvas
	Background   lipgloss.Color
	Text         lipgloss.Color
	TextInverted lipgloss.Color
	Muted        lipgloss.Color
	Band         lipgloss.Color
	Strip        lipgloss.Color
	Marker       lipgloss.Color
	Rule         lipgloss.Color
	ProgressFill lipgloss.Color

	// Status classes
	Green   lipgloss.Color
	Orange  lipgloss.Color
	Red     lipgloss.Color
	Magenta lipgloss.Color

	// Chrome
	Surface lipgloss.Color
	Accent  lipgloss.Color

	// Syntax
	SyntaxKey     lipgloss.Color
	SyntaxString  lipgloss.Color
	SyntaxNumber  lipgloss.Color
	SyntaxLiteral lipgloss.Color
	SyntaxPunct   lipgloss.Color
}

// StatusColor returns the color for an HTTP status code. A zero status
// means the response carried none.
func (t Theme) StatusColor(code int) lipgloss.Color {
	switch {
	case code == 0:
		return t.Magenta
	case code/100 == 2:
		return t.Green
	case code/100 == 3:
		return t.Orange
	default:
		return t.Red
	}
}
