package theme

import "github.com/charmbracelet/lipgloss"

// Paper is a light theme close to a plain white drawing surface.
var Paper = Theme{
	Name: "Paper",

	Background:   lipgloss.Color("#ffffff"),
	Text:         lipgloss.Color("#000000"),
	TextInverted: lipgloss.Color("#ffffff"),
	Muted:        lipgloss.Color("#828282"),
	Band:         lipgloss.Color("#0079f1"),
	Strip:        lipgloss.Color("#f5f5f5"),
	Marker:       lipgloss.Color("#004a99"),
	Rule:         lipgloss.Color("#000000"),
	ProgressFill: lipgloss.Color("#00752c"),

	Green:   lipgloss.Color("#00e430"),
	Orange:  lipgloss.Color("#ffa100"),
	Red:     lipgloss.Color("#e62937"),
	Magenta: lipgloss.Color("#ff00ff"),

	Surface: lipgloss.Color("#e6e6e6"),
	Accent:  lipgloss.Color("#0079f1"),

	SyntaxKey:     lipgloss.Color("#7a3e9d"),
	SyntaxString:  lipgloss.Color("#448c27"),
	SyntaxNumber:  lipgloss.Color("#9c5d27"),
	SyntaxLiteral: lipgloss.Color("#aa3731"),
	SyntaxPunct:   lipgloss.Color("#777777"),
}

// CatppuccinMocha is the default dark theme.
var CatppuccinMocha = Theme{
	Name: "Catppuccin Mocha",

	Background:   lipgloss.Color("#1e1e2e"),
	Text:         lipgloss.Color("#cdd6f4"),
	TextInverted: lipgloss.Color("#11111b"),
	Muted:        lipgloss.Color("#585b70"),
	Band:         lipgloss.Color("#89b4fa"),
	Strip:        lipgloss.Color("#181825"),
	Marker:       lipgloss.Color("#74c7ec"),
	Rule:         lipgloss.Color("#6c7086"),
	ProgressFill: lipgloss.Color("#40a02b"),

	Green:   lipgloss.Color("#a6e3a1"),
	Orange:  lipgloss.Color("#fab387"),
	Red:     lipgloss.Color("#f38ba8"),
	Magenta: lipgloss.Color("#f5c2e7"),

	Surface: lipgloss.Color("#313244"),
	Accent:  lipgloss.Color("#cba6f7"),

	SyntaxKey:     lipgloss.Color("#89b4fa"),
	SyntaxString:  lipgloss.Color("#a6e3a1"),
	SyntaxNumber:  lipgloss.Color("#fab387"),
	SyntaxLiteral: lipgloss.Color("#cba6f7"),
	SyntaxPunct:   lipgloss.Color("#9399b2"),
}

// Nord is a muted arctic theme.
var Nord = Theme{
	Name: "Nord",

	Background:   lipgloss.Color("#2e3440"),
	Text:         lipgloss.Color("#eceff4"),
	TextInverted: lipgloss.Color("#2e3440"),
	Muted:        lipgloss.Color("#4c566a"),
	Band:         lipgloss.Color("#81a1c1"),
	Strip:        lipgloss.Color("#3b4252"),
	Marker:       lipgloss.Color("#88c0d0"),
	Rule:         lipgloss.Color("#616e88"),
	ProgressFill: lipgloss.Color("#a3be8c"),

	Green:   lipgloss.Color("#a3be8c"),
	Orange:  lipgloss.Color("#d08770"),
	Red:     lipgloss.Color("#bf616a"),
	Magenta: lipgloss.Color("#b48ead"),

	Surface: lipgloss.Color("#3b4252"),
	Accent:  lipgloss.Color("#88c0d0"),

	SyntaxKey:     lipgloss.Color("#81a1c1"),
	SyntaxString:  lipgloss.Color("#a3be8c"),
	SyntaxNumber:  lipgloss.Color("#b48ead"),
	SyntaxLiteral: lipgloss.Color("#81a1c1"),
	SyntaxPunct:   lipgloss.Color("#d8dee9"),
}

// Default returns the default theme.
func Default() Theme {
	return CatppuccinMocha
}
