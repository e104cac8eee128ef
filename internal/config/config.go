package config

// Config holds the application configuration.
type Config struct {
	Theme      string `yaml:"theme"`
	FPS        int    `yaml:"fps"`
	CellWidth  int    `yaml:"cell_width"`
	CellHeight int    `yaml:"cell_height"`
	Watch      bool   `yaml:"watch"`
	Highlight  bool   `yaml:"highlight"`
	LogFile    string `yaml:"log_file"`
}

const (
	minFPS = 1
	maxFPS = 120
)

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Theme:      "catppuccin-mocha",
		FPS:        30,
		CellWidth:  8,
		CellHeight: 20,
		Watch:      false,
		Highlight:  true,
		LogFile:    "",
	}
}

// Normalize replaces out of range values with defaults.
func (c Config) Normalize() Config {
	def := DefaultConfig()
	if c.FPS < minFPS || c.FPS > maxFPS {
		c.FPS = def.FPS
	}
	if c.CellWidth <= 0 {
		c.CellWidth = def.CellWidth
	}
	if c.CellHeight <= 0 {
		c.CellHeight = def.CellHeight
	}
	if c.Theme == "" {
		c.Theme = def.Theme
	}
	return c
}
