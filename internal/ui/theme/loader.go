package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// yamlTheme is the YAML representation of a theme. Empty fields inherit
// from the theme named by Base, or the default theme.
type yamlTheme struct {
	Name string `yaml:"name"`
	Base string `yaml:"base"`

	Background   string `yaml:"background"`
	Text         string `yaml:"text"`
	TextInverted string `yaml:"text_inverted"`
	Muted        string `yaml:"muted"`
	Band         string `yaml:"band"`
	Strip        string `yaml:"strip"`
	Marker       string `yaml:"marker"`
	Rule         string `yaml:"rule"`
	ProgressFill string `yaml:"progress_fill"`

	Green   string `yaml:"green"`
	Orange  string `yaml:"orange"`
	Red     string `yaml:"red"`
	Magenta string `yaml:"magenta"`

	Surface string `yaml:"surface"`
	Accent  string `yaml:"accent"`
}

// LoadCustomTheme loads a theme from a YAML file.
func LoadCustomTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("reading theme file: %w", err)
	}

	var yt yamlTheme
	if err := yaml.Unmarshal(data, &yt); err != nil {
		return Theme{}, fmt.Errorf("parsing theme YAML: %w", err)
	}

	if yt.Name == "" {
		base := filepath.Base(path)
		yt.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	t, ok := Get(yt.Base)
	if !ok {
		t = Default()
	}
	t.Name = yt.Name

	set := func(dst *lipgloss.Color, v string) {
		if v != "" {
			*dst = lipgloss.Color(v)
		}
	}
	set(&t.Background, yt.Background)
	set(&t.Text, yt.Text)
	set(&t.TextInverted, yt.TextInverted)
	set(&t.Muted, yt.Muted)
	set(&t.Band, yt.Band)
	set(&t.Strip, yt.Strip)
	set(&t.Marker, yt.Marker)
	set(&t.Rule, yt.Rule)
	set(&t.ProgressFill, yt.ProgressFill)
	set(&t.Green, yt.Green)
	set(&t.Orange, yt.Orange)
	set(&t.Red, yt.Red)
	set(&t.Magenta, yt.Magenta)
	set(&t.Surface, yt.Surface)
	set(&t.Accent, yt.Accent)

	return t, nil
}

// LoadCustomThemes loads all YAML themes from a directory.
func LoadCustomThemes(dir string) map[string]Theme {
	themes := make(map[string]Theme)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return themes
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		t, err := LoadCustomTheme(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		themes[normalizeKey(t.Name)] = t
	}
	return themes
}
