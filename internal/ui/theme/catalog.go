package theme

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Catalog maps theme names to themes.
var Catalog = map[string]Theme{}

func init() {
	register(CatppuccinMocha)
	register(Paper)
	register(Nord)
}

func register(t Theme) {
	Catalog[normalizeKey(t.Name)] = t
}

// Get returns a built-in theme by name.
func Get(name string) (Theme, bool) {
	t, ok := Catalog[normalizeKey(name)]
	return t, ok
}

// Names returns all registered theme names, sorted.
func Names() []string {
	var names []string
	for _, t := range Catalog {
		names = append(names, t.Name)
	}
	sort.Strings(names)
	return names
}

// Resolve looks name up among the custom themes in
// ~/.config/hartl/themes first, then the built-ins. Unknown names resolve
// to the default theme.
func Resolve(name string) Theme {
	if home, err := os.UserHomeDir(); err == nil {
		custom := LoadCustomThemes(filepath.Join(home, ".config", "hartl", "themes"))
		if t, ok := custom[normalizeKey(name)]; ok {
			return t
		}
	}
	if t, ok := Get(name); ok {
		return t
	}
	return Default()
}

func normalizeKey(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
}
