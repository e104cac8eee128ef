package theme

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeKey(t *testing.T) {
	got := normalizeKey("  Catppuccin Mocha  ")
	if got != "catppuccin-mocha" {
		t.Fatalf("normalizeKey() = %q, want catppuccin-mocha", got)
	}
}

func TestGetBuiltInTheme(t *testing.T) {
	got, ok := Get("  paper ")
	if !ok {
		t.Fatal("expected built-in theme to be found")
	}
	if got.Name != "Paper" {
		t.Fatalf("theme name = %q, want Paper", got.Name)
	}
}

func TestNamesIncludesBuiltIns(t *testing.T) {
	have := map[string]bool{}
	for _, n := range Names() {
		have[n] = true
	}
	for _, want := range []string{"Catppuccin Mocha", "Nord", "Paper"} {
		if !have[want] {
			t.Fatalf("theme %q not found in Names()", want)
		}
	}
}

func TestResolveCustomThemeFromHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	themesDir := filepath.Join(home, ".config", "hartl", "themes")
	if err := os.MkdirAll(themesDir, 0755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}

	yaml := "name: Ocean Breeze\nbase: paper\nbackground: \"#001122\"\n"
	path := filepath.Join(themesDir, "ocean-breeze.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	got := Resolve("ocean breeze")
	if got.Name != "Ocean Breeze" {
		t.Fatalf("Resolve(custom) name = %q, want Ocean Breeze", got.Name)
	}
	if got.Background != "#001122" {
		t.Fatalf("Resolve(custom) background = %q, want #001122", got.Background)
	}
	if got.Band != Paper.Band {
		t.Fatalf("Resolve(custom) band = %q, want inherited %q", got.Band, Paper.Band)
	}
}

func TestResolveFallsBackToDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got := Resolve("not-a-real-theme")
	if got.Name != CatppuccinMocha.Name {
		t.Fatalf("Resolve(unknown) name = %q, want %q", got.Name, CatppuccinMocha.Name)
	}
}

func TestLoadCustomThemeUsesFilenameWhenNameMissing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "my-theme.yaml")

	if err := os.WriteFile(path, []byte("text: \"#eeeeee\"\n"), 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	got, err := LoadCustomTheme(path)
	if err != nil {
		t.Fatalf("LoadCustomTheme() failed: %v", err)
	}
	if got.Name != "my-theme" {
		t.Fatalf("Name = %q, want my-theme", got.Name)
	}
	if got.Text != "#eeeeee" {
		t.Fatalf("Text = %q, want #eeeeee", got.Text)
	}
}

func TestLoadCustomThemeInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")

	if err := os.WriteFile(path, []byte("name: [\n"), 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	if _, err := LoadCustomTheme(path); err == nil {
		t.Fatal("expected parsing error for invalid yaml")
	}
}

func TestLoadCustomThemesSkipsInvalidFiles(t *testing.T) {
	dir := t.TempDir()

	files := map[string]string{
		"forest.yaml": "name: Forest\nbackground: \"#102030\"\n",
		"broken.yaml": "name: [\n",
		"readme.txt":  "ignore me",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0644); err != nil {
			t.Fatalf("WriteFile(%s) failed: %v", name, err)
		}
	}

	themes := LoadCustomThemes(dir)
	if len(themes) != 1 {
		t.Fatalf("LoadCustomThemes() loaded %d themes, want 1", len(themes))
	}
	if got, ok := themes[normalizeKey("Forest")]; !ok || got.Name != "Forest" {
		t.Fatalf("expected Forest theme, got %#v (ok=%v)", got, ok)
	}
}

func TestThemeStatusColor(t *testing.T) {
	theme := Default()

	tests := []struct {
		code int
		want string
	}{
		{200, string(theme.Green)},
		{204, string(theme.Green)},
		{301, string(theme.Orange)},
		{404, string(theme.Red)},
		{500, string(theme.Red)},
		{100, string(theme.Red)},
		{0, string(theme.Magenta)},
	}
	for _, tt := range tests {
		if got := theme.StatusColor(tt.code); string(got) != tt.want {
			t.Fatalf("StatusColor(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
