package app

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/sadopc/hartl/internal/config"
	"github.com/sadopc/hartl/internal/ingest"
	"github.com/sadopc/hartl/internal/timeline"
	"github.com/sadopc/hartl/internal/ui/canvas"
	"github.com/sadopc/hartl/internal/ui/components"
	"github.com/sadopc/hartl/internal/ui/layout"
	"github.com/sadopc/hartl/internal/ui/msgs"
	"github.com/sadopc/hartl/internal/ui/syntax"
	"github.com/sadopc/hartl/internal/ui/theme"
)

const (
	// maxFrameTime caps the step after a stall so animations do not jump.
	maxFrameTime = 0.25
	panFraction  = 0.1
)

// App is the root Bubble Tea model.
type App struct {
	engine      *timeline.Engine
	canvas      *canvas.Canvas
	pipeline    *ingest.Pipeline
	watcher     *ingest.Watcher
	highlighter *syntax.Highlighter

	statusBar components.StatusBar
	help      components.Help
	toast     components.Toast

	cfg     config.Config
	initial string
	source  string

	input     inputState
	lastFrame time.Time
	frame     string

	mode   msgs.AppMode
	layout layout.ScreenLayout
	keys   KeyMap
	theme  theme.Theme

	copyText func(string) error

	width  int
	height int
	ready  bool
}

// New creates a new App model. path, when not empty, is loaded on start.
func New(cfg config.Config, path string) App {
	cfg = cfg.Normalize()
	t := theme.Resolve(cfg.Theme)
	keys := DefaultKeyMap()

	progress := timeline.NewProgress(timeline.PlaceholderLabel)
	opts := timeline.Options{Theme: t}
	var hl *syntax.Highlighter
	if cfg.Highlight {
		hl = syntax.New(t)
		opts.Highlighter = hl
	}

	a := App{
		engine:      timeline.NewEngine(progress, opts),
		canvas:      canvas.New(0, 0, float64(cfg.CellWidth), float64(cfg.CellHeight), t.Background, t.Text),
		pipeline:    ingest.New(progress),
		highlighter: hl,

		statusBar: components.NewStatusBar(t, keys),
		help:      components.NewHelp(t, keys),
		toast:     components.NewToast(t),

		cfg:     cfg,
		initial: path,

		mode:  msgs.ModeTimeline,
		keys:  keys,
		theme: t,

		copyText: clipboard.WriteAll,
	}

	if cfg.Watch {
		w, err := ingest.NewWatcher(a.pipeline, ingest.DefaultDebounce)
		if err != nil {
			log.Printf("app: file watching disabled: %v", err)
		} else {
			a.watcher = w
		}
	}

	return a
}

// Close stops background loading and file watching.
func (a App) Close() {
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			log.Printf("app: closing watcher: %v", err)
		}
	}
	a.pipeline.Close()
}

func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.SetWindowTitle("hartl"), frameTick(a.cfg.FPS)}
	if a.initial != "" {
		path := a.initial
		cmds = append(cmds, func() tea.Msg { return msgs.LoadFileMsg{Path: path} })
	}
	return tea.Batch(cmds...)
}

func frameTick(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return msgs.FrameMsg{Time: t}
	})
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout = layout.HandleResize(msg, true)
		a.canvas.Resize(a.layout.CanvasCols, a.layout.CanvasRows)
		a.statusBar.SetWidth(msg.Width)
		a.help.SetSize(msg.Width, msg.Height)
		a.ready = true
		return a, nil

	case msgs.FrameMsg:
		return a.handleFrame(msg.Time)

	case tea.MouseMsg:
		a.input.handleMouse(tea.MouseEvent(msg), a.canvas.ToPixel)
		return a, nil

	case tea.KeyMsg:
		if msg.Paste {
			return a.handlePaste(string(msg.Runes))
		}
		if a.help.Visible {
			var cmd tea.Cmd
			a.help, cmd = a.help.Update(msg)
			return a, cmd
		}
		return a.handleKey(msg)

	case msgs.LoadFileMsg:
		a.pipeline.Load(msg.Path)
		return a, nil

	case msgs.LoadedMsg:
		return a, a.handleLoaded(msg)

	case msgs.CopyURLMsg:
		return a.copyURL()

	case msgs.ShowHelpMsg:
		a.help.Toggle()
		a.mode = msgs.ModeTimeline
		if a.help.Visible {
			a.mode = msgs.ModeHelp
		}
		a.statusBar.SetMode(a.mode)
		return a, nil

	case msgs.SetModeMsg:
		a.mode = msg.Mode
		a.statusBar.SetMode(msg.Mode)
		return a, nil

	case msgs.SwitchThemeMsg:
		return a.handleSwitchTheme(msg)

	case msgs.StatusMsg:
		a.statusBar.SetMessage(msg.Text)
		if msg.Duration > 0 {
			cmds = append(cmds, a.statusBar.ClearAfter(msg.Duration))
		}
		return a, tea.Batch(cmds...)

	case msgs.ToastMsg:
		cmd := a.toast.Show(msg.Text, msg.IsError, msg.Duration)
		return a, cmd
	}

	var cmd tea.Cmd
	a.toast, cmd = a.toast.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	a.statusBar, cmd = a.statusBar.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	view := a.engine.View
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Help):
		return a, func() tea.Msg { return msgs.ShowHelpMsg{} }
	case key.Matches(msg, a.keys.Theme):
		return a.handleSwitchTheme(msgs.SwitchThemeMsg{})
	case key.Matches(msg, a.keys.ZoomIn):
		view.Zoom(1)
	case key.Matches(msg, a.keys.ZoomOut):
		view.Zoom(-1)
	case key.Matches(msg, a.keys.PanLeft):
		view.PanBy(a.canvas.Size().X * panFraction)
	case key.Matches(msg, a.keys.PanRight):
		view.PanBy(-a.canvas.Size().X * panFraction)
	case key.Matches(msg, a.keys.ScrollUp):
		view.Scroll(1)
	case key.Matches(msg, a.keys.ScrollDown):
		view.Scroll(-1)
	case key.Matches(msg, a.keys.Reset):
		view.Reset()
	case key.Matches(msg, a.keys.Reload):
		if a.source == "" {
			cmd := a.toast.Show("Nothing to reload", true, 2*time.Second)
			return a, cmd
		}
		a.pipeline.Load(a.source)
	case key.Matches(msg, a.keys.CopyURL):
		return a.copyURL()
	}
	return a, nil
}

func (a App) handlePaste(text string) (tea.Model, tea.Cmd) {
	path := firstPath(text)
	if path == "" {
		return a, nil
	}
	return a, func() tea.Msg { return msgs.LoadFileMsg{Path: path} }
}

// handleFrame drains finished loads, then runs one engine frame.
func (a App) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{frameTick(a.cfg.FPS)}

	ft := 1 / float64(a.cfg.FPS)
	if !a.lastFrame.IsZero() {
		ft = min(max(now.Sub(a.lastFrame).Seconds(), 0), maxFrameTime)
	}
	a.lastFrame = now

	for {
		r, ok := a.pipeline.Poll()
		if !ok {
			break
		}
		cmds = append(cmds, a.handleLoaded(msgs.LoadedMsg(r)))
	}

	if !a.ready {
		return a, tea.Batch(cmds...)
	}

	screen := a.canvas.Size()
	var in timeline.Input
	if a.help.Visible {
		in = a.input.idle(ft, screen)
	} else {
		in = a.input.snapshot(ft, screen)
	}

	loading := a.pipeline.Loading()
	a.canvas.Clear()
	a.engine.Frame(a.canvas, in, a.pipeline.Dataset(), loading)
	a.frame = a.canvas.Render()
	a.statusBar.SetView(a.engine.View.Scale.X, loading)

	return a, tea.Batch(cmds...)
}

func (a *App) handleLoaded(msg msgs.LoadedMsg) tea.Cmd {
	if msg.Err != nil {
		return a.toast.Show("Load failed: "+msg.Err.Error(), true, 5*time.Second)
	}

	a.source = msg.Path
	a.statusBar.SetFile(msg.Path, msg.Entries, msg.Bytes, msg.Elapsed)
	if a.watcher != nil {
		if err := a.watcher.Watch(msg.Path); err != nil {
			log.Printf("app: %v", err)
		}
	}
	text := fmt.Sprintf("Loaded %d entries from %s", msg.Entries, filepath.Base(msg.Path))
	return a.toast.Show(text, false, 2*time.Second)
}

func (a App) copyURL() (tea.Model, tea.Cmd) {
	e := a.engine.Hovered()
	if e == nil {
		cmd := a.toast.Show("No entry under the pointer", true, 2*time.Second)
		return a, cmd
	}
	if err := a.copyText(e.URL); err != nil {
		cmd := a.toast.Show("Clipboard error: "+err.Error(), true, 3*time.Second)
		return a, cmd
	}
	a.statusBar.SetMessage("Copied " + e.URL)
	cmd := a.toast.Show("Copied URL", false, 2*time.Second)
	return a, tea.Batch(cmd, a.statusBar.ClearAfter(3*time.Second))
}

func (a App) handleSwitchTheme(msg msgs.SwitchThemeMsg) (tea.Model, tea.Cmd) {
	var t theme.Theme
	if msg.Name == "" {
		t = nextTheme(a.theme.Name)
	} else {
		t = theme.Resolve(msg.Name)
	}

	a.theme = t
	a.engine.SetTheme(t)
	if a.highlighter != nil {
		a.highlighter.SetTheme(t)
	}
	a.canvas.SetColors(t.Background, t.Text)
	a.statusBar.SetTheme(t)
	a.help.SetTheme(t)
	a.toast.SetTheme(t)

	cmd := a.toast.Show("Theme: "+t.Name, false, 2*time.Second)
	return a, cmd
}

// nextTheme returns the built-in theme after current in name order.
func nextTheme(current string) theme.Theme {
	names := theme.Names()
	for i, n := range names {
		if n == current {
			t, _ := theme.Get(names[(i+1)%len(names)])
			return t
		}
	}
	t, _ := theme.Get(names[0])
	return t
}

func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	main := a.frame
	if a.layout.StatusBarVisible {
		main = lipgloss.JoinVertical(lipgloss.Left, main, a.statusBar.View())
	}

	if a.help.Visible {
		main = overlayCenter(main, a.help.View(), a.width, a.height, a.theme)
	}
	if a.toast.Visible {
		main = overlayTopRight(main, a.toast.View(), a.width)
	}

	return main
}

func overlayCenter(_, overlay string, width, height int, t theme.Theme) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, overlay,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(t.Background),
	)
}

// overlayTopRight draws overlay over the top right corner of bg, keeping
// the height of bg.
func overlayTopRight(bg, overlay string, width int) string {
	lines := strings.Split(bg, "\n")
	for i, ol := range strings.Split(overlay, "\n") {
		if i >= len(lines) {
			break
		}
		gap := max(width-lipgloss.Width(ol)-2, 0)
		left := ansi.Truncate(lines[i], gap, "")
		if pad := gap - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		lines[i] = left + ol
	}
	return strings.Join(lines, "\n")
}
