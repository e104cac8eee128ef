package msgs

import "time"

// AppMode represents the current input mode.
type AppMode int

const (
	ModeTimeline AppMode = iota
	ModeHelp
)

func (m AppMode) String() string {
	switch m {
	case ModeTimeline:
		return "TIMELINE"
	case ModeHelp:
		return "HELP"
	default:
		return "UNKNOWN"
	}
}

// FrameMsg drives one frame of the timeline.
type FrameMsg struct {
	Time time.Time
}

// LoadFileMsg asks for a HAR file to be loaded.
type LoadFileMsg struct {
	Path string
}

// LoadedMsg reports a finished load.
type LoadedMsg struct {
	Path    string
	Entries int
	Bytes   int64
	Elapsed time.Duration
	Err     error
}

// CopyURLMsg copies the URL of the hovered entry.
type CopyURLMsg struct{}

// ShowHelpMsg toggles the help overlay.
type ShowHelpMsg struct{}

// SetModeMsg changes the app mode.
type SetModeMsg struct {
	Mode AppMode
}

// SwitchThemeMsg switches to the named theme. An empty name cycles to the
// next built-in theme.
type SwitchThemeMsg struct {
	Name string
}

// StatusMsg sets a temporary status bar message.
type StatusMsg struct {
	Text     string
	Duration time.Duration
}

// ToastMsg shows a toast notification.
type ToastMsg struct {
	Text     string
	IsError  bool
	Duration time.Duration
}
