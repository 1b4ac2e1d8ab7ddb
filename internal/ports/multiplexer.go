package ports

import "os/exec"

// MuxSession describes a live multiplexer session.
type MuxSession struct {
	Name    string
	Windows int
}

// MuxWindow describes a window inside a session.
type MuxWindow struct {
	Index int
	Name  string
}

// SessionLifecycle handles session-level operations.
type SessionLifecycle interface {
	// Available reports whether the multiplexer can be driven at all.
	Available() error
	SessionExists(name string) bool
	// NewSession creates a detached session. windowName names the initial
	// window when non-empty; dir sets the starting directory when non-empty.
	NewSession(name, windowName, dir string) error
	KillSession(name string) error
	ListSessions() ([]MuxSession, error)
}

// WindowOperations handles window-level operations.
type WindowOperations interface {
	// NewWindow creates window index in session with the given name.
	NewWindow(session string, index int, name string) error
	RenameWindow(session string, index int, name string) error
	ListWindows(session string) ([]MuxWindow, error)
}

// PaneOperations handles pane-level operations.
type PaneOperations interface {
	// SendKeys injects text into a target ("session" or "session:index")
	// followed by key names such as "Enter".
	SendKeys(target string, keys ...string) error
	CapturePane(target string, startLine int) (string, error)
}

// Attacher hands out a command for attaching the calling terminal.
type Attacher interface {
	// AttachCommand returns an exec.Cmd configured for attaching to a session.
	// This is useful for integration with frameworks that need the command
	// directly (like Bubble Tea's tea.ExecProcess) and for PTY attachment.
	AttachCommand(session string) *exec.Cmd
}

// Multiplexer is the composite capability interface for code that needs
// multiple operation sets.
type Multiplexer interface {
	SessionLifecycle
	WindowOperations
	PaneOperations
	Attacher
}
