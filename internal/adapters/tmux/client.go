package tmux

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"drover/internal/domain"
	"drover/internal/logging"
	"drover/internal/ports"
)

// Client drives the tmux binary through os/exec.
type Client struct{}

// Compile-time interface verification
var _ ports.Multiplexer = (*Client)(nil)

// NewClient creates a new Client instance
func NewClient() *Client {
	return &Client{}
}

// Available reports whether the tmux binary can be found.
func (c *Client) Available() error {
	if _, err := exec.LookPath("tmux"); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMultiplexerUnavailable, err)
	}
	return nil
}

// SessionExists checks if the tmux session exists
func (c *Client) SessionExists(name string) bool {
	cmd := exec.Command("tmux", "has-session", "-t", name)
	return cmd.Run() == nil
}

// NewSession creates a new detached tmux session. windowName names the
// initial window when non-empty; dir sets the starting directory.
func (c *Client) NewSession(name, windowName, dir string) error {
	args := []string{"new-session", "-d", "-s", name}
	if windowName != "" {
		args = append(args, "-n", windowName)
	}
	if dir != "" {
		args = append(args, "-c", dir)
	}

	logging.Logger.Info("Creating tmux session", "name", name, "window", windowName)
	cmd := exec.Command("tmux", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		// tmux reports "duplicate session: <name>" when the name is taken;
		// map it to the sentinel so callers can branch on it.
		if strings.Contains(string(output), "duplicate session") {
			return fmt.Errorf("%w: %s", domain.ErrSessionExists, name)
		}
		return fmt.Errorf("failed to create tmux session: %w (output: %s)", err, strings.TrimSpace(string(output)))
	}
	return nil
}

// KillSession terminates the tmux session
func (c *Client) KillSession(name string) error {
	logging.Logger.Info("Killing tmux session", "name", name)
	cmd := exec.Command("tmux", "kill-session", "-t", name)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("failed to kill session %s: %w (output: %s)", name, err, strings.TrimSpace(string(output)))
	}
	return nil
}

// ListSessions returns all active tmux sessions
func (c *Client) ListSessions() ([]ports.MuxSession, error) {
	cmd := exec.Command("tmux", "ls", "-F", "#{session_name}\t#{session_windows}")
	output, err := cmd.Output()
	if err != nil {
		// Exit code 1 means no server / no sessions, which is fine
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 {
			return []ports.MuxSession{}, nil
		}
		return nil, err
	}

	var sessions []ports.MuxSession
	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name, windowsField, _ := strings.Cut(line, "\t")
		windows, _ := strconv.Atoi(windowsField)
		sessions = append(sessions, ports.MuxSession{Name: name, Windows: windows})
	}
	return sessions, nil
}

// NewWindow creates window index in session with the given name
func (c *Client) NewWindow(session string, index int, name string) error {
	target := fmt.Sprintf("%s:%d", session, index)
	cmd := exec.Command("tmux", "new-window", "-t", target, "-n", name)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("failed to create window %s: %w (output: %s)", target, err, strings.TrimSpace(string(output)))
	}
	return nil
}

// RenameWindow renames window index in session
func (c *Client) RenameWindow(session string, index int, name string) error {
	target := fmt.Sprintf("%s:%d", session, index)
	cmd := exec.Command("tmux", "rename-window", "-t", target, name)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("failed to rename window %s: %w (output: %s)", target, err, strings.TrimSpace(string(output)))
	}
	return nil
}

// ListWindows returns the windows of a session
func (c *Client) ListWindows(session string) ([]ports.MuxWindow, error) {
	cmd := exec.Command("tmux", "list-windows", "-t", session, "-F", "#{window_index}\t#{window_name}")
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to list windows for %s: %w", session, err)
	}

	var windows []ports.MuxWindow
	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		indexField, name, _ := strings.Cut(line, "\t")
		index, err := strconv.Atoi(indexField)
		if err != nil {
			continue
		}
		windows = append(windows, ports.MuxWindow{Index: index, Name: name})
	}
	return windows, nil
}

// SendKeys sends keystrokes to the specified target ("session" or "session:index")
func (c *Client) SendKeys(target string, keys ...string) error {
	args := []string{"send-keys", "-t", target}
	args = append(args, keys...)
	cmd := exec.Command("tmux", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("failed to send keys to %s: %w (output: %s)", target, err, strings.TrimSpace(string(output)))
	}
	return nil
}

// CapturePane captures the content of a tmux pane
func (c *Client) CapturePane(target string, startLine int) (string, error) {
	cmd := exec.Command("tmux", "capture-pane", "-p", "-t", target, "-S", fmt.Sprintf("%d", startLine))
	output, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return string(output), nil
}

// AttachCommand returns an exec.Cmd configured for attaching to a session.
func (c *Client) AttachCommand(session string) *exec.Cmd {
	return exec.Command("tmux", "attach-session", "-t", session)
}
