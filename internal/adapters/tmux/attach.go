package tmux

import (
	"fmt"
	"io"
	"os"

	"github.com/creack/pty"

	"drover/internal/logging"
)

// Attach attaches the calling terminal to a session through a PTY and blocks
// until the user detaches. Ctrl+Q detaches in addition to the native tmux
// detach binding.
func (c *Client) Attach(session string) error {
	if !c.SessionExists(session) {
		return fmt.Errorf("session %s not found", session)
	}

	cmd := c.AttachCommand(session)
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return fmt.Errorf("failed to attach to session: %w", err)
	}
	defer ptmx.Close()

	if size, err := pty.GetsizeFull(os.Stdin); err == nil {
		_ = pty.Setsize(ptmx, size)
	}

	done := make(chan struct{})

	// Copy tmux output to stdout
	go func() {
		io.Copy(os.Stdout, ptmx)
		close(done)
	}()

	// Read stdin and forward to tmux, watch for Ctrl+Q (ASCII 17) to detach
	go func() {
		buf := make([]byte, 1024)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil {
				return
			}

			for i := 0; i < n; i++ {
				if buf[i] == 17 { // Ctrl+Q
					logging.Logger.Info("Detaching from session", "name", session)
					ptmx.Close()
					return
				}
			}

			ptmx.Write(buf[:n])
		}
	}()

	<-done
	return nil
}
