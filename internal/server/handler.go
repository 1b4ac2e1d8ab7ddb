package server

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"drover/internal/logging"
	"drover/internal/services"
	"drover/internal/ui"
)

// teaHandler creates a watch model for each SSH session
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	watch := services.NewWatchService(s.mux)
	model := ui.NewWatchModel(watch)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}
