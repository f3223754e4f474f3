package server

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"github.com/renato0307/pitmaster/internal/logging"
	"github.com/renato0307/pitmaster/internal/ui"
)

// teaHandler creates a cook screen for each SSH client. Every client shares
// the controller, so a reading logged by one shows up for all.
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	clientID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())
	startTime := time.Now()

	logging.Logger.Info("New SSH session",
		"client", clientID,
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	model := ui.NewModel(s.baseCtx, s.deps.Actions, s.deps.Source, s.deps.Presets, false)

	// the session context ends on quit and on a dropped connection alike
	go func() {
		<-sess.Context().Done()
		model.Close()
		logging.Logger.Info("SSH session ended",
			"client", clientID,
			"duration", time.Since(startTime).String())
	}()

	return model, []tea.ProgramOption{tea.WithAltScreen()}
}
