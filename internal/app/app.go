// Package app is the root Bubble Tea model of the wizard.
package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/registrame/registrame/internal/router"
	"github.com/registrame/registrame/internal/screen"
	"github.com/registrame/registrame/internal/screens/home"
	"github.com/registrame/registrame/internal/screens/welcome"
	"github.com/registrame/registrame/internal/session"
	"github.com/registrame/registrame/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	Session     *session.Session
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	sess   *session.Session
	router *router.Router
	width  int
	height int
}

// newAppModel creates an AppModel that starts on the welcome splash, or
// directly on the home screen with SkipWelcome.
func newAppModel(opts Options) AppModel {
	sess := opts.Session
	homeFactory := func() screen.Screen { return home.New(sess) }

	var initial screen.Screen = welcome.New(homeFactory)
	if opts.SkipWelcome {
		initial = homeFactory()
	}
	return AppModel{
		sess:   sess,
		router: router.New(initial),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case session.DoneMsg:
		m.sess.Finish(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Navigation is frozen while a generation is in flight.
			if m.router.Depth() > 1 && !m.sess.Busy() {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if !layout.Fits(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.sess.Status(), m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	content := m.router.View(m.width, layout.BodyHeight(header, footer, m.height))
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Volver"},
			{Key: "Ctrl+C", Description: "Salir"},
		}
	}
	return []layout.KeyHint{
		{Key: "Cualquier tecla", Description: "Continuar"},
		{Key: "Ctrl+C", Description: "Salir"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Session == nil {
		return fmt.Errorf("app: session is required")
	}
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
