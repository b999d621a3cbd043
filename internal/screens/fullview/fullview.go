// Package fullview shows the assembled plan and exports it to Markdown.
package fullview

import (
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/registrame/registrame/internal/document"
	"github.com/registrame/registrame/internal/plan"
	"github.com/registrame/registrame/internal/router"
	"github.com/registrame/registrame/internal/screen"
	"github.com/registrame/registrame/internal/screens/section"
	"github.com/registrame/registrame/internal/screens/setup"
	"github.com/registrame/registrame/internal/session"
	"github.com/registrame/registrame/internal/ui/components"
	"github.com/registrame/registrame/internal/ui/layout"
	"github.com/registrame/registrame/internal/ui/theme"
)

// FullViewScreen renders the whole plan document.
type FullViewScreen struct {
	sess     *session.Session
	doc      viewport.Model
	exported string
	errMsg   string
}

var _ screen.Screen = (*FullViewScreen)(nil)

// New creates the full view from the current plan.
func New(sess *session.Session) *FullViewScreen {
	f := &FullViewScreen{
		sess: sess,
		doc:  viewport.New(viewport.WithWidth(60), viewport.WithHeight(10)),
	}
	if st := sess.Machine.State(); st.Phase() == plan.PhaseUnlocked {
		f.doc.SetContent(document.Assemble(st))
	}
	return f
}

func (f *FullViewScreen) Init() tea.Cmd {
	return nil
}

func (f *FullViewScreen) Title() string {
	return "Vista Global / Exportar"
}

// KeyHints implements screen.KeyHintProvider.
func (f *FullViewScreen) KeyHints() []layout.KeyHint {
	if f.locked() {
		return []layout.KeyHint{{Key: "Enter", Description: "Ir al paso 1"}, {Key: "Esc", Description: "Volver"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Desplazar"},
		{Key: "w", Description: "Exportar Markdown"},
		{Key: "d", Description: "Volver al diseño"},
		{Key: "Esc", Description: "Volver"},
	}
}

func (f *FullViewScreen) locked() bool {
	return f.sess.Machine.Phase() == plan.PhaseEmpty
}

func (f *FullViewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || f.sess.Busy() {
		return f, nil
	}

	if f.locked() {
		if kmsg.String() == "enter" {
			return f, replaceWith(setup.New(f.sess))
		}
		return f, nil
	}

	switch kmsg.String() {
	case "w":
		path, err := f.sess.Export()
		if err != nil {
			f.exported, f.errMsg = "", session.MsgExportFailed
			return f, nil
		}
		f.exported, f.errMsg = path, ""
		return f, nil
	case "d":
		return f, replaceWith(setup.New(f.sess))
	}

	var cmd tea.Cmd
	f.doc, cmd = f.doc.Update(msg)
	return f, cmd
}

func replaceWith(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: s} }
}

func (f *FullViewScreen) View(width, height int) string {
	cw := min(width-4, 100)

	if f.locked() {
		card := components.InfoCard(section.LockedTitle, section.LockedText,
			components.NewButton(section.LockedLink, true).View(), min(cw, 70))
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
	}

	top := components.DisclaimerBanner(cw) + "\n" + components.PlanHeader(cw)
	var status string
	switch {
	case f.errMsg != "":
		status = components.ErrorBanner(f.errMsg, cw)
	case f.exported != "":
		status = lipgloss.NewStyle().Foreground(theme.Success).Render("✓ Exportado a " + f.exported)
	default:
		status = theme.Hint.Render("w: Exportar Markdown   d: Volver al diseño")
	}

	used := lipgloss.Height(top) + lipgloss.Height(status) + 2
	f.doc.SetWidth(cw)
	f.doc.SetHeight(max(height-used, 3))

	body := top + "\n" + f.doc.View() + "\n" + status
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, body)
}
