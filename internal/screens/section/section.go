// Package section renders one dependent plan section: locked until the
// overview exists, then empty with a generate action, then filled.
package section

import (
	"fmt"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/registrame/registrame/internal/document"
	"github.com/registrame/registrame/internal/plan"
	"github.com/registrame/registrame/internal/router"
	"github.com/registrame/registrame/internal/screen"
	"github.com/registrame/registrame/internal/screens/setup"
	"github.com/registrame/registrame/internal/session"
	"github.com/registrame/registrame/internal/ui/components"
	"github.com/registrame/registrame/internal/ui/layout"
	"github.com/registrame/registrame/internal/ui/theme"
)

// LockedTitle and LockedText describe a section that needs the overview.
const (
	LockedTitle = "Sección Bloqueada"
	LockedText  = "Para desbloquear los Objetivos, Secuencia y Rúbrica, primero debes definir y generar la Experiencia DUA & STEM."
	LockedLink  = "Ir al paso 1 →"
)

type copyText struct {
	header string // screen title
	empty  string // empty-state card title
	button string
}

var texts = map[plan.Section]copyText{
	plan.SectionObjectives: {"2. Objetivos de Aprendizaje", "Definición de Objetivos", "Generar Objetivos"},
	plan.SectionSequence:   {"3. Secuencia Didáctica", "Diseño de Secuencia Didáctica", "Generar Secuencia"},
	plan.SectionRubric:     {"4. Rúbrica de Evaluación", "Creación de Rúbrica", "Generar Rúbrica"},
}

// SectionScreen shows one of the dependent sections.
type SectionScreen struct {
	sess    *session.Session
	section plan.Section
	text    copyText

	pending bool
	errMsg  string
	loading components.Loading
	content viewport.Model
}

var _ screen.Screen = (*SectionScreen)(nil)

// New creates the screen for a dependent section.
func New(sess *session.Session, sec plan.Section) *SectionScreen {
	s := &SectionScreen{
		sess:    sess,
		section: sec,
		text:    texts[sec],
		loading: components.NewLoading(),
		content: viewport.New(viewport.WithWidth(60), viewport.WithHeight(10)),
	}
	s.syncContent()
	return s
}

func (s *SectionScreen) Init() tea.Cmd {
	return nil
}

func (s *SectionScreen) Title() string {
	return s.text.header
}

// KeyHints implements screen.KeyHintProvider.
func (s *SectionScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.pending:
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Salir"}}
	case s.sess.Machine.Phase() == plan.PhaseEmpty:
		return []layout.KeyHint{{Key: "Enter", Description: "Ir al paso 1"}, {Key: "Esc", Description: "Volver"}}
	case !s.filled():
		return []layout.KeyHint{{Key: "Enter", Description: s.text.button}, {Key: "Esc", Description: "Volver"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Desplazar"},
		{Key: "r", Description: "Regenerar"},
		{Key: "x", Description: "Volver al diseño"},
		{Key: "Esc", Description: "Volver"},
	}
}

func (s *SectionScreen) filled() bool {
	_, ok := s.sess.Machine.State().Slot(s.section)
	return ok
}

func (s *SectionScreen) syncContent() {
	if text, ok := s.sess.Machine.State().Slot(s.section); ok {
		s.content.SetContent(text)
		s.content.GotoTop()
	}
}

func (s *SectionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case session.DoneMsg:
		if msg.Section != s.section {
			return s, nil
		}
		s.pending = false
		s.errMsg = session.UserMessage(msg.Section, msg.Err)
		if msg.Err == nil {
			s.syncContent()
		}
		return s, nil

	case tea.KeyPressMsg:
		if s.pending {
			return s, nil
		}
		return s.handleKey(msg)
	}

	if s.pending {
		var cmd tea.Cmd
		s.loading, cmd = s.loading.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SectionScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if s.sess.Machine.Phase() == plan.PhaseEmpty {
		if msg.String() == "enter" {
			next := setup.New(s.sess)
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		}
		return s, nil
	}

	if !s.filled() {
		switch msg.String() {
		case "enter", "g":
			return s, s.generate()
		}
		return s, nil
	}

	switch msg.String() {
	case "r":
		return s, s.generate()
	case "x":
		s.sess.Machine.ClearSection(s.section)
		s.errMsg = ""
		return s, nil
	}

	var cmd tea.Cmd
	s.content, cmd = s.content.Update(msg)
	return s, cmd
}

func (s *SectionScreen) generate() tea.Cmd {
	cmd := s.sess.GenerateSection(s.section)
	if cmd == nil {
		return nil
	}
	s.pending = true
	s.errMsg = ""
	return tea.Batch(cmd, s.loading.Tick())
}

func (s *SectionScreen) View(width, height int) string {
	cw := min(width-4, 96)

	var body string
	switch {
	case s.sess.Machine.Phase() == plan.PhaseEmpty:
		body = components.InfoCard(LockedTitle, LockedText,
			components.NewButton(LockedLink, true).View(), min(cw, 70))

	case !s.filled():
		req := s.sess.Machine.State().Request
		desc := fmt.Sprintf("Utilizaremos los datos de tu lección (%s - %s) para generar esta sección.",
			req.Subject, req.Topic)
		action := components.NewButton(s.text.button, true).View()
		if s.pending {
			action = s.loading.View()
		}
		body = components.InfoCard(s.text.empty, desc, action, min(cw, 70))

	default:
		body = s.filledView(cw, height)
	}

	if s.errMsg != "" {
		body += "\n" + components.ErrorBanner(s.errMsg, min(cw, 70))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (s *SectionScreen) filledView(width, height int) string {
	header := components.PlanHeader(width)
	heading := theme.Label.Render(document.Heading(s.section))
	status := theme.Hint.Render("x: Volver al diseño   r: Regenerar")
	if s.pending {
		status = s.loading.View()
	}

	used := lipgloss.Height(header) + 4
	s.content.SetWidth(width)
	s.content.SetHeight(max(height-used, 3))

	return header + "\n" + heading + "\n\n" + s.content.View() + "\n" + status
}
