package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/registrame/registrame/internal/plan"
	"github.com/registrame/registrame/internal/router"
	"github.com/registrame/registrame/internal/screen"
	"github.com/registrame/registrame/internal/screens/fullview"
	"github.com/registrame/registrame/internal/screens/section"
	"github.com/registrame/registrame/internal/screens/setup"
	"github.com/registrame/registrame/internal/session"
	"github.com/registrame/registrame/internal/ui/components"
	"github.com/registrame/registrame/internal/ui/layout"
)

// Menu labels, in sidebar order.
const (
	LabelSetup      = "1. Experiencia DUA & STEM"
	LabelObjectives = "2. Objetivos de Aprendizaje"
	LabelSequence   = "3. Secuencia Didáctica"
	LabelRubric     = "4. Rúbrica de Evaluación"
	LabelFullView   = "Vista Completa (Exportar)"
	LabelQuit       = "Salir"
)

// HomeScreen is the sidebar menu plus a summary of the current plan.
type HomeScreen struct {
	sess *session.Session
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(sess *session.Session) *HomeScreen {
	h := &HomeScreen{sess: sess}
	h.menu = components.NewMenu(h.items())
	return h
}

func (h *HomeScreen) items() []components.MenuItem {
	st := h.sess.Machine.State()
	badge := func(sec plan.Section) string {
		if _, ok := st.Slot(sec); ok {
			return "✓"
		}
		return ""
	}
	push := func(factory func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			s := factory()
			return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
		}
	}
	sectionScreen := func(sec plan.Section) func() screen.Screen {
		return func() screen.Screen { return section.New(h.sess, sec) }
	}

	return []components.MenuItem{
		{Label: LabelSetup, Badge: badge(plan.SectionOverview),
			Action: push(func() screen.Screen { return setup.New(h.sess) })},
		{Label: LabelObjectives, Badge: badge(plan.SectionObjectives),
			Action: push(sectionScreen(plan.SectionObjectives))},
		{Label: LabelSequence, Badge: badge(plan.SectionSequence),
			Action: push(sectionScreen(plan.SectionSequence))},
		{Label: LabelRubric, Badge: badge(plan.SectionRubric),
			Action: push(sectionScreen(plan.SectionRubric))},
		{Label: LabelFullView,
			Action: push(func() screen.Screen { return fullview.New(h.sess) })},
		{Label: LabelQuit, Action: func() tea.Cmd { return tea.Quit }},
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

// Refresh rebuilds the menu badges after returning from a wizard step.
func (h *HomeScreen) Refresh() tea.Cmd {
	selected := h.menu.Selected
	h.menu = components.NewMenu(h.items())
	h.menu.Selected = selected
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(session.DoneMsg); ok {
		return h, h.Refresh()
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// KeyHints implements screen.KeyHintProvider.
func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navegar"},
		{Key: "Enter", Description: "Abrir"},
		{Key: "Ctrl+C", Description: "Salir"},
	}
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactWidth(width)
	sw := sidebarWidth(width)
	pw := width - sw - 3

	sidebar := renderSidebar(h.menu, sw, height, compact)
	panel := h.renderPanel(pw)

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "   ", panel)
}

func (h *HomeScreen) renderPanel(width int) string {
	st := h.sess.Machine.State()
	parts := []string{renderProjectCard(st, width)}

	done := 0
	for _, sec := range plan.Sections() {
		if _, ok := st.Slot(sec); ok {
			done++
		}
	}
	parts = append(parts, components.NewProgressBar("Progreso", done, len(plan.Sections()), width).View())

	if h.sess.ConfigErr != nil {
		parts = append(parts, renderLLMBanner(width))
	} else if h.sess.Backend != "" {
		parts = append(parts, renderBackend(h.sess.Backend, width))
	}

	return strings.Join(parts, "\n\n")
}

func (h *HomeScreen) Title() string {
	return "Inicio"
}
