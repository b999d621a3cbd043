// Package setup is the first wizard step: the lesson form and the
// generated DUA & STEM overview.
package setup

import (
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/registrame/registrame/internal/lesson"
	"github.com/registrame/registrame/internal/plan"
	"github.com/registrame/registrame/internal/screen"
	"github.com/registrame/registrame/internal/session"
	"github.com/registrame/registrame/internal/ui/components"
	"github.com/registrame/registrame/internal/ui/layout"
	"github.com/registrame/registrame/internal/ui/theme"
)

const (
	submitLabel   = "Generar Estrategia DUA"
	resubmitLabel = "Regenerar Estrategia DUA"
)

// Focus order of the form.
const (
	focusSubject = iota
	focusTopic
	focusLevel
	focusDuration
	focusContext
	focusMethodology
	focusSubmit
	focusCount
)

// SetupScreen collects the lesson request and shows the overview.
type SetupScreen struct {
	sess *session.Session

	subject     components.TextField
	topic       components.TextField
	level       components.Selector
	duration    components.TextField
	context     components.AreaField
	methodology components.Selector

	focus    int
	pending  bool
	errMsg   string
	loading  components.Loading
	overview viewport.Model
}

var _ screen.Screen = (*SetupScreen)(nil)

// New creates the setup screen, prefilled from the current request if one
// has already been submitted.
func New(sess *session.Session) *SetupScreen {
	levels := make([]components.Option, 0, len(lesson.Levels()))
	for _, l := range lesson.Levels() {
		levels = append(levels, components.Option{Value: string(l), Label: string(l)})
	}
	methods := make([]components.Option, 0, len(lesson.Methodologies()))
	for _, m := range lesson.Methodologies() {
		methods = append(methods, components.Option{Value: m.ID, Label: m.Name, Detail: m.Description})
	}

	s := &SetupScreen{
		sess:        sess,
		subject:     components.NewTextField("Asignatura", "Ej: Biología", true),
		topic:       components.NewTextField("Tema", "Ej: La Célula", true),
		level:       components.NewSelector("Nivel", levels, true),
		duration:    components.NewTextField("Tiempo", "Ej: 90 min", true),
		context:     components.NewAreaField("Contexto", "Opcional: Descripción del grupo...", 2),
		methodology: components.NewSelector("Selecciona Metodología", methods, false),
		loading:     components.NewLoading(),
		overview:    viewport.New(viewport.WithWidth(40), viewport.WithHeight(10)),
	}
	s.level.SetValue(string(lesson.DefaultLevel))

	st := sess.Machine.State()
	if st.Request != nil {
		d := st.Request.Draft()
		s.subject.SetValue(d.Subject)
		s.topic.SetValue(d.Topic)
		s.level.SetValue(string(d.Level))
		s.duration.SetValue(d.Duration)
		s.context.SetValue(d.Context)
		s.methodology.SetValue(d.Methodology)
	}
	if st.Overview != nil {
		s.overview.SetContent(*st.Overview)
	}
	return s
}

func (s *SetupScreen) Init() tea.Cmd {
	return s.setFocus(focusSubject)
}

func (s *SetupScreen) Title() string {
	return "1. Configuración & DUA-STEM"
}

// KeyHints implements screen.KeyHintProvider.
func (s *SetupScreen) KeyHints() []layout.KeyHint {
	if s.pending {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Salir"}}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Siguiente campo"},
		{Key: "Ctrl+S", Description: "Generar"},
		{Key: "PgUp/PgDn", Description: "Desplazar"},
		{Key: "Esc", Description: "Volver"},
	}
}

// Draft returns the form contents.
func (s *SetupScreen) Draft() lesson.Draft {
	return lesson.Draft{
		Subject:     s.subject.Value(),
		Topic:       s.topic.Value(),
		Level:       lesson.Level(s.level.Value()),
		Duration:    s.duration.Value(),
		Context:     s.context.Value(),
		Methodology: s.methodology.Value(),
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case session.DoneMsg:
		if msg.Section != plan.SectionOverview {
			return s, nil
		}
		s.pending = false
		s.errMsg = session.UserMessage(msg.Section, msg.Err)
		if msg.Err == nil {
			if text, ok := s.sess.Machine.State().Slot(plan.SectionOverview); ok {
				s.overview.SetContent(text)
				s.overview.GotoTop()
			}
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
	return s, s.updateFocused(msg)
}

func (s *SetupScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab":
		return s, s.setFocus((s.focus + 1) % focusCount)
	case "shift+tab":
		return s, s.setFocus((s.focus - 1 + focusCount) % focusCount)
	case "ctrl+s":
		return s, s.submit()
	case "pgup", "pgdown":
		var cmd tea.Cmd
		s.overview, cmd = s.overview.Update(msg)
		return s, cmd
	case "enter":
		switch s.focus {
		case focusSubmit:
			return s, s.submit()
		case focusContext:
			// newline in the text area
		default:
			return s, s.setFocus(s.focus + 1)
		}
	}

	return s, s.updateFocused(msg)
}

// updateFocused forwards msg to the focused form element.
func (s *SetupScreen) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.focus {
	case focusSubject:
		s.subject, cmd = s.subject.Update(msg)
	case focusTopic:
		s.topic, cmd = s.topic.Update(msg)
	case focusLevel:
		s.level, cmd = s.level.Update(msg)
	case focusDuration:
		s.duration, cmd = s.duration.Update(msg)
	case focusContext:
		s.context, cmd = s.context.Update(msg)
	case focusMethodology:
		s.methodology, cmd = s.methodology.Update(msg)
	}
	return cmd
}

func (s *SetupScreen) submit() tea.Cmd {
	cmd := s.sess.SubmitOverview(s.Draft())
	if cmd == nil {
		return nil
	}
	s.pending = true
	s.errMsg = ""
	return tea.Batch(cmd, s.loading.Tick())
}

func (s *SetupScreen) setFocus(i int) tea.Cmd {
	s.focus = i
	s.subject.Blur()
	s.topic.Blur()
	s.level.Blur()
	s.duration.Blur()
	s.context.Blur()
	s.methodology.Blur()

	switch i {
	case focusSubject:
		return s.subject.Focus()
	case focusTopic:
		return s.topic.Focus()
	case focusLevel:
		s.level.Focus()
	case focusDuration:
		return s.duration.Focus()
	case focusContext:
		return s.context.Focus()
	case focusMethodology:
		s.methodology.Focus()
	}
	return nil
}

func (s *SetupScreen) View(width, height int) string {
	formWidth := min(max(width/2, 38), 56)
	resultWidth := width - formWidth - 3

	form := s.formView(formWidth)
	result := s.resultView(resultWidth, height)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(formWidth).Render(form),
		"   ",
		result,
	)
}

func (s *SetupScreen) formView(width int) string {
	parts := []string{
		theme.Title.Render("Datos de la Lección"),
		"",
		s.subject.View(width),
		s.topic.View(width),
		s.level.View(width),
		s.duration.View(width),
		s.context.View(width),
		"",
		s.methodology.View(width),
		"",
		s.submitView(),
	}
	if s.errMsg != "" {
		parts = append(parts, components.ErrorBanner(s.errMsg, width))
	}
	return strings.Join(parts, "\n")
}

func (s *SetupScreen) submitView() string {
	label := submitLabel
	if s.sess.Machine.Phase() == plan.PhaseUnlocked {
		label = resubmitLabel
	}
	if s.pending {
		return s.loading.View()
	}
	return components.NewButton(label, s.focus == focusSubmit).View()
}

func (s *SetupScreen) resultView(width, height int) string {
	title := theme.Title.Render("Experiencia DUA & STEM")
	if s.sess.Machine.Phase() == plan.PhaseEmpty {
		hint := theme.Hint.Width(width).Render(
			"Completa los datos de la lección y genera la estrategia para desbloquear los siguientes pasos.")
		return title + "\n\n" + hint
	}

	s.overview.SetWidth(width)
	s.overview.SetHeight(max(height-2, 3))
	return title + "\n\n" + s.overview.View()
}
