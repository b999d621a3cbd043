// Package session connects the TUI screens to one plan.Machine. Generations
// run as tea.Cmds and report back with DoneMsg; the session tracks whether
// one is in flight so screens can ignore operation keys meanwhile.
package session

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/registrame/registrame/internal/document"
	"github.com/registrame/registrame/internal/gateway"
	"github.com/registrame/registrame/internal/lesson"
	"github.com/registrame/registrame/internal/plan"
)

// User-facing messages for the error taxonomy.
const (
	MsgIncomplete       = "Por favor completa todos los campos requeridos para comenzar."
	MsgOverviewFailed   = "Error generando contenido. Intenta de nuevo."
	MsgSectionFailed    = "Error generando la sección. Intenta de nuevo."
	MsgLocked           = "Sección Bloqueada. Primero genera la Experiencia DUA & STEM."
	MsgNotConfigured    = "Servicio de IA no configurado. Define API_KEY o REGISTRAME_LLM_PROVIDER con su clave."
	MsgExportFailed     = "No se pudo exportar la planificación."
	MsgUnexpectedFailed = "Ocurrió un error inesperado."
)

// DoneMsg reports the end of a generation started by SubmitOverview or
// GenerateSection.
type DoneMsg struct {
	Section plan.Section
	Err     error
}

// Session is the state shared by all screens of one TUI run.
type Session struct {
	Machine   *plan.Machine
	ExportDir string
	Backend   string // e.g. "gemini/gemini-3-flash-preview", shown on home
	ConfigErr error  // set when no generation backend could be built
	Logger    zerolog.Logger

	ctx  context.Context
	busy bool
}

// New creates a session around m. ctx bounds every generation.
func New(ctx context.Context, m *plan.Machine, exportDir string, logger zerolog.Logger) *Session {
	if exportDir == "" {
		exportDir = "."
	}
	return &Session{
		Machine:   m,
		ExportDir: exportDir,
		Logger:    logger.With().Str("component", "tui").Logger(),
		ctx:       ctx,
	}
}

// Busy reports whether a generation is in flight.
func (s *Session) Busy() bool {
	return s.busy
}

// SubmitOverview starts the overview generation. It returns nil while a
// generation is already in flight.
func (s *Session) SubmitOverview(draft lesson.Draft) tea.Cmd {
	if s.busy {
		return nil
	}
	s.busy = true
	m, ctx := s.Machine, s.ctx
	return func() tea.Msg {
		return DoneMsg{Section: plan.SectionOverview, Err: m.SubmitOverview(ctx, draft)}
	}
}

// GenerateSection starts a dependent section generation. It returns nil
// while a generation is already in flight.
func (s *Session) GenerateSection(sec plan.Section) tea.Cmd {
	if s.busy {
		return nil
	}
	s.busy = true
	m, ctx := s.Machine, s.ctx
	return func() tea.Msg {
		return DoneMsg{Section: sec, Err: m.GenerateSection(ctx, sec)}
	}
}

// Finish records the end of a generation. The app model calls it before
// routing the message so the flag is cleared even if the screen that
// started the generation is no longer active.
func (s *Session) Finish(msg DoneMsg) {
	s.busy = false
	if msg.Err != nil {
		s.Logger.Warn().Err(msg.Err).Str("section", string(msg.Section)).Msg("generation failed")
	}
}

// Export writes the assembled plan to ExportDir and returns the file path.
func (s *Session) Export() (string, error) {
	st := s.Machine.State()
	if st.Phase() == plan.PhaseEmpty {
		return "", &plan.LockedSectionError{Section: plan.SectionOverview}
	}
	path := filepath.Join(s.ExportDir, document.FileName(st))
	if err := document.Export(path, st); err != nil {
		return "", fmt.Errorf("export plan: %w", err)
	}
	s.Logger.Info().Str("path", path).Msg("plan exported")
	return path, nil
}

// Status is the header line for the current lesson, empty before the
// overview exists.
func (s *Session) Status() string {
	st := s.Machine.State()
	if st.Request == nil {
		return ""
	}
	return fmt.Sprintf("Trabajando en: %s - %s", st.Request.Subject, st.Request.Topic)
}

// UserMessage maps an operation error to the text shown in the error banner.
func UserMessage(sec plan.Section, err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, lesson.ErrIncompleteRequest):
		return MsgIncomplete
	case errors.Is(err, plan.ErrLocked):
		return MsgLocked
	case errors.Is(err, gateway.ErrConfiguration):
		return MsgNotConfigured
	case errors.Is(err, gateway.ErrGeneration):
		if sec == plan.SectionOverview {
			return MsgOverviewFailed
		}
		return MsgSectionFailed
	}
	return MsgUnexpectedFailed
}
