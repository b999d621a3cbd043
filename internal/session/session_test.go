package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/registrame/registrame/internal/gateway"
	"github.com/registrame/registrame/internal/lesson"
	"github.com/registrame/registrame/internal/llm"
	"github.com/registrame/registrame/internal/plan"
)

func newTestSession(t *testing.T, responses ...llm.MockResponse) *Session {
	t.Helper()
	gw := gateway.New(llm.NewMockProvider(responses...), gateway.DefaultConfig())
	return New(context.Background(), plan.New(gw), t.TempDir(), zerolog.Nop())
}

func validDraft() lesson.Draft {
	return lesson.Draft{
		Subject:     "Biología",
		Topic:       "La Célula",
		Duration:    "90 min",
		Methodology: "inquiry",
	}
}

func TestSubmitOverviewMarksBusyUntilFinish(t *testing.T) {
	s := newTestSession(t, llm.MockResponse{Text: "Resumen"})

	cmd := s.SubmitOverview(validDraft())
	require.NotNil(t, cmd)
	assert.True(t, s.Busy())

	assert.Nil(t, s.SubmitOverview(validDraft()), "second submit while busy is ignored")
	assert.Nil(t, s.GenerateSection(plan.SectionObjectives), "section while busy is ignored")

	msg, ok := cmd().(DoneMsg)
	require.True(t, ok)
	assert.Equal(t, plan.SectionOverview, msg.Section)
	require.NoError(t, msg.Err)

	s.Finish(msg)
	assert.False(t, s.Busy())
	assert.Equal(t, "Trabajando en: Biología - La Célula", s.Status())
}

func TestGenerateSectionReportsLocked(t *testing.T) {
	s := newTestSession(t)

	msg := s.GenerateSection(plan.SectionRubric)().(DoneMsg)
	s.Finish(msg)

	assert.ErrorIs(t, msg.Err, plan.ErrLocked)
	assert.Equal(t, MsgLocked, UserMessage(msg.Section, msg.Err))
	assert.Empty(t, s.Status())
}

func TestExport(t *testing.T) {
	s := newTestSession(t, llm.MockResponse{Text: "Resumen"})

	_, err := s.Export()
	assert.ErrorIs(t, err, plan.ErrLocked)

	s.Finish(s.SubmitOverview(validDraft())().(DoneMsg))

	path, err := s.Export()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.ExportDir, "planificacion-la-celula.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Planificación: La Célula")
	assert.Contains(t, string(data), "Resumen")
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		sec  plan.Section
		err  error
		want string
	}{
		{"nil", plan.SectionOverview, nil, ""},
		{"incomplete", plan.SectionOverview, &lesson.IncompleteRequestError{Missing: []string{lesson.FieldTopic}}, MsgIncomplete},
		{"locked", plan.SectionSequence, &plan.LockedSectionError{Section: plan.SectionSequence}, MsgLocked},
		{"configuration", plan.SectionOverview, &gateway.ConfigurationError{Err: &llm.ErrMissingAPIKey{Provider: "gemini"}}, MsgNotConfigured},
		{"overview generation", plan.SectionOverview, &gateway.GenerationError{Section: "overview", Err: errors.New("boom")}, MsgOverviewFailed},
		{"section generation", plan.SectionRubric, &gateway.GenerationError{Section: "rubric", Err: errors.New("boom")}, MsgSectionFailed},
		{"other", plan.SectionOverview, errors.New("boom"), MsgUnexpectedFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.sec, tt.err))
		})
	}
}
