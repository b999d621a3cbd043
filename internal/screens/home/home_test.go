package home

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/registrame/registrame/internal/gateway"
	"github.com/registrame/registrame/internal/lesson"
	"github.com/registrame/registrame/internal/llm"
	"github.com/registrame/registrame/internal/plan"
	"github.com/registrame/registrame/internal/router"
	"github.com/registrame/registrame/internal/screens/fullview"
	"github.com/registrame/registrame/internal/screens/section"
	"github.com/registrame/registrame/internal/screens/setup"
	"github.com/registrame/registrame/internal/session"
)

func newTestSession(t *testing.T, responses ...llm.MockResponse) *session.Session {
	t.Helper()
	gw := gateway.New(llm.NewMockProvider(responses...), gateway.DefaultConfig())
	return session.New(context.Background(), plan.New(gw), t.TempDir(), zerolog.Nop())
}

var (
	down  = tea.KeyPressMsg{Code: tea.KeyDown}
	enter = tea.KeyPressMsg{Code: tea.KeyEnter}
)

func pushed(t *testing.T, cmd tea.Cmd) any {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	return msg.Screen
}

func TestMenuOpensEachStep(t *testing.T) {
	h := New(newTestSession(t))

	_, cmd := h.Update(enter)
	assert.IsType(t, &setup.SetupScreen{}, pushed(t, cmd))

	for _, title := range []string{"2. Objetivos de Aprendizaje", "3. Secuencia Didáctica", "4. Rúbrica de Evaluación"} {
		h.Update(down)
		_, cmd = h.Update(enter)
		s, ok := pushed(t, cmd).(*section.SectionScreen)
		require.True(t, ok)
		assert.Equal(t, title, s.Title())
	}

	h.Update(down)
	_, cmd = h.Update(enter)
	assert.IsType(t, &fullview.FullViewScreen{}, pushed(t, cmd))
}

func TestViewShowsNewProjectThenActiveProject(t *testing.T) {
	sess := newTestSession(t, llm.MockResponse{Text: "overview"})
	h := New(sess)

	view := h.View(120, 30)
	assert.Contains(t, view, "Nuevo Proyecto")
	assert.Contains(t, view, LabelSetup)
	assert.Contains(t, view, LabelFullView)
	assert.Contains(t, view, "0/4")

	require.NoError(t, sess.Machine.SubmitOverview(context.Background(), lesson.Draft{
		Subject: "Biología", Topic: "La Célula", Duration: "90 min", Methodology: "gamification",
	}))
	h.Refresh()

	view = h.View(120, 30)
	assert.Contains(t, view, "Proyecto Activo")
	assert.Contains(t, view, "Gamificación")
	assert.Contains(t, view, "1/4")
	assert.Contains(t, view, "✓")
}

func TestRefreshKeepsSelection(t *testing.T) {
	h := New(newTestSession(t))
	h.Update(down)
	h.Update(down)
	h.Refresh()
	assert.Equal(t, 2, h.menu.Selected)
}

func TestUnconfiguredBackendBanner(t *testing.T) {
	sess := newTestSession(t)
	sess.ConfigErr = errors.New("no key")
	assert.Contains(t, New(sess).View(120, 30), "Configura una clave de IA")

	sess.ConfigErr = nil
	sess.Backend = "mock/mock"
	assert.Contains(t, New(sess).View(120, 30), "Motor IA: mock/mock")
}
