package app

import (
	"context"
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
	"github.com/registrame/registrame/internal/screens/home"
	"github.com/registrame/registrame/internal/screens/welcome"
	"github.com/registrame/registrame/internal/session"
)

func newTestSession(t *testing.T, responses ...llm.MockResponse) *session.Session {
	t.Helper()
	gw := gateway.New(llm.NewMockProvider(responses...), gateway.DefaultConfig())
	return session.New(context.Background(), plan.New(gw), t.TempDir(), zerolog.Nop())
}

// step feeds msg to the model and then the navigation message its command
// yields, if any, the way the runtime would. Init commands of pushed screens
// are not run.
func step(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(AppModel)
	if cmd == nil {
		return m
	}
	switch out := cmd().(type) {
	case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg:
		next, _ = m.Update(out)
		m = next.(AppModel)
	}
	return m
}

var (
	esc   = tea.KeyPressMsg{Code: tea.KeyEscape}
	enter = tea.KeyPressMsg{Code: tea.KeyEnter}
)

func TestStartsOnWelcomeUnlessSkipped(t *testing.T) {
	sess := newTestSession(t)

	m := newAppModel(Options{Session: sess})
	assert.IsType(t, &welcome.WelcomeScreen{}, m.router.Active())

	m = newAppModel(Options{Session: sess, SkipWelcome: true})
	assert.IsType(t, &home.HomeScreen{}, m.router.Active())
}

func TestWelcomeKeypressReplacesWithHome(t *testing.T) {
	m := newAppModel(Options{Session: newTestSession(t)})
	m = step(t, m, tea.KeyPressMsg{Code: 'a', Text: "a"})

	assert.IsType(t, &home.HomeScreen{}, m.router.Active())
	assert.Equal(t, 1, m.router.Depth())
}

func TestEscPopsToHome(t *testing.T) {
	m := newAppModel(Options{Session: newTestSession(t), SkipWelcome: true})
	m = step(t, m, enter)
	require.Equal(t, 2, m.router.Depth())
	assert.Equal(t, "1. Configuración & DUA-STEM", m.router.Active().Title())

	m = step(t, m, esc)
	assert.Equal(t, 1, m.router.Depth())

	m = step(t, m, esc)
	assert.Equal(t, 1, m.router.Depth(), "esc at the root is a no-op")
}

func TestEscIgnoredWhileBusy(t *testing.T) {
	sess := newTestSession(t, llm.MockResponse{Text: "overview"})
	m := newAppModel(Options{Session: sess, SkipWelcome: true})
	m = step(t, m, enter)

	cmd := sess.SubmitOverview(lesson.Draft{})
	require.NotNil(t, cmd)
	require.True(t, sess.Busy())

	m = step(t, m, esc)
	assert.Equal(t, 2, m.router.Depth())

	m = step(t, m, cmd())
	assert.False(t, sess.Busy(), "DoneMsg clears the busy flag")

	m = step(t, m, esc)
	assert.Equal(t, 1, m.router.Depth())
}

func TestViewAfterOverview(t *testing.T) {
	sess := newTestSession(t, llm.MockResponse{Text: "overview"})
	require.NoError(t, sess.Machine.SubmitOverview(context.Background(), lesson.Draft{
		Subject: "Biología", Topic: "La Célula", Duration: "90 min", Methodology: "pbl",
	}))

	m := newAppModel(Options{Session: sess, SkipWelcome: true})
	m = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, m.width)
	assert.True(t, m.View().AltScreen)
	assert.Equal(t, "Trabajando en: Biología - La Célula", sess.Status())
}

func TestRunRequiresSession(t *testing.T) {
	assert.Error(t, Run(Options{}))
}
