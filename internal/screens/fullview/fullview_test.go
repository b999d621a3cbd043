package fullview

import (
	"context"
	"os"
	"path/filepath"
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
	"github.com/registrame/registrame/internal/screens/section"
	"github.com/registrame/registrame/internal/session"
)

func newTestSession(t *testing.T, responses ...llm.MockResponse) *session.Session {
	t.Helper()
	gw := gateway.New(llm.NewMockProvider(responses...), gateway.DefaultConfig())
	return session.New(context.Background(), plan.New(gw), t.TempDir(), zerolog.Nop())
}

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestLockedUntilOverview(t *testing.T) {
	f := New(newTestSession(t))

	view := f.View(100, 30)
	assert.Contains(t, view, section.LockedTitle)
	assert.NotContains(t, view, "Aviso IA")

	_, cmd := f.Update(key('w'))
	assert.Nil(t, cmd)
	assert.Empty(t, f.exported)

	_, cmd = f.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, router.ReplaceScreenMsg{}, cmd())
}

func TestShowsDocumentAndExports(t *testing.T) {
	sess := newTestSession(t,
		llm.MockResponse{Text: "Estrategia"},
		llm.MockResponse{Text: "Objetivos listos"},
	)
	ctx := context.Background()
	require.NoError(t, sess.Machine.SubmitOverview(ctx, lesson.Draft{
		Subject: "Historia", Topic: "Roma", Duration: "60 min", Methodology: "flipped",
	}))
	require.NoError(t, sess.Machine.GenerateSection(ctx, plan.SectionObjectives))

	f := New(sess)
	view := f.View(110, 40)
	assert.Contains(t, view, "Aviso IA")
	assert.Contains(t, view, "Planificación: Roma")
	assert.Contains(t, view, "Objetivos listos")

	f.Update(key('w'))
	want := filepath.Join(sess.ExportDir, "planificacion-roma.md")
	assert.Equal(t, want, f.exported)
	assert.Empty(t, f.errMsg)

	data, err := os.ReadFile(want)
	require.NoError(t, err)
	assert.Equal(t, "# Planificación: Roma\n\n**Materia:** Historia | **Nivel:** Secundaria\n\n"+
		"## I. Experiencia DUA & STEM\nEstrategia\n\n"+
		"## II. Objetivos de Aprendizaje\nObjetivos listos\n\n", string(data))
}

func TestExportFailureShowsBanner(t *testing.T) {
	sess := newTestSession(t, llm.MockResponse{Text: "Estrategia"})
	require.NoError(t, sess.Machine.SubmitOverview(context.Background(), lesson.Draft{
		Subject: "Arte", Topic: "Color", Duration: "30 min", Methodology: "maker",
	}))

	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	sess.ExportDir = filepath.Join(blocker, "sub")

	f := New(sess)
	f.Update(key('w'))
	assert.Equal(t, session.MsgExportFailed, f.errMsg)
	assert.Empty(t, f.exported)
}
