package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/registrame/registrame/internal/router"
	"github.com/registrame/registrame/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Inicio" }

func newTestWelcome() (*WelcomeScreen, *int) {
	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(factory), &callCount
}

func sendTicks(w *WelcomeScreen, n int) tea.Cmd {
	var cmd tea.Cmd
	for i := 0; i < n; i++ {
		_, cmd = w.Update(tickMsg(time.Now()))
	}
	return cmd
}

func containsBanner(view string) bool {
	return strings.Contains(view, "Mentalidad Ganadora")
}

func TestPhaseTransitions(t *testing.T) {
	w, _ := newTestWelcome()

	assert.False(t, containsBanner(w.View(100, 30)), "banner hidden at start")

	sendTicks(w, 5)
	assert.Equal(t, phase1End, w.elapsed)
	assert.False(t, containsBanner(w.View(100, 30)))

	sendTicks(w, 10)
	assert.Equal(t, phase2End, w.elapsed)
	assert.True(t, containsBanner(w.View(100, 30)), "banner visible after phase 2")
}

func TestBannerFallsBackOnNarrowTerminal(t *testing.T) {
	assert.Contains(t, RenderBanner(80), bannerCompact)
	assert.NotContains(t, RenderBanner(120), bannerCompact)
}

func TestKeypressDuringAnimationSkipsToTransition(t *testing.T) {
	w, callCount := newTestWelcome()
	sendTicks(w, 3)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' ', Text: " "})
	require.NotNil(t, cmd, "keypress during animation should trigger transition")

	replace, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.NotNil(t, replace.Screen)
	assert.Equal(t, 1, *callCount)
}

func TestNoAutoTransition(t *testing.T) {
	w, callCount := newTestWelcome()

	cmd := sendTicks(w, 45)
	assert.NotNil(t, cmd, "ticks keep the sparkle animation running")
	assert.Zero(t, *callCount, "factory is not called without a keypress")
	assert.Equal(t, totalDur, w.elapsed, "elapsed is capped")
}

func TestFactoryCalledOnce(t *testing.T) {
	w, callCount := newTestWelcome()
	sendTicks(w, 45)

	w.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	_, cmd := w.Update(tea.KeyPressMsg{Code: 'b', Text: "b"})

	assert.Nil(t, cmd, "second keypress should not produce a command")
	assert.Equal(t, 1, *callCount)
}

func TestTicksStopAfterTransition(t *testing.T) {
	w, _ := newTestWelcome()
	w.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})

	assert.Nil(t, sendTicks(w, 1))
}

func TestTitleEmpty(t *testing.T) {
	w, _ := newTestWelcome()
	assert.Empty(t, w.Title())
}
