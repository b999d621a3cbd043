package components

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/registrame/registrame/internal/ui/theme"
)

// LoadingText is shown next to the spinner while a generation is pending.
const LoadingText = "Consultando RegistraME AI..."

// Loading is a spinner with a caption.
type Loading struct {
	Spinner spinner.Model
	Text    string
}

// NewLoading creates a loading indicator with the default caption.
func NewLoading() Loading {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Secondary)
	return Loading{Spinner: s, Text: LoadingText}
}

// Tick starts the spinner animation.
func (l Loading) Tick() tea.Cmd {
	return l.Spinner.Tick
}

// Update advances the spinner on its tick messages.
func (l Loading) Update(msg tea.Msg) (Loading, tea.Cmd) {
	var cmd tea.Cmd
	l.Spinner, cmd = l.Spinner.Update(msg)
	return l, cmd
}

// View renders the spinner and caption.
func (l Loading) View() string {
	return l.Spinner.View() + " " + lipgloss.NewStyle().Foreground(theme.Secondary).Render(l.Text)
}
