package components

import (
	"charm.land/lipgloss/v2"

	"github.com/registrame/registrame/internal/ui/theme"
)

// Disclaimer is the notice shown above generated content.
const Disclaimer = "Aviso IA: Contenido generado automáticamente. No sustituye la planificación oficial. Revisa y adapta según tu criterio."

// ErrorBanner renders msg in a red bordered box. Empty msg renders nothing.
func ErrorBanner(msg string, width int) string {
	if msg == "" {
		return ""
	}
	return theme.ErrorBanner.Width(width).Render("⚠ " + msg)
}

// DisclaimerBanner renders the AI content notice.
func DisclaimerBanner(width int) string {
	return theme.WarningBanner.Width(width).Render("⚠ " + Disclaimer)
}

// InfoCard renders a centered card with a title, body text and an action hint.
func InfoCard(title, body, action string, width int) string {
	content := theme.Title.Render(title) + "\n\n" +
		theme.Subtitle.Render(body)
	if action != "" {
		content += "\n\n" + action
	}
	return theme.Card.
		Width(width).
		Align(lipgloss.Center).
		Render(content)
}

// PlanHeader renders the title block shown above generated content.
func PlanHeader(width int) string {
	title := lipgloss.NewStyle().Foreground(theme.Gold).Bold(true).Render("PLANIFICACIÓN PEDAGÓGICA")
	sub := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Enfoque DUA - STEM | Mentalidad Ganadora")
	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(theme.Gold).
		Render(title + "\n" + sub)
}
