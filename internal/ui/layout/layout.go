// Package layout draws the frame shared by every screen: the header bar,
// the key-hint footer and the too-small notice.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/registrame/registrame/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	// CompactWidth is the width below which screens drop side panels.
	CompactWidth = 100
)

// footerTag is shown at the right end of the footer when it fits.
const footerTag = "DUA · STEM"

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsCompactWidth reports whether width should use the single-column layout.
func IsCompactWidth(width int) bool {
	return width < CompactWidth
}

// Fits reports whether the terminal is large enough for the wizard.
func Fits(width, height int) bool {
	return width >= MinWidth && height >= MinHeight
}

// RenderMinSizeMessage renders a centered card asking for a larger terminal.
func RenderMinSizeMessage(width, height int) string {
	card := theme.Card.
		BorderForeground(theme.Warning).
		Align(lipgloss.Center).
		Render(
			theme.Title.Render("¡Terminal demasiado pequeña!") + "\n\n" +
				theme.Body.Render(fmt.Sprintf("Amplíala al menos a %d x %d", MinWidth, MinHeight)) + "\n" +
				theme.Hint.Render(fmt.Sprintf("Actual: %d x %d", width, height)),
		)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

var barStyle = lipgloss.NewStyle().
	Background(theme.BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border)

// RenderHeader renders the header bar: the brand on the left, the screen
// title centered and status, typically the lesson in progress, on the right.
func RenderHeader(title, status string, width int) string {
	brand := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  RegistraME") +
		lipgloss.NewStyle().Foreground(theme.Accent).Render(" TEACHER AI")
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)

	right := ""
	if status != "" {
		right = lipgloss.NewStyle().Foreground(theme.Secondary).Render(status + "  ")
	}

	inner := max(width-4, 0)
	leftGap := max((inner-lipgloss.Width(center))/2-lipgloss.Width(brand), 1)
	rightGap := max(inner-lipgloss.Width(brand)-leftGap-lipgloss.Width(center)-lipgloss.Width(right), 1)

	return barStyle.Width(width).Render(
		brand + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right,
	)
}

var (
	hintKeyStyle  = lipgloss.NewStyle().Foreground(theme.BgDark).Background(theme.Secondary).Bold(true).Padding(0, 1)
	hintDescStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
	hintSep       = "  "
)

// RenderFooter renders the key hints as chips in the given order. Hints
// that would overflow the bar are dropped from the end; the tag on the
// right is only drawn when space is left.
func RenderFooter(hints []KeyHint, width int) string {
	inner := max(width-4, 0)

	line := " "
	for _, h := range hints {
		chip := hintKeyStyle.Render(h.Key) + " " + hintDescStyle.Render(h.Description)
		next := line
		if next != " " {
			next += hintSep
		}
		next += chip
		if lipgloss.Width(next) > inner {
			break
		}
		line = next
	}

	tag := lipgloss.NewStyle().Foreground(theme.Gold).Render(footerTag + " ")
	if gap := inner - lipgloss.Width(line) - lipgloss.Width(tag); gap >= 2 {
		line += strings.Repeat(" ", gap) + tag
	}

	return barStyle.Width(width).Render(line)
}

// BodyHeight returns the rows left for screen content between header and
// footer.
func BodyHeight(header, footer string, height int) int {
	return max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
}

// RenderFrame stacks header, content and footer. Content is padded or
// clipped to exactly the body height so the footer stays at the bottom.
func RenderFrame(header, content, footer string, width, height int) string {
	body := BodyHeight(header, footer, height)
	styled := lipgloss.NewStyle().
		Width(width).
		Height(body).
		MaxHeight(body).
		Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, styled, footer)
}
