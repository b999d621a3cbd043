package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/registrame/registrame/internal/lesson"
	"github.com/registrame/registrame/internal/plan"
	"github.com/registrame/registrame/internal/ui/components"
	"github.com/registrame/registrame/internal/ui/theme"
)

// sidebarWidth returns the sidebar column width, capped so the summary
// panel keeps most of the terminal.
func sidebarWidth(width int) int {
	w := width / 3
	if w > 40 {
		w = 40
	}
	if w < 32 {
		w = 32
	}
	return w
}

// renderSidebar renders the brand, the "Planificación" group with the four
// steps, and the "Exportar" group.
func renderSidebar(menu components.Menu, width, height int, compact bool) string {
	brand := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("RegistraME")
	if !compact {
		brand += "\n" + lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("TEACHER AI")
	}

	group := lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true)

	// The menu renders as one block; split the groups around the steps.
	steps := components.Menu{Items: menu.Items[:4], Selected: menu.Selected}
	rest := components.Menu{Items: menu.Items[4:], Selected: menu.Selected - 4}

	content := brand + "\n\n" +
		group.Render("PLANIFICACIÓN") + "\n" + steps.View() + "\n" +
		group.Render("EXPORTAR") + "\n" + rest.View()

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(theme.Border).
		Render(content)
}

// renderProjectCard summarizes the lesson being planned.
func renderProjectCard(st plan.State, width int) string {
	if st.Request == nil {
		return components.InfoCard("Nuevo Proyecto",
			"Empieza por el paso 1: describe tu lección y genera la Experiencia DUA & STEM.",
			"", width)
	}

	req := st.Request
	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	value := theme.Body

	method := req.Methodology
	if m, ok := lesson.LookupMethodology(req.Methodology); ok {
		method = m.Name
	}

	lines := []string{
		lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("● Proyecto Activo"),
		"",
		label.Render("Asignatura  ") + value.Render(req.Subject),
		label.Render("Tema        ") + value.Render(req.Topic),
		label.Render("Nivel       ") + value.Render(string(req.Level)),
		label.Render("Tiempo      ") + value.Render(req.Duration),
		label.Render("Metodología ") + value.Render(method),
	}
	if req.Context != "" {
		lines = append(lines, label.Render("Contexto    ")+value.Render(req.Context))
	}

	return theme.Card.Width(width).Render(strings.Join(lines, "\n"))
}

// renderLLMBanner renders a warning when no generation backend is configured.
func renderLLMBanner(width int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Warning).
		Width(width).
		Render("⚠ Configura una clave de IA (API_KEY o REGISTRAME_LLM_PROVIDER) para generar contenido. Ver registrame --help")
}

// renderBackend renders a dim line naming the generation backend.
func renderBackend(backend string, width int) string {
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(width).
		Render(fmt.Sprintf("Motor IA: %s", backend))
}
