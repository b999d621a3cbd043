package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestFits(t *testing.T) {
	assert.False(t, Fits(79, 40))
	assert.False(t, Fits(120, 23))
	assert.True(t, Fits(MinWidth, MinHeight))
}

func TestRenderHeaderShowsBrandAndStatus(t *testing.T) {
	out := RenderHeader("2. Objetivos de Aprendizaje", "Trabajando en: Biología - La Célula", 120)
	assert.Contains(t, out, "RegistraME")
	assert.Contains(t, out, "2. Objetivos de Aprendizaje")
	assert.Contains(t, out, "Trabajando en: Biología - La Célula")
}

func TestRenderFooterListsHints(t *testing.T) {
	out := RenderFooter([]KeyHint{{Key: "Esc", Description: "Volver"}, {Key: "Ctrl+C", Description: "Salir"}}, 80)
	assert.Contains(t, out, "Esc")
	assert.Contains(t, out, "Volver")
	assert.Contains(t, out, "Salir")
	assert.Contains(t, out, footerTag)
}

func TestRenderFooterDropsOverflowingHints(t *testing.T) {
	hints := []KeyHint{
		{Key: "Tab", Description: "Siguiente campo"},
		{Key: "Ctrl+S", Description: "Generar"},
		{Key: "PgUp/PgDn", Description: "Desplazar"},
		{Key: "Esc", Description: "Volver"},
	}
	out := RenderFooter(hints, 40)
	assert.Contains(t, out, "Siguiente campo")
	assert.NotContains(t, out, "Generar")
	assert.NotContains(t, out, "Volver")
}

func TestRenderFrameFillsHeight(t *testing.T) {
	header := RenderHeader("T", "", 80)
	footer := RenderFooter(nil, 80)

	short := RenderFrame(header, "hola", footer, 80, 30)
	assert.Equal(t, 30, lipgloss.Height(short))

	tall := RenderFrame(header, strings.Repeat("x\n", 100), footer, 80, 30)
	assert.Equal(t, 30, lipgloss.Height(tall))
}

func TestBodyHeight(t *testing.T) {
	header := RenderHeader("T", "", 80)
	footer := RenderFooter(nil, 80)
	assert.Equal(t, 30-lipgloss.Height(header)-lipgloss.Height(footer), BodyHeight(header, footer, 30))
	assert.Equal(t, 0, BodyHeight(header, footer, 2))
}

func TestRenderMinSizeMessage(t *testing.T) {
	out := RenderMinSizeMessage(60, 20)
	assert.Contains(t, out, "¡Terminal demasiado pequeña!")
	assert.Contains(t, out, "Actual: 60 x 20")
}
