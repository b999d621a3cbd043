package gateway

import (
	"fmt"
	"strings"

	"github.com/registrame/registrame/internal/lesson"
)

const systemPrompt = `Eres un asistente de planificación docente. Respondes siempre en español y en Markdown, sin preámbulos ni despedidas.`

const overviewTask = `Genera SOLO la sección de "Estrategia General y Enfoque DUA-STEM" en Markdown:
1. 🧠 **Estrategias DUA (Diseño Universal)**: Detalla Redes Afectivas, De Reconocimiento y Estratégicas específicas para este tema.
2. 🚀 **Integración STEM**: Explica la conexión explícita con Ciencia, Tecnología, Ingeniería y Matemáticas.
3. 💡 **Idea Central / "Big Idea"**: Un concepto gancho para la clase.

Sé conciso, motivador y usa iconos.`

const objectivesTask = `Genera SOLO la sección de "Objetivos de Aprendizaje" en Markdown:
1. 🏆 **Objetivo General**: Redactado con mentalidad ganadora.
2. 🎯 **Objetivos Específicos**: 3-4 objetivos medibles (Bloom/SMART) divididos en:
   - Saber (Conceptual)
   - Hacer (Procedimental)
   - Ser (Actitudinal)

Usa formato de lista bullet points.`

const sequenceTask = `Genera SOLO la "Secuencia Didáctica" paso a paso en Markdown. Divide el tiempo total (%[1]s) lógicamente:

1. **Inicio (Enganche/Activación)**: Minutos, actividad, recursos.
2. **Desarrollo (Exploración/Explicación)**: Minutos, actividad principal usando %[2]s.
3. **Cierre (Reflexión/Evaluación)**: Minutos, ticket de salida o síntesis.

Formato claro con negritas para los tiempos.`

const rubricTask = `Genera SOLO una "Rúbrica de Evaluación" en formato Tabla Markdown.
Columnas: Criterio de Evaluación | Experto (10) | Competente (8) | Aprendiz (6) | Novato (4).
Filas: 3-4 criterios relevantes al tema y la metodología %[1]s.

Agrega al final una breve sugerencia de instrumento de evaluación (ej: Lista de cotejo, Kahoot, etc).`

// contextField selects which request fields appear in a prompt's context line.
type contextField int

const (
	withLevel contextField = 1 << iota
	withDuration
	withMethodology
)

// methodologyLabel renders a catalog methodology as "Name (id)"; unknown ids
// pass through unchanged.
func methodologyLabel(id string) string {
	if m, ok := lesson.LookupMethodology(id); ok {
		return fmt.Sprintf("%s (%s)", m.Name, m.ID)
	}
	return id
}

// buildPrompt writes the shared persona and context line, the section task,
// and the optional teacher context.
func buildPrompt(req lesson.Request, fields contextField, task string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Actúa como experto pedagogo. Contexto: Clase de %s, Tema: %s", req.Subject, req.Topic)
	if fields&withLevel != 0 {
		fmt.Fprintf(&b, ", Nivel: %s", req.Level)
	}
	if fields&withDuration != 0 {
		fmt.Fprintf(&b, ", Duración: %s", req.Duration)
	}
	b.WriteString(".")
	if fields&withMethodology != 0 {
		fmt.Fprintf(&b, " Metodología: %s.", methodologyLabel(req.Methodology))
	}

	b.WriteString("\n\n")
	b.WriteString(task)

	if c := strings.TrimSpace(req.Context); c != "" {
		b.WriteString("\n\nContexto adicional del grupo (tenlo en cuenta):\n")
		b.WriteString(c)
	}

	return b.String()
}

func overviewPrompt(req lesson.Request) string {
	return buildPrompt(req, withLevel|withDuration|withMethodology, overviewTask)
}

func objectivesPrompt(req lesson.Request) string {
	return buildPrompt(req, withLevel, objectivesTask)
}

func sequencePrompt(req lesson.Request) string {
	task := fmt.Sprintf(sequenceTask, req.Duration, methodologyLabel(req.Methodology))
	return buildPrompt(req, withDuration|withMethodology, task)
}

func rubricPrompt(req lesson.Request) string {
	task := fmt.Sprintf(rubricTask, methodologyLabel(req.Methodology))
	return buildPrompt(req, 0, task)
}
