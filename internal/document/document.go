// Package document assembles a lesson plan into a single Markdown document.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/registrame/registrame/internal/plan"
)

// untitled replaces an empty topic in the title line.
const untitled = "Sin título"

var headings = map[plan.Section]string{
	plan.SectionOverview:   "I. Experiencia DUA & STEM",
	plan.SectionObjectives: "II. Objetivos de Aprendizaje",
	plan.SectionSequence:   "III. Secuencia Didáctica",
	plan.SectionRubric:     "IV. Rúbrica de Evaluación",
}

// Heading returns the numbered label of a section, or "" if unknown.
func Heading(s plan.Section) string {
	return headings[s]
}

// Assemble renders st as Markdown: a title line with the topic, a metadata
// line with subject and level, then each present section in fixed order.
// Absent sections leave no trace.
func Assemble(st plan.State) string {
	var subject, topic, level string
	if st.Request != nil {
		subject = st.Request.Subject
		topic = st.Request.Topic
		level = string(st.Request.Level)
	}
	if topic == "" {
		topic = untitled
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Planificación: %s\n\n", topic)
	fmt.Fprintf(&b, "**Materia:** %s | **Nivel:** %s\n\n", subject, level)

	for _, s := range plan.Sections() {
		text, ok := st.Slot(s)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "## %s\n%s\n\n", headings[s], text)
	}

	return b.String()
}

// Export writes the assembled document to path, creating parent
// directories as needed.
func Export(path string, st plan.State) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(Assemble(st)), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// FileName derives a file name for the plan from its topic, for example
// "planificacion-leyes-de-newton.md".
func FileName(st plan.State) string {
	topic := ""
	if st.Request != nil {
		topic = st.Request.Topic
	}
	slug := slugify(topic)
	if slug == "" {
		return "planificacion.md"
	}
	return "planificacion-" + slug + ".md"
}

var accentFold = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
	"Á", "a", "É", "e", "Í", "i", "Ó", "o", "Ú", "u", "Ü", "u", "Ñ", "n",
)

func slugify(s string) string {
	s = strings.ToLower(accentFold.Replace(s))

	var b strings.Builder
	dash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
