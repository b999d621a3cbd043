package lesson

// Methodology is a pedagogical approach a teacher picks for the lesson.
// The catalog is fixed reference data.
type Methodology struct {
	ID          string
	Name        string
	Description string
	Icon        string // visual tag used by the presentation layer
	Color       string
}

var methodologies = []Methodology{
	{
		ID:          "flipped",
		Name:        "Aula Invertida",
		Description: "El estudiante estudia la teoría en casa y practica en clase.",
		Icon:        "refresh",
		Color:       "#2563EB",
	},
	{
		ID:          "gamification",
		Name:        "Gamificación",
		Description: "Uso de mecánicas de juego para motivar y facilitar el aprendizaje.",
		Icon:        "gamepad",
		Color:       "#9333EA",
	},
	{
		ID:          "pbl",
		Name:        "ABP (Proyectos)",
		Description: "Aprendizaje basado en resolver retos o problemas reales.",
		Icon:        "users",
		Color:       "#16A34A",
	},
	{
		ID:          "inquiry",
		Name:        "Indagación STEM",
		Description: "Construcción de conocimiento a través de preguntas y experimentación.",
		Icon:        "lightbulb",
		Color:       "#F97316",
	},
	{
		ID:          "maker",
		Name:        "Cultura Maker",
		Description: "Aprender haciendo, construyendo y prototipando soluciones.",
		Icon:        "cpu",
		Color:       "#DB2777",
	},
}

// Methodologies returns a copy of the catalog in display order.
func Methodologies() []Methodology {
	out := make([]Methodology, len(methodologies))
	copy(out, methodologies)
	return out
}

// LookupMethodology returns the catalog entry for id.
func LookupMethodology(id string) (Methodology, bool) {
	for _, m := range methodologies {
		if m.ID == id {
			return m, true
		}
	}
	return Methodology{}, false
}
