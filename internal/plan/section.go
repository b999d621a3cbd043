package plan

import (
	"fmt"
	"strings"
)

// Section names one slot of a lesson plan.
type Section string

const (
	SectionOverview   Section = "overview"
	SectionObjectives Section = "objectives"
	SectionSequence   Section = "sequence"
	SectionRubric     Section = "rubric"
)

// Sections returns every section in document order.
func Sections() []Section {
	return []Section{SectionOverview, SectionObjectives, SectionSequence, SectionRubric}
}

// DependentSections returns the sections gated on the overview.
func DependentSections() []Section {
	return []Section{SectionObjectives, SectionSequence, SectionRubric}
}

// Dependent reports whether s is one of the sections unlocked by the overview.
func (s Section) Dependent() bool {
	switch s {
	case SectionObjectives, SectionSequence, SectionRubric:
		return true
	}
	return false
}

// ParseSection accepts a section name, case-insensitive.
func ParseSection(name string) (Section, error) {
	s := Section(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Sections() {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, name)
}

// Phase is the coarse state of a plan.
type Phase int

const (
	// PhaseEmpty has no request and no generated sections.
	PhaseEmpty Phase = iota
	// PhaseUnlocked has a request and an overview; dependents may be generated.
	PhaseUnlocked
)

func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhaseUnlocked:
		return "unlocked"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}
