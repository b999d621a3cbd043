package plan

import "github.com/registrame/registrame/internal/lesson"

// State is a snapshot of a plan. A nil slot is absent.
//
// ContextLocked is true exactly when Overview is non-nil; Request is set
// together with the overview.
type State struct {
	Request       *lesson.Request
	ContextLocked bool
	Overview      *string
	Objectives    *string
	Sequence      *string
	Rubric        *string
}

// Phase reports whether the plan has been unlocked.
func (s State) Phase() Phase {
	if s.ContextLocked {
		return PhaseUnlocked
	}
	return PhaseEmpty
}

// Slot returns the text of a section and whether it is present.
func (s State) Slot(sec Section) (string, bool) {
	p := s.slotPtr(sec)
	if p == nil {
		return "", false
	}
	return *p, true
}

func (s State) slotPtr(sec Section) *string {
	switch sec {
	case SectionOverview:
		return s.Overview
	case SectionObjectives:
		return s.Objectives
	case SectionSequence:
		return s.Sequence
	case SectionRubric:
		return s.Rubric
	}
	return nil
}

// Clone returns a deep copy that shares no pointers with s.
func (s State) Clone() State {
	out := State{
		ContextLocked: s.ContextLocked,
		Overview:      cloneString(s.Overview),
		Objectives:    cloneString(s.Objectives),
		Sequence:      cloneString(s.Sequence),
		Rubric:        cloneString(s.Rubric),
	}
	if s.Request != nil {
		req := *s.Request
		out.Request = &req
	}
	return out
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
