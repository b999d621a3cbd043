// Package plan holds the lesson-plan state machine: which sections may be
// generated, gated on the overview, and how results land in the plan.
package plan

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/registrame/registrame/internal/gateway"
	"github.com/registrame/registrame/internal/lesson"
	"github.com/registrame/registrame/internal/llm"
)

// Machine owns the plan of one wizard session. Operations are expected to
// be issued one at a time; the mutex only protects reads that happen while
// a generation is in flight. State is written only after the gateway call
// returns, and never on failure.
type Machine struct {
	gw        gateway.Gateway
	logger    zerolog.Logger
	keepStale bool
	sessionID string

	mu    sync.Mutex
	state State
}

// New creates a Machine in the empty phase.
func New(gw gateway.Gateway, opts ...Option) *Machine {
	m := &Machine{
		gw:        gw,
		logger:    zerolog.Nop(),
		sessionID: uuid.NewString(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.With().Str("component", "plan").Str("session_id", m.sessionID).Logger()
	return m
}

// SessionID returns the ID stamped on every LLM call of this plan.
func (m *Machine) SessionID() string {
	return m.sessionID
}

// State returns a deep copy of the current plan.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Clone()
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Phase()
}

// SubmitOverview validates draft, generates the overview, and on success
// stores the request and overview and unlocks the plan. Regenerating also
// clears the dependent sections unless WithKeepStaleSections was given.
func (m *Machine) SubmitOverview(ctx context.Context, draft lesson.Draft) error {
	req, err := lesson.Validate(draft)
	if err != nil {
		m.logger.Debug().Err(err).Msg("overview rejected")
		return err
	}

	text, err := m.gw.Overview(m.callContext(ctx), req)
	if err != nil {
		m.logger.Warn().Err(err).Msg("overview generation failed")
		return err
	}

	m.mu.Lock()
	regenerated := m.state.ContextLocked
	m.state.Request = &req
	m.state.Overview = &text
	m.state.ContextLocked = true
	if regenerated && !m.keepStale {
		m.state.Objectives = nil
		m.state.Sequence = nil
		m.state.Rubric = nil
	}
	m.mu.Unlock()

	m.logger.Info().
		Bool("regenerated", regenerated).
		Str("subject", req.Subject).
		Str("topic", req.Topic).
		Str("methodology", req.Methodology).
		Msg("overview generated")
	return nil
}

// GenerateSection generates one dependent section from the stored request.
// It fails with *LockedSectionError while the plan is empty, without calling
// the gateway.
func (m *Machine) GenerateSection(ctx context.Context, s Section) error {
	call, err := m.sectionCall(s)
	if err != nil {
		return err
	}

	m.mu.Lock()
	if !m.state.ContextLocked {
		m.mu.Unlock()
		return &LockedSectionError{Section: s}
	}
	req := *m.state.Request
	m.mu.Unlock()

	text, err := call(m.callContext(ctx), req)
	if err != nil {
		m.logger.Warn().Err(err).Str("section", string(s)).Msg("section generation failed")
		return err
	}

	m.mu.Lock()
	switch s {
	case SectionObjectives:
		m.state.Objectives = &text
	case SectionSequence:
		m.state.Sequence = &text
	case SectionRubric:
		m.state.Rubric = &text
	}
	m.mu.Unlock()

	m.logger.Info().Str("section", string(s)).Msg("section generated")
	return nil
}

// ClearSection removes a dependent section. It is allowed in any phase and
// is a no-op when the section is already absent. The overview cannot be
// cleared and is ignored, as are unknown sections.
func (m *Machine) ClearSection(s Section) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch s {
	case SectionObjectives:
		m.state.Objectives = nil
	case SectionSequence:
		m.state.Sequence = nil
	case SectionRubric:
		m.state.Rubric = nil
	default:
		return
	}
	m.logger.Info().Str("section", string(s)).Msg("section cleared")
}

func (m *Machine) sectionCall(s Section) (func(context.Context, lesson.Request) (string, error), error) {
	switch s {
	case SectionObjectives:
		return m.gw.Objectives, nil
	case SectionSequence:
		return m.gw.Sequence, nil
	case SectionRubric:
		return m.gw.Rubric, nil
	}
	return nil, fmt.Errorf("%w: %q is not a dependent section", ErrUnknownSection, s)
}

func (m *Machine) callContext(ctx context.Context) context.Context {
	return llm.WithSessionID(ctx, m.sessionID)
}
