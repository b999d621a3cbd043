// Package gateway turns a validated lesson request into the four generated
// sections of a lesson plan, one provider call per section.
package gateway

import (
	"context"
	"strings"

	"github.com/registrame/registrame/internal/lesson"
	"github.com/registrame/registrame/internal/llm"
)

// Purposes tag each call in the LLM audit log.
const (
	PurposeOverview   = "overview"
	PurposeObjectives = "objectives"
	PurposeSequence   = "sequence"
	PurposeRubric     = "rubric"
)

// Gateway generates the Markdown body of each plan section.
type Gateway interface {
	Overview(ctx context.Context, req lesson.Request) (string, error)
	Objectives(ctx context.Context, req lesson.Request) (string, error)
	Sequence(ctx context.Context, req lesson.Request) (string, error)
	Rubric(ctx context.Context, req lesson.Request) (string, error)
}

// LLMGateway implements Gateway on top of an llm.Provider. It holds no
// per-session state and may be shared.
type LLMGateway struct {
	provider llm.Provider
	cfg      Config
}

// New creates a Gateway backed by provider.
func New(provider llm.Provider, cfg Config) *LLMGateway {
	return &LLMGateway{provider: provider, cfg: cfg}
}

func (g *LLMGateway) Overview(ctx context.Context, req lesson.Request) (string, error) {
	return g.generate(ctx, PurposeOverview, overviewPrompt(req))
}

func (g *LLMGateway) Objectives(ctx context.Context, req lesson.Request) (string, error) {
	return g.generate(ctx, PurposeObjectives, objectivesPrompt(req))
}

func (g *LLMGateway) Sequence(ctx context.Context, req lesson.Request) (string, error) {
	return g.generate(ctx, PurposeSequence, sequencePrompt(req))
}

func (g *LLMGateway) Rubric(ctx context.Context, req lesson.Request) (string, error) {
	return g.generate(ctx, PurposeRubric, rubricPrompt(req))
}

func (g *LLMGateway) generate(ctx context.Context, purpose, prompt string) (string, error) {
	ctx = llm.WithPurpose(ctx, purpose)
	if g.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.Timeout)
		defer cancel()
	}

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Prompt:      prompt,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", &GenerationError{Section: purpose, Err: ctxErr}
		}
		return "", &GenerationError{Section: purpose, Err: err}
	}

	if strings.TrimSpace(resp.Text) == "" {
		return "", &GenerationError{Section: purpose, Err: &llm.ErrEmptyResponse{Model: g.provider.ModelID()}}
	}
	return resp.Text, nil
}

// unconfigured fails every call with the same ConfigurationError.
type unconfigured struct {
	err *ConfigurationError
}

// Unconfigured returns a Gateway whose every operation fails with a
// *ConfigurationError wrapping cause. It stands in when no backend could be
// built so the session can still start and report the problem.
func Unconfigured(cause error) Gateway {
	return unconfigured{err: &ConfigurationError{Err: cause}}
}

func (u unconfigured) Overview(context.Context, lesson.Request) (string, error) {
	return "", u.err
}

func (u unconfigured) Objectives(context.Context, lesson.Request) (string, error) {
	return "", u.err
}

func (u unconfigured) Sequence(context.Context, lesson.Request) (string, error) {
	return "", u.err
}

func (u unconfigured) Rubric(context.Context, lesson.Request) (string, error) {
	return "", u.err
}
