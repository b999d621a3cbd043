package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMockProvider_ReturnsCannedResponses(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Text: "## Uno", Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
		MockResponse{Text: "## Dos"},
	)

	resp1, err := mock.Generate(context.Background(), Request{Prompt: "first"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp1.Text != "## Uno" {
		t.Fatalf("expected '## Uno', got %q", resp1.Text)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}
	if resp1.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp1.StopReason)
	}

	resp2, err := mock.Generate(context.Background(), Request{Prompt: "second"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp2.Text != "## Dos" {
		t.Fatalf("expected '## Dos', got %q", resp2.Text)
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error from empty queue")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(MockResponse{Text: "ok"})

	req := Request{System: "sys", Prompt: "hola"}
	_, _ = mock.Generate(context.Background(), req)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0].System != "sys" || mock.Calls[0].Prompt != "hola" {
		t.Fatalf("unexpected recorded request: %+v", mock.Calls[0])
	}
}

func TestMockProvider_ReturnsConfiguredError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{RetryAfter: time.Second}})

	_, err := mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}
}

func TestPlaceholderProvider_AnswersEveryPrompt(t *testing.T) {
	p := NewPlaceholderProvider()
	for i := 0; i < 3; i++ {
		resp, err := p.Generate(context.Background(), Request{Prompt: "Actúa como experto pedagogo.\nmás"})
		if err != nil {
			t.Fatalf("call %d: unexpected error: %v", i, err)
		}
		if resp.Text == "" {
			t.Fatalf("call %d: expected placeholder text", i)
		}
	}
	if p.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", p.CallCount())
	}
}

func TestMockProvider_ModelID(t *testing.T) {
	if id := NewMockProvider().ModelID(); id != "mock" {
		t.Fatalf("expected 'mock', got %q", id)
	}
}

func TestContextLabels(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}
	if s := SessionIDFrom(ctx); s != "" {
		t.Fatalf("expected empty session, got %q", s)
	}

	ctx = WithPurpose(ctx, "rubric")
	ctx = WithSessionID(ctx, "sess-1")
	if p := PurposeFrom(ctx); p != "rubric" {
		t.Fatalf("expected 'rubric', got %q", p)
	}
	if s := SessionIDFrom(ctx); s != "sess-1" {
		t.Fatalf("expected 'sess-1', got %q", s)
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&ErrProviderUnavailable{}, "LLM provider unavailable"},
		{&ErrEmptyResponse{Model: "m"}, "empty response from model m"},
		{&ErrMissingAPIKey{Provider: "gemini", EnvVar: "X"}, "X is required for the gemini provider"},
		{&ErrUnknownProvider{Name: "foo"}, `unknown LLM provider: "foo"`},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}
