package llm

import "context"

// Provider is the core abstraction for text generation.
// Consumers send a single prompt and receive the generated text.
type Provider interface {
	// Generate sends the prompt to the backend and returns its text output.
	// Generate is a single request/response call; providers never stream.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the backend.
type Request struct {
	// System sets the model's role. Optional.
	System string

	// Prompt is the user prompt.
	Prompt string

	// MaxTokens caps the response length. Zero leaves the provider default.
	MaxTokens int

	// Temperature controls randomness. Zero leaves the provider default.
	Temperature float64
}

// Response holds the backend's output.
type Response struct {
	// Text is the generated content, treated as Markdown by callers.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
