package llm

import "context"

// Provider is a chat-completion backend. Implementations are stateless apart
// from their HTTP client and are safe for sequential reuse.
type Provider interface {
	// Name returns the provider name ("openai", "ollama").
	Name() string

	// Chat sends one system+user exchange to the given model.
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)

	// IsAvailable reports whether the provider is reachable and configured.
	IsAvailable(ctx context.Context) bool
}

// ChatRequest is a single completion call.
type ChatRequest struct {
	Model        string // Model identifier, provider-specific
	SystemPrompt string
	UserContent  string
	MaxTokens    int
	JSONResponse bool // Ask the model for a JSON object response
}

// ChatResponse is the model's reply.
type ChatResponse struct {
	Content    string
	Model      string
	TokensUsed int
}
