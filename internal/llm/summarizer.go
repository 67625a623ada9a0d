package llm

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/ppiankov/paperlens/internal/model"
)

// target pairs a provider with the model identifier to ask it for.
type target struct {
	provider Provider
	model    string
}

// Summarizer sends prompts to the primary model and retries exactly once
// against the fallback model when the primary fails. Calls are paced by a
// process-wide rate limiter and run strictly sequentially.
type Summarizer struct {
	primary   target
	fallback  target
	limiter   *rate.Limiter
	maxTokens int
	logger    zerolog.Logger
}

// NewSummarizer wires providers from configuration: with an API key the
// primary model runs on OpenAI, otherwise both models run on Ollama. The
// fallback model always runs on Ollama, matching the local-model escape
// hatch the service was built around.
func NewSummarizer(cfg model.LLMConfig, logger zerolog.Logger) (*Summarizer, error) {
	ollamaProvider := NewOllamaProvider(cfg.BaseURL, cfg.Timeout)

	var primary target
	if cfg.APIKey != "" {
		p, err := NewOpenAIProvider(cfg.APIKey, "", cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("init openai: %w", err)
		}
		primary = target{provider: p, model: cfg.PrimaryModel}
		logger.Info().Str("model", cfg.PrimaryModel).Msg("using OpenAI as primary model")
	} else {
		primary = target{provider: ollamaProvider, model: cfg.PrimaryModel}
		logger.Info().Str("model", cfg.PrimaryModel).Msg("no API key, using Ollama as primary model")
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}

	return &Summarizer{
		primary:   primary,
		fallback:  target{provider: ollamaProvider, model: cfg.FallbackModel},
		limiter:   rate.NewLimiter(rate.Limit(rps), 1),
		maxTokens: cfg.MaxTokens,
		logger:    logger,
	}, nil
}

// NewSummarizerWithProviders builds a summarizer over explicit targets.
// Used by tests and by callers that manage providers themselves.
func NewSummarizerWithProviders(primary Provider, primaryModel string, fallback Provider, fallbackModel string, logger zerolog.Logger) *Summarizer {
	return &Summarizer{
		primary:  target{provider: primary, model: primaryModel},
		fallback: target{provider: fallback, model: fallbackModel},
		limiter:  rate.NewLimiter(rate.Inf, 1),
		logger:   logger,
	}
}

// Generate runs one system+user exchange. On any primary failure it tries
// the fallback model exactly once; if that also fails the returned error
// wraps ErrAnalysisFailed.
func (s *Summarizer) Generate(ctx context.Context, systemPrompt, userContent string, jsonResponse bool) (*ChatResponse, error) {
	req := ChatRequest{
		SystemPrompt: systemPrompt,
		UserContent:  userContent,
		MaxTokens:    s.maxTokens,
		JSONResponse: jsonResponse,
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req.Model = s.primary.model
	resp, primaryErr := s.primary.provider.Chat(ctx, req)
	if primaryErr == nil {
		return resp, nil
	}

	s.logger.Warn().
		Err(primaryErr).
		Str("provider", s.primary.provider.Name()).
		Str("model", s.primary.model).
		Msg("primary model failed, trying fallback")

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req.Model = s.fallback.model
	resp, fallbackErr := s.fallback.provider.Chat(ctx, req)
	if fallbackErr == nil {
		return resp, nil
	}

	return nil, fmt.Errorf("primary (%s/%s): %v; fallback (%s/%s): %v: %w",
		s.primary.provider.Name(), s.primary.model, primaryErr,
		s.fallback.provider.Name(), s.fallback.model, fallbackErr,
		model.ErrAnalysisFailed)
}

// PrimaryName reports the primary provider for display on the landing page.
func (s *Summarizer) PrimaryName() string {
	return s.primary.provider.Name()
}
