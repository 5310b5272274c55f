package llm

import (
	"context"
	"fmt"

	"github.com/chemcat/chemcat/internal/store"
)

// NewProvider builds the configured provider and wraps it in the
// standard decorator chain, caller → retry → logging → base: every
// attempt lands in the request log, and retries replay the full
// logged call. The mock provider skips the chain; tests wire their
// own decorators when they need them.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	base, err := newBaseProvider(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("init %s provider: %w", cfg.Provider, err)
	}
	if _, ok := base.(*MockProvider); ok {
		return base, nil
	}
	return WithRetry(WithLogging(base, eventRepo), cfg.Retry), nil
}

func newBaseProvider(ctx context.Context, cfg Config) (Provider, error) {
	switch cfg.Provider {
	case "gemini":
		return NewGeminiProvider(ctx, cfg.Gemini)
	case "openai":
		return NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		return NewAnthropicProvider(cfg.Anthropic)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown provider %q (want gemini, openai, or anthropic)", cfg.Provider)
	}
}
