package settings

import "context"

// Service manages the saved LLM configurations. List returns masked
// credentials; Default returns the raw config for outbound calls.
type Service interface {
	List(ctx context.Context) ([]LLMConfig, error)
	Create(ctx context.Context, cfg LLMConfig) (LLMConfig, error)
	Update(ctx context.Context, id string, cfg LLMConfig) (LLMConfig, error)
	Delete(ctx context.Context, id string) error
	SetDefault(ctx context.Context, id string) error
	Default(ctx context.Context) (LLMConfig, error)
	// TestConnection sends a minimal completion through the stored config.
	TestConnection(ctx context.Context, id string) error
}
