package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/settings"
	"github.com/jpkn-sabah/attendance-backend-go/internal/pkg/llm"
)

// seedConfigs is written on first read when no configs are stored yet.
// The initial entry matches the dashboard's shipped default and still needs
// an API key before it becomes usable.
func seedConfigs() []settings.LLMConfig {
	return []settings.LLMConfig{
		{
			ID:          "deepseek-default",
			Name:        "Bayu GPT (DeepSeek)",
			Provider:    "deepseek",
			BaseURL:     "https://api.deepseek.com",
			Model:       "deepseek-chat",
			Temperature: 0.7,
			MaxTokens:   1500,
			IsDefault:   true,
		},
	}
}

type SettingsServiceImpl struct {
	store     settings.Store
	llmClient llm.Client
	logger    *slog.Logger

	// mu serializes read-modify-write cycles over the stored JSON list.
	mu sync.Mutex
}

func NewSettingsService(store settings.Store, llmClient llm.Client, logger *slog.Logger) settings.Service {
	return &SettingsServiceImpl{
		store:     store,
		llmClient: llmClient,
		logger:    logger,
	}
}

func (s *SettingsServiceImpl) List(ctx context.Context) ([]settings.LLMConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	configs, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	masked := make([]settings.LLMConfig, len(configs))
	for i, c := range configs {
		masked[i] = c.Masked()
	}
	return masked, nil
}

func (s *SettingsServiceImpl) Create(ctx context.Context, cfg settings.LLMConfig) (settings.LLMConfig, error) {
	if err := validate(cfg); err != nil {
		return settings.LLMConfig{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	configs, err := s.load(ctx)
	if err != nil {
		return settings.LLMConfig{}, err
	}

	cfg.ID = uuid.NewString()
	if cfg.IsDefault {
		for i := range configs {
			configs[i].IsDefault = false
		}
	}
	configs = append(configs, cfg)

	if err := s.save(ctx, configs); err != nil {
		return settings.LLMConfig{}, err
	}
	return cfg.Masked(), nil
}

func (s *SettingsServiceImpl) Update(ctx context.Context, id string, cfg settings.LLMConfig) (settings.LLMConfig, error) {
	if err := validate(cfg); err != nil {
		return settings.LLMConfig{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	configs, err := s.load(ctx)
	if err != nil {
		return settings.LLMConfig{}, err
	}

	idx := indexOf(configs, id)
	if idx < 0 {
		return settings.LLMConfig{}, settings.ErrConfigNotFound
	}

	// A masked key in the payload means "keep the stored one".
	if cfg.APIKey == "" || strings.Trim(cfg.APIKey, "*") == "" {
		cfg.APIKey = configs[idx].APIKey
	}
	cfg.ID = id
	configs[idx] = cfg
	if cfg.IsDefault {
		for i := range configs {
			configs[i].IsDefault = i == idx
		}
	}

	if err := s.save(ctx, configs); err != nil {
		return settings.LLMConfig{}, err
	}
	return configs[idx].Masked(), nil
}

func (s *SettingsServiceImpl) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	configs, err := s.load(ctx)
	if err != nil {
		return err
	}

	idx := indexOf(configs, id)
	if idx < 0 {
		return settings.ErrConfigNotFound
	}
	wasDefault := configs[idx].IsDefault
	configs = append(configs[:idx], configs[idx+1:]...)

	// Deleting the default promotes the first remaining config so the chat
	// path never has to scan for "no default but configs exist".
	if wasDefault && len(configs) > 0 {
		configs[0].IsDefault = true
	}
	return s.save(ctx, configs)
}

func (s *SettingsServiceImpl) SetDefault(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	configs, err := s.load(ctx)
	if err != nil {
		return err
	}

	idx := indexOf(configs, id)
	if idx < 0 {
		return settings.ErrConfigNotFound
	}
	for i := range configs {
		configs[i].IsDefault = i == idx
	}
	return s.save(ctx, configs)
}

func (s *SettingsServiceImpl) Default(ctx context.Context) (settings.LLMConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	configs, err := s.load(ctx)
	if err != nil {
		return settings.LLMConfig{}, err
	}
	for _, c := range configs {
		if c.IsDefault {
			return c, nil
		}
	}
	return settings.LLMConfig{}, settings.ErrConfigNotFound
}

func (s *SettingsServiceImpl) TestConnection(ctx context.Context, id string) error {
	s.mu.Lock()
	configs, err := s.load(ctx)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	idx := indexOf(configs, id)
	if idx < 0 {
		return settings.ErrConfigNotFound
	}
	cfg := configs[idx]
	if !cfg.Configured() {
		return settings.ErrInvalidConfig
	}

	probe := cfg
	probe.MaxTokens = 5
	_, err = s.llmClient.Complete(ctx, probe, "You are a connectivity probe.", "Reply with OK.")
	if err != nil {
		s.logger.Warn("llm connection test failed", "id", id, "provider", cfg.Provider, "model", cfg.Model, "error", err)
		return fmt.Errorf("connection test: %w", err)
	}
	return nil
}

// load reads the stored list, seeding it on first use.
func (s *SettingsServiceImpl) load(ctx context.Context) ([]settings.LLMConfig, error) {
	raw, err := s.store.Get(ctx, settings.KeyLLMConfigs)
	if err != nil {
		if errors.Is(err, settings.ErrKeyNotFound) {
			seeded := seedConfigs()
			if saveErr := s.save(ctx, seeded); saveErr != nil {
				return nil, saveErr
			}
			return seeded, nil
		}
		return nil, fmt.Errorf("load llm configs: %w", err)
	}

	var configs []settings.LLMConfig
	if err := json.Unmarshal([]byte(raw), &configs); err != nil {
		return nil, fmt.Errorf("decode llm configs: %w", err)
	}
	return configs, nil
}

func (s *SettingsServiceImpl) save(ctx context.Context, configs []settings.LLMConfig) error {
	raw, err := json.Marshal(configs)
	if err != nil {
		return fmt.Errorf("encode llm configs: %w", err)
	}
	if err := s.store.Set(ctx, settings.KeyLLMConfigs, string(raw)); err != nil {
		return fmt.Errorf("save llm configs: %w", err)
	}
	return nil
}

func validate(cfg settings.LLMConfig) error {
	if cfg.Name == "" || cfg.Provider == "" || cfg.Model == "" {
		return settings.ErrInvalidConfig
	}
	if cfg.Temperature < 0 || cfg.Temperature > 2 {
		return settings.ErrInvalidConfig
	}
	if cfg.MaxTokens < 0 {
		return settings.ErrInvalidConfig
	}
	return nil
}

func indexOf(configs []settings.LLMConfig, id string) int {
	for i, c := range configs {
		if c.ID == id {
			return i
		}
	}
	return -1
}
