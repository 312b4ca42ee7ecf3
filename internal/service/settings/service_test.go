package settings

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/settings"
	"github.com/jpkn-sabah/attendance-backend-go/internal/pkg/llm"
)

type memStore struct {
	values map[string]string
}

func newMemStore() *memStore {
	return &memStore{values: make(map[string]string)}
}

func (m *memStore) Get(_ context.Context, key string) (string, error) {
	v, ok := m.values[key]
	if !ok {
		return "", settings.ErrKeyNotFound
	}
	return v, nil
}

func (m *memStore) Set(_ context.Context, key, value string) error {
	m.values[key] = value
	return nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	delete(m.values, key)
	return nil
}

type stubLLM struct {
	reply string
	err   error
	calls int
	last  settings.LLMConfig
}

func (s *stubLLM) Complete(_ context.Context, cfg settings.LLMConfig, _, _ string) (string, error) {
	s.calls++
	s.last = cfg
	return s.reply, s.err
}

func newTestService(store settings.Store, client llm.Client) settings.Service {
	return NewSettingsService(store, client, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func validConfig(name string) settings.LLMConfig {
	return settings.LLMConfig{
		Name:        name,
		Provider:    "openai",
		BaseURL:     "https://api.openai.com/v1",
		Model:       "gpt-4o-mini",
		APIKey:      "sk-test",
		Temperature: 0.5,
		MaxTokens:   1000,
	}
}

func defaultIDs(t *testing.T, svc settings.Service) []string {
	t.Helper()
	configs, err := svc.List(context.Background())
	require.NoError(t, err)
	var out []string
	for _, c := range configs {
		if c.IsDefault {
			out = append(out, c.ID)
		}
	}
	return out
}

func TestListSeedsFirstLoad(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store, &stubLLM{})

	configs, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, configs, 1)

	seeded := configs[0]
	assert.Equal(t, "deepseek-default", seeded.ID)
	assert.Equal(t, "Bayu GPT (DeepSeek)", seeded.Name)
	assert.Equal(t, "deepseek", seeded.Provider)
	assert.True(t, seeded.IsDefault)
	assert.Empty(t, seeded.APIKey, "seeded config ships without a credential")

	_, persisted := store.values[settings.KeyLLMConfigs]
	assert.True(t, persisted, "seed must be written back on first load")
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns id and masks the key", func(t *testing.T) {
		svc := newTestService(newMemStore(), &stubLLM{})
		created, err := svc.Create(ctx, validConfig("Work GPT"))
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "********", created.APIKey)
	})

	t.Run("new default unflags the previous one", func(t *testing.T) {
		svc := newTestService(newMemStore(), &stubLLM{})
		cfg := validConfig("Work GPT")
		cfg.IsDefault = true
		created, err := svc.Create(ctx, cfg)
		require.NoError(t, err)

		assert.Equal(t, []string{created.ID}, defaultIDs(t, svc))
	})

	t.Run("rejects invalid payloads", func(t *testing.T) {
		svc := newTestService(newMemStore(), &stubLLM{})

		missing := validConfig("No Model")
		missing.Model = ""
		_, err := svc.Create(ctx, missing)
		assert.ErrorIs(t, err, settings.ErrInvalidConfig)

		hot := validConfig("Too Hot")
		hot.Temperature = 2.5
		_, err = svc.Create(ctx, hot)
		assert.ErrorIs(t, err, settings.ErrInvalidConfig)
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("masked key keeps the stored credential", func(t *testing.T) {
		store := newMemStore()
		svc := newTestService(store, &stubLLM{})
		created, err := svc.Create(ctx, validConfig("Work GPT"))
		require.NoError(t, err)

		patch := validConfig("Work GPT v2")
		patch.APIKey = "********"
		updated, err := svc.Update(ctx, created.ID, patch)
		require.NoError(t, err)
		assert.Equal(t, "Work GPT v2", updated.Name)

		// The unmasked stored copy still carries the original key.
		require.NoError(t, svc.SetDefault(ctx, created.ID))
		stored, err := svc.Default(ctx)
		require.NoError(t, err)
		assert.Equal(t, "sk-test", stored.APIKey)
	})

	t.Run("promoting to default demotes the rest", func(t *testing.T) {
		svc := newTestService(newMemStore(), &stubLLM{})
		a, err := svc.Create(ctx, validConfig("A"))
		require.NoError(t, err)
		_, err = svc.Create(ctx, validConfig("B"))
		require.NoError(t, err)

		patch := validConfig("A")
		patch.IsDefault = true
		_, err = svc.Update(ctx, a.ID, patch)
		require.NoError(t, err)

		assert.Equal(t, []string{a.ID}, defaultIDs(t, svc))
	})

	t.Run("unknown id", func(t *testing.T) {
		svc := newTestService(newMemStore(), &stubLLM{})
		_, err := svc.Update(ctx, "missing", validConfig("X"))
		assert.ErrorIs(t, err, settings.ErrConfigNotFound)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("deleting the default promotes the first remaining", func(t *testing.T) {
		svc := newTestService(newMemStore(), &stubLLM{})

		configs, err := svc.List(ctx)
		require.NoError(t, err)
		seededID := configs[0].ID

		other, err := svc.Create(ctx, validConfig("Backup"))
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, seededID))
		assert.Equal(t, []string{other.ID}, defaultIDs(t, svc))
	})

	t.Run("unknown id", func(t *testing.T) {
		svc := newTestService(newMemStore(), &stubLLM{})
		assert.ErrorIs(t, svc.Delete(ctx, "missing"), settings.ErrConfigNotFound)
	})
}

func TestSetDefault(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemStore(), &stubLLM{})

	a, err := svc.Create(ctx, validConfig("A"))
	require.NoError(t, err)
	b, err := svc.Create(ctx, validConfig("B"))
	require.NoError(t, err)

	require.NoError(t, svc.SetDefault(ctx, a.ID))
	assert.Equal(t, []string{a.ID}, defaultIDs(t, svc))

	require.NoError(t, svc.SetDefault(ctx, b.ID))
	assert.Equal(t, []string{b.ID}, defaultIDs(t, svc))

	assert.ErrorIs(t, svc.SetDefault(ctx, "missing"), settings.ErrConfigNotFound)
}

func TestDefaultReturnsUnmaskedConfig(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemStore(), &stubLLM{})

	cfg := validConfig("Work GPT")
	cfg.IsDefault = true
	_, err := svc.Create(ctx, cfg)
	require.NoError(t, err)

	got, err := svc.Default(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sk-test", got.APIKey, "completion path needs the real key")
}

func TestTestConnection(t *testing.T) {
	ctx := context.Background()

	t.Run("probes with a capped token budget", func(t *testing.T) {
		client := &stubLLM{reply: "OK"}
		svc := newTestService(newMemStore(), client)
		created, err := svc.Create(ctx, validConfig("Work GPT"))
		require.NoError(t, err)

		require.NoError(t, svc.TestConnection(ctx, created.ID))
		assert.Equal(t, 1, client.calls)
		assert.Equal(t, 5, client.last.MaxTokens)
		assert.Equal(t, "sk-test", client.last.APIKey)
	})

	t.Run("unconfigured entry is rejected before any call", func(t *testing.T) {
		client := &stubLLM{}
		svc := newTestService(newMemStore(), client)

		configs, err := svc.List(ctx)
		require.NoError(t, err)

		err = svc.TestConnection(ctx, configs[0].ID)
		assert.ErrorIs(t, err, settings.ErrInvalidConfig)
		assert.Zero(t, client.calls)
	})

	t.Run("upstream failure is wrapped", func(t *testing.T) {
		upstream := errors.New("401 unauthorized")
		client := &stubLLM{err: upstream}
		svc := newTestService(newMemStore(), client)
		created, err := svc.Create(ctx, validConfig("Work GPT"))
		require.NoError(t, err)

		err = svc.TestConnection(ctx, created.ID)
		assert.ErrorIs(t, err, upstream)
	})
}
