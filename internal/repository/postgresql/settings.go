package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jpkn-sabah/attendance-backend-go/internal/domain/settings"
	"github.com/jpkn-sabah/attendance-backend-go/internal/pkg/database"
)

type settingsStore struct {
	db *database.DB
}

// NewSettingsStore returns the flat key-value store backed by app_settings.
func NewSettingsStore(db *database.DB) settings.Store {
	return &settingsStore{db: db}
}

func (s *settingsStore) Get(ctx context.Context, key string) (string, error) {
	q := GetQuerier(ctx, s.db)

	var value string
	err := q.QueryRow(ctx, `SELECT value FROM app_settings WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", settings.ErrKeyNotFound
		}
		return "", fmt.Errorf("failed to get setting %s: %w", key, err)
	}
	return value, nil
}

func (s *settingsStore) Set(ctx context.Context, key, value string) error {
	q := GetQuerier(ctx, s.db)

	_, err := q.Exec(ctx, `
		INSERT INTO app_settings (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set setting %s: %w", key, err)
	}
	return nil
}

func (s *settingsStore) Delete(ctx context.Context, key string) error {
	q := GetQuerier(ctx, s.db)

	_, err := q.Exec(ctx, `DELETE FROM app_settings WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("failed to delete setting %s: %w", key, err)
	}
	return nil
}
