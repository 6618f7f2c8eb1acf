package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"tubefetch/backend/config"
)

const settingsKey = "app-settings"

// GetSettings loads the persisted settings blob. Missing or unreadable blobs
// fall back to defaults so a fresh database starts the app cleanly.
func (s *Store) GetSettings(ctx context.Context) (config.Settings, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", settingsKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return config.DefaultSettings(), nil
	}
	if err != nil {
		return config.DefaultSettings(), err
	}

	var settings config.Settings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		return config.DefaultSettings(), err
	}
	settings.Normalize()
	return settings, nil
}

// SaveSettings persists the settings blob, replacing any previous value.
func (s *Store) SaveSettings(ctx context.Context, settings config.Settings) error {
	settings.Normalize()
	raw, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	query := `
	INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`
	_, err = s.db.ExecContext(ctx, query, settingsKey, string(raw))
	return err
}
