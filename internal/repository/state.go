package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// StateR is the local key/value mirror of serialized campaigns.
type StateR struct {
	db QueryI
}

func NewStateRepository(db QueryI) *StateR {
	return &StateR{db: db}
}

func (s *StateR) Load(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.GetContext(ctx, &value, `SELECT value FROM kv WHERE key = ?`, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	return value, true, nil
}

func (s *StateR) Save(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

func (s *StateR) Keys(ctx context.Context, prefix string) ([]string, error) {
	keys := make([]string, 0)
	err := s.db.SelectContext(ctx, &keys, `SELECT key FROM kv WHERE key LIKE ? ORDER BY key`, prefix+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	return keys, nil
}
