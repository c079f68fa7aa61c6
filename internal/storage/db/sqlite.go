package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/DanRulev/sentrack.git/internal/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// InitLocal opens the SQLite file holding each user's serialized campaign.
func InitLocal(cfg config.LocalConfig) (*sqlx.DB, error) {
	if cfg.Path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sqlx.Open("sqlite3", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed open local db: %w", err)
	}

	// SQLite has a single writer; one connection also keeps :memory: stable.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := ping(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed local db ping: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create kv table: %w", err)
	}

	return db, nil
}
