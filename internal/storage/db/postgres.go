package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/DanRulev/sentrack.git/internal/config"
	_ "github.com/lib/pq"

	"github.com/jmoiron/sqlx"
)

const pingTimeout = 5 * time.Second

// InitDB connects to the remote PostgreSQL store holding accounts and practice rows.
func InitDB(cfg config.DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", remoteDSN(cfg.Conn))
	if err != nil {
		return nil, fmt.Errorf("failed open db connect: %w", err)
	}

	db.SetMaxOpenConns(cfg.Cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Cfg.ConnMaxLifeTime)
	db.SetConnMaxIdleTime(cfg.Cfg.ConnMaxIdleTime)

	if err := ping(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed db ping: %w", err)
	}

	return db, nil
}

func remoteDSN(conn config.DBConn) string {
	params := [][2]string{
		{"host", conn.Host},
		{"port", conn.Port},
		{"dbname", conn.Name},
		{"user", conn.User},
		{"password", conn.Password},
		{"sslmode", conn.SSL},
		{"application_name", "sentrack"},
	}

	parts := make([]string, 0, len(params))
	for _, p := range params {
		if p[1] == "" {
			continue
		}
		parts = append(parts, p[0]+"="+quoteValue(p[1]))
	}
	return strings.Join(parts, " ")
}

// quoteValue applies libpq keyword/value quoting when the value needs it.
func quoteValue(v string) string {
	if !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

func ping(db *sqlx.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	return db.PingContext(ctx)
}
