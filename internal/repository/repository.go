package repository

import (
	"context"
	"database/sql"
)

type QueryI interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// Repository is the remote store: accounts and their practice rows.
type Repository struct {
	*RowsR
	*AccountsR
}

func NewRepository(db QueryI) Repository {
	return Repository{
		RowsR:     NewRowsRepository(db),
		AccountsR: NewAccountsRepository(db),
	}
}
