package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DanRulev/sentrack.git/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type AccountsR struct {
	db QueryI
}

func NewAccountsRepository(db QueryI) *AccountsR {
	return &AccountsR{db: db}
}

func (a *AccountsR) Authenticate(ctx context.Context, email, password string) (models.Account, error) {
	query := `
		SELECT id, email, password_hash
		FROM accounts
		WHERE lower(email) = lower($1)
	`

	var rec struct {
		models.Account
		PasswordHash string `db:"password_hash"`
	}
	err := a.db.GetContext(ctx, &rec, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, models.ErrInvalidCredentials
		}
		return models.Account{}, fmt.Errorf("database error: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)); err != nil {
		return models.Account{}, models.ErrInvalidCredentials
	}

	return rec.Account, nil
}
