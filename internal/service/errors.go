package service

import (
	"errors"

	"github.com/DanRulev/sentrack.git/internal/models"
)

var (
	ErrRowNotFound        = errors.New("row not found")
	ErrInvalidOutcome     = errors.New("invalid outcome")
	ErrInvalidDate        = errors.New("date must be YYYY-MM-DD")
	ErrInvalidDocument    = errors.New("invalid document")
	ErrUnsupportedFormat  = errors.New("unsupported export format")
	ErrNotAuthenticated   = errors.New("not logged in")
	ErrSyncFailed         = errors.New("failed to load rows from the server")
	ErrInvalidCredentials = models.ErrInvalidCredentials
)
