package service

import (
	"context"
	"time"

	"github.com/DanRulev/sentrack.git/internal/async"
	"github.com/DanRulev/sentrack.git/internal/models"
	"go.uber.org/zap"
)

type RowsRI interface {
	ListRows(ctx context.Context, ownerID string) ([]models.Row, error)
	InsertRow(ctx context.Context, ownerID string, row models.Row) (string, error)
	UpdateRow(ctx context.Context, ownerID string, row models.Row) error
	DeleteRow(ctx context.Context, ownerID, id string) error
	ReorderRows(ctx context.Context, ownerID string, order []models.RowOrder) error
}

type AccountRI interface {
	Authenticate(ctx context.Context, email, password string) (models.Account, error)
}

type RepositoryI interface {
	RowsRI
	AccountRI
}

type LocalStateRI interface {
	Load(ctx context.Context, key string) (string, bool, error)
	Save(ctx context.Context, key, value string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
}

type SessionCache interface {
	SetSession(userID int64, account models.Account)
	GetSession(userID int64) (models.Account, bool)
	DeleteSession(userID int64)
}

// Notifier surfaces errors that happen after a request already returned.
type Notifier interface {
	Alert(userID int64, text string)
}

type Options struct {
	Namespace     string
	RemoteTimeout time.Duration
}

type Service struct {
	*PracticeS
	*DashboardS
	*SessionS
	*TransferS
}

func InitServices(repo RepositoryI, local LocalStateRI, sessions SessionCache, notifier Notifier, opts Options, log *zap.Logger) *Service {
	ws := NewWorkspaces(local, opts.Namespace, log)
	practice := NewPracticeService(ws, repo, sessions, notifier, async.NewGroup(opts.RemoteTimeout), log)

	return &Service{
		PracticeS:  practice,
		DashboardS: NewDashboardService(ws, log),
		SessionS:   NewSessionService(repo, sessions, practice, log),
		TransferS:  NewTransferService(ws, log),
	}
}
