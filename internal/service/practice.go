package service

import (
	"context"
	"fmt"
	"time"

	"github.com/DanRulev/sentrack.git/internal/async"
	"github.com/DanRulev/sentrack.git/internal/models"
	"github.com/DanRulev/sentrack.git/internal/progress"
	"github.com/DanRulev/sentrack.git/internal/state"
	"go.uber.org/zap"
)

const PageSize = 10

// PracticeS applies row changes to local state first and then mirrors them to the
// remote store. Each operation returns a task that settles after its remote
// write and the matching reconciliation (confirm, rollback, log or reload).
type PracticeS struct {
	ws       *Workspaces
	repo     RowsRI
	sessions SessionCache
	notifier Notifier
	tasks    *async.Group
	now      func() time.Time
	log      *zap.Logger
}

func NewPracticeService(ws *Workspaces, repo RowsRI, sessions SessionCache, notifier Notifier, tasks *async.Group, log *zap.Logger) *PracticeS {
	return &PracticeS{
		ws:       ws,
		repo:     repo,
		sessions: sessions,
		notifier: notifier,
		tasks:    tasks,
		now:      time.Now,
		log:      log,
	}
}

func (p *PracticeS) owner(userID int64) (string, bool) {
	acc, ok := p.sessions.GetSession(userID)
	if !ok || acc.ID == "" {
		return "", false
	}
	return acc.ID, true
}

func (p *PracticeS) AddRow(ctx context.Context, userID int64, ko, en string) (models.Row, *async.Task, error) {
	store := p.ws.Get(ctx, userID)
	row := store.Append(ko, en)
	_ = p.ws.Persist(ctx, userID, store)

	owner, ok := p.owner(userID)
	if !ok {
		return row, async.Resolved(nil), nil
	}

	var id string
	task := p.tasks.Go(func(ctx context.Context) error {
		var err error
		id, err = p.repo.InsertRow(ctx, owner, row)
		return err
	}, func(ctx context.Context, err error) {
		if err != nil {
			p.rollbackAdd(ctx, userID, store, row, err)
			return
		}
		p.confirmAdd(ctx, userID, owner, store, row.Key, id)
	})

	return row, task, nil
}

func (p *PracticeS) rollbackAdd(ctx context.Context, userID int64, store *state.Store, row models.Row, cause error) {
	p.log.Warn("remote insert failed, rolling back", zap.Int64("user_id", userID), zap.String("key", row.Key), zap.Error(cause))

	if _, ok := store.Remove(row.Key); ok {
		_ = p.ws.Persist(ctx, userID, store)
	}
	p.notifier.Alert(userID, fmt.Sprintf("❌ 문장 #%d 을(를) 서버에 저장하지 못해 삭제했습니다: %v", row.No, cause))
}

func (p *PracticeS) confirmAdd(ctx context.Context, userID int64, owner string, store *state.Store, key, id string) {
	if store.Confirm(key, id) {
		_ = p.ws.Persist(ctx, userID, store)
		return
	}

	// Deleted locally before the insert came back.
	if err := p.repo.DeleteRow(ctx, owner, id); err != nil {
		p.log.Warn("failed to delete orphan row", zap.Int64("user_id", userID), zap.String("id", id), zap.Error(err))
	}
}

func (p *PracticeS) UpdateRow(ctx context.Context, userID int64, key string, patch models.RowPatch) (*async.Task, error) {
	store := p.ws.Get(ctx, userID)
	row, ok := store.Patch(key, patch)
	if !ok {
		return nil, ErrRowNotFound
	}
	_ = p.ws.Persist(ctx, userID, store)

	return p.pushRow(userID, row), nil
}

func (p *PracticeS) RecordOutcome(ctx context.Context, userID int64, key string, outcome models.Outcome) (models.Row, *async.Task, error) {
	if !outcome.Valid() {
		return models.Row{}, nil, fmt.Errorf("%w: %q", ErrInvalidOutcome, outcome)
	}

	store := p.ws.Get(ctx, userID)
	row, ok := store.Record(key, outcome, progress.Today(p.now()))
	if !ok {
		return models.Row{}, nil, ErrRowNotFound
	}
	_ = p.ws.Persist(ctx, userID, store)

	return row, p.pushRow(userID, row), nil
}

// pushRow writes a row best-effort. Provisional rows are skipped, not queued,
// and failures are only logged.
func (p *PracticeS) pushRow(userID int64, row models.Row) *async.Task {
	owner, ok := p.owner(userID)
	if !ok || !row.Confirmed() {
		return async.Resolved(nil)
	}

	return p.tasks.Go(func(ctx context.Context) error {
		return p.repo.UpdateRow(ctx, owner, row)
	}, func(ctx context.Context, err error) {
		if err != nil {
			p.log.Warn("remote update failed", zap.Int64("user_id", userID), zap.String("id", row.ID), zap.Error(err))
		}
	})
}

func (p *PracticeS) DeleteRow(ctx context.Context, userID int64, key string) (*async.Task, error) {
	store := p.ws.Get(ctx, userID)
	removed, ok := store.Remove(key)
	if !ok {
		return nil, ErrRowNotFound
	}
	_ = p.ws.Persist(ctx, userID, store)

	owner, ok := p.owner(userID)
	if !ok {
		return async.Resolved(nil), nil
	}

	order := store.Order()
	return p.tasks.Go(func(ctx context.Context) error {
		if removed.Confirmed() {
			if err := p.repo.DeleteRow(ctx, owner, removed.ID); err != nil {
				return err
			}
		}
		return p.repo.ReorderRows(ctx, owner, order)
	}, func(ctx context.Context, err error) {
		if err != nil {
			p.recoverFromRemote(ctx, userID, owner, store, "삭제", err)
		}
	}), nil
}

func (p *PracticeS) MoveRow(ctx context.Context, userID int64, key string, position int) (*async.Task, error) {
	store := p.ws.Get(ctx, userID)
	if _, ok := store.Move(key, position); !ok {
		return nil, ErrRowNotFound
	}
	_ = p.ws.Persist(ctx, userID, store)

	owner, ok := p.owner(userID)
	if !ok {
		return async.Resolved(nil), nil
	}

	order := store.Order()
	return p.tasks.Go(func(ctx context.Context) error {
		return p.repo.ReorderRows(ctx, owner, order)
	}, func(ctx context.Context, err error) {
		if err != nil {
			p.recoverFromRemote(ctx, userID, owner, store, "순서 변경", err)
		}
	}), nil
}

// recoverFromRemote alerts the user and overwrites local rows with whatever the
// remote store holds. The last full reload wins; nothing is merged.
func (p *PracticeS) recoverFromRemote(ctx context.Context, userID int64, owner string, store *state.Store, action string, cause error) {
	p.log.Error("remote write failed, reloading", zap.Int64("user_id", userID), zap.String("action", action), zap.Error(cause))
	p.notifier.Alert(userID, fmt.Sprintf("❌ %s 실패: %v\n서버에서 목록을 다시 불러옵니다.", action, cause))

	rows, err := p.repo.ListRows(ctx, owner)
	if err != nil {
		p.log.Error("reload after failure failed", zap.Int64("user_id", userID), zap.Error(err))
		p.notifier.Alert(userID, "❌ 서버에서 목록을 불러오지 못했습니다.")
		return
	}
	store.ReplaceRows(rows)
	_ = p.ws.Persist(ctx, userID, store)
}

// Reload replaces the user's rows with the remote list.
func (p *PracticeS) Reload(ctx context.Context, userID int64) error {
	owner, ok := p.owner(userID)
	if !ok {
		return ErrNotAuthenticated
	}

	rows, err := p.repo.ListRows(ctx, owner)
	if err != nil {
		return err
	}

	store := p.ws.Get(ctx, userID)
	store.ReplaceRows(rows)
	return p.ws.Persist(ctx, userID, store)
}

// Rows returns one page of rows in sequence order, the total row count and
// whether another page follows.
func (p *PracticeS) Rows(ctx context.Context, userID int64, page int) ([]models.Row, int, bool) {
	rows := p.ws.Get(ctx, userID).Snapshot().Rows
	total := len(rows)

	if page < 0 {
		page = 0
	}
	from := page * PageSize
	if from >= total {
		return []models.Row{}, total, false
	}
	to := from + PageSize
	if to > total {
		to = total
	}
	return rows[from:to], total, to < total
}

func (p *PracticeS) Row(ctx context.Context, userID int64, key string) (models.Row, error) {
	row, ok := p.ws.Get(ctx, userID).Row(key)
	if !ok {
		return models.Row{}, ErrRowNotFound
	}
	return row, nil
}

// Wait blocks until all remote writes started so far have settled.
func (p *PracticeS) Wait() {
	p.tasks.Wait()
}
