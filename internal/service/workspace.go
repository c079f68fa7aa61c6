package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/DanRulev/sentrack.git/internal/models"
	"github.com/DanRulev/sentrack.git/internal/state"
	"go.uber.org/zap"
)

// Workspaces hands out one state.Store per user, loading it from local storage on
// first use and writing it back after every mutation.
type Workspaces struct {
	mu        sync.Mutex
	persistMu sync.Mutex
	stores    map[int64]*state.Store
	local     LocalStateRI
	namespace string
	now       func() time.Time
	log       *zap.Logger
}

func NewWorkspaces(local LocalStateRI, namespace string, log *zap.Logger) *Workspaces {
	return &Workspaces{
		stores:    make(map[int64]*state.Store),
		local:     local,
		namespace: namespace,
		now:       time.Now,
		log:       log,
	}
}

func (w *Workspaces) key(userID int64) string {
	return fmt.Sprintf("%s:%d", w.namespace, userID)
}

// Get returns the user's store. Missing or corrupt local data yields the default
// campaign.
func (w *Workspaces) Get(ctx context.Context, userID int64) *state.Store {
	w.mu.Lock()
	defer w.mu.Unlock()

	if s, ok := w.stores[userID]; ok {
		return s
	}

	s := state.New(w.load(ctx, userID))
	w.stores[userID] = s
	return s
}

func (w *Workspaces) load(ctx context.Context, userID int64) (st models.State) {
	raw, ok, err := w.local.Load(ctx, w.key(userID))
	if err != nil {
		w.log.Warn("failed to read local state", zap.Int64("user_id", userID), zap.Error(err))
		return state.Default(w.now())
	}
	if !ok {
		return state.Default(w.now())
	}

	st, err = state.Decode([]byte(raw), w.now())
	if err != nil {
		w.log.Warn("corrupt local state, starting over", zap.Int64("user_id", userID), zap.Error(err))
		return state.Default(w.now())
	}
	return st
}

// Persist writes the current snapshot. The lock keeps an older snapshot from
// overwriting a newer one when callbacks persist concurrently.
func (w *Workspaces) Persist(ctx context.Context, userID int64, s *state.Store) error {
	w.persistMu.Lock()
	defer w.persistMu.Unlock()

	data, err := state.Encode(s.Snapshot())
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	if err := w.local.Save(ctx, w.key(userID), string(data)); err != nil {
		w.log.Error("failed to persist local state", zap.Int64("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}

// Users lists every user with a stored campaign.
func (w *Workspaces) Users(ctx context.Context) ([]int64, error) {
	prefix := w.namespace + ":"
	keys, err := w.local.Keys(ctx, prefix)
	if err != nil {
		return nil, err
	}

	users := make([]int64, 0, len(keys))
	for _, k := range keys {
		id, err := strconv.ParseInt(strings.TrimPrefix(k, prefix), 10, 64)
		if err != nil {
			continue
		}
		users = append(users, id)
	}
	return users, nil
}
