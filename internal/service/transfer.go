package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/DanRulev/sentrack.git/internal/models"
	"github.com/DanRulev/sentrack.git/internal/state"
	"go.uber.org/zap"
)

const (
	FormatJSON = "json"
	FormatXLSX = "xlsx"
)

type TransferS struct {
	ws  *Workspaces
	now func() time.Time
	log *zap.Logger
}

func NewTransferService(ws *Workspaces, log *zap.Logger) *TransferS {
	return &TransferS{
		ws:  ws,
		now: time.Now,
		log: log,
	}
}

// Export serializes the whole campaign into a file named after today's date.
func (t *TransferS) Export(ctx context.Context, userID int64, format string) (string, []byte, error) {
	st := t.ws.Get(ctx, userID).Snapshot()
	name := fmt.Sprintf("engapp-data-%s.%s", t.now().Format(time.DateOnly), format)

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		data, err = state.Encode(st)
	case FormatXLSX:
		data, err = encodeXLSX(st)
	default:
		return "", nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return "", nil, fmt.Errorf("failed to export: %w", err)
	}

	return name, data, nil
}

// Import replaces the campaign wholesale with the document's contents. The
// remote store is left alone.
func (t *TransferS) Import(ctx context.Context, userID int64, fileName string, data []byte) (models.State, error) {
	var (
		st  models.State
		err error
	)
	if strings.EqualFold(filepath.Ext(fileName), "."+FormatXLSX) {
		st, err = decodeXLSX(data, t.now())
	} else {
		st, err = state.Decode(data, t.now())
	}
	if err != nil {
		t.log.Info("rejected import", zap.Int64("user_id", userID), zap.String("file", fileName), zap.Error(err))
		return models.State{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	store := t.ws.Get(ctx, userID)
	store.Replace(st)
	if err := t.ws.Persist(ctx, userID, store); err != nil {
		return models.State{}, err
	}

	return store.Snapshot(), nil
}
