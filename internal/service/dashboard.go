package service

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/DanRulev/sentrack.git/internal/models"
	"github.com/DanRulev/sentrack.git/internal/progress"
	"github.com/DanRulev/sentrack.git/pkg/validator"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type DashboardS struct {
	ws      *Workspaces
	now     func() time.Time
	printer *message.Printer
	log     *zap.Logger
}

func NewDashboardService(ws *Workspaces, log *zap.Logger) *DashboardS {
	return &DashboardS{
		ws:      ws,
		now:     time.Now,
		printer: message.NewPrinter(language.Korean),
		log:     log,
	}
}

// Stats reports the campaign metadata and its progress as of today.
func (d *DashboardS) Stats(ctx context.Context, userID int64) (models.Meta, models.Stats) {
	store := d.ws.Get(ctx, userID)
	meta := store.Meta()
	return meta, progress.Compute(meta, store.Len(), d.now())
}

func (d *DashboardS) SetTitle(ctx context.Context, userID int64, title string) error {
	return d.updateMeta(ctx, userID, func(m *models.Meta) {
		m.Title = strings.TrimSpace(title)
	})
}

func (d *DashboardS) SetPeriod(ctx context.Context, userID int64, start, end string) error {
	if !validator.IsDate(start) || !validator.IsDate(end) {
		return ErrInvalidDate
	}
	return d.updateMeta(ctx, userID, func(m *models.Meta) {
		m.Start = start
		m.End = end
	})
}

// SetGoal stores the target sentence count, clamped to zero.
func (d *DashboardS) SetGoal(ctx context.Context, userID int64, goal int) error {
	return d.updateMeta(ctx, userID, func(m *models.Meta) {
		m.Goal = goal
	})
}

func (d *DashboardS) updateMeta(ctx context.Context, userID int64, fn func(*models.Meta)) error {
	store := d.ws.Get(ctx, userID)
	store.UpdateMeta(fn)
	return d.ws.Persist(ctx, userID, store)
}

func (d *DashboardS) KnownUsers(ctx context.Context) ([]int64, error) {
	return d.ws.Users(ctx)
}

// Reminder is the daily nudge; ok is false when the campaign has no period.
func (d *DashboardS) Reminder(ctx context.Context, userID int64) (string, bool) {
	meta, stats := d.Stats(ctx, userID)
	if stats.Duration == 0 || meta.Goal == 0 {
		return "", false
	}

	var sb strings.Builder
	sb.WriteString("⏰ 오늘의 리마인더\n\n")
	sb.WriteString(d.printer.Sprintf("📍 오늘까지 누계 목표: %d 문장\n", int(math.Round(stats.CumulativeTarget))))
	sb.WriteString(d.printer.Sprintf("✍️ 현재: %d 문장 (%s)", stats.Count, d.signed(stats.Delta)))
	return sb.String(), true
}

func (d *DashboardS) signed(n int) string {
	if n >= 0 {
		return d.printer.Sprintf("+%d", n)
	}
	return d.printer.Sprintf("-%d", -n)
}
