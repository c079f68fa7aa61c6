// Package scheduler sends the daily pace reminder to every known user.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

type ReminderSource interface {
	KnownUsers(ctx context.Context) ([]int64, error)
	Reminder(ctx context.Context, userID int64) (string, bool)
}

type Notifier interface {
	Alert(userID int64, text string)
}

type Scheduler struct {
	scheduler *gocron.Scheduler
	source    ReminderSource
	notifier  Notifier
	at        string
	log       *zap.Logger
}

// New builds a scheduler firing once a day at the HH:MM given in at, local time.
func New(source ReminderSource, notifier Notifier, at string, log *zap.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.Local),
		source:    source,
		notifier:  notifier,
		at:        at,
		log:       log,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.scheduler.Every(1).Day().At(s.at).Do(s.RunOnce, context.Background()); err != nil {
		return fmt.Errorf("failed to schedule reminder at %q: %w", s.at, err)
	}

	s.scheduler.StartAsync()
	s.log.Info("reminder scheduled", zap.String("at", s.at))
	return nil
}

func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// RunOnce sends the reminder to each user whose campaign has a period and a goal.
// It returns how many reminders went out.
func (s *Scheduler) RunOnce(ctx context.Context) int {
	users, err := s.source.KnownUsers(ctx)
	if err != nil {
		s.log.Error("failed to list users for reminders", zap.Error(err))
		return 0
	}

	sent := 0
	for _, id := range users {
		text, ok := s.source.Reminder(ctx, id)
		if !ok {
			continue
		}
		s.notifier.Alert(id, text)
		sent++
	}

	s.log.Info("reminders sent", zap.Int("users", len(users)), zap.Int("sent", sent))
	return sent
}
