package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/DanRulev/sentrack.git/internal/models"
	"github.com/DanRulev/sentrack.git/pkg/validator"
	"go.uber.org/zap"
)

type SessionS struct {
	repo     AccountRI
	sessions SessionCache
	practice *PracticeS
	log      *zap.Logger
}

func NewSessionService(repo AccountRI, sessions SessionCache, practice *PracticeS, log *zap.Logger) *SessionS {
	return &SessionS{
		repo:     repo,
		sessions: sessions,
		practice: practice,
		log:      log,
	}
}

// Login authenticates the user and replaces local rows with the remote ones.
// A failed reload keeps the session and reports ErrSyncFailed.
func (s *SessionS) Login(ctx context.Context, userID int64, email, password string) (models.Account, error) {
	email = strings.TrimSpace(email)
	if !validator.IsEmail(email) || password == "" {
		return models.Account{}, ErrInvalidCredentials
	}

	acc, err := s.repo.Authenticate(ctx, email, password)
	if err != nil {
		s.log.Info("login failed", zap.Int64("user_id", userID), zap.String("email", email), zap.Error(err))
		return models.Account{}, err
	}

	s.sessions.SetSession(userID, acc)

	if err := s.practice.Reload(ctx, userID); err != nil {
		s.log.Warn("failed to load rows after login", zap.Int64("user_id", userID), zap.Error(err))
		return acc, fmt.Errorf("%w: %v", ErrSyncFailed, err)
	}

	return acc, nil
}

func (s *SessionS) Logout(userID int64) {
	s.sessions.DeleteSession(userID)
}

func (s *SessionS) CurrentUser(userID int64) (models.Account, bool) {
	return s.sessions.GetSession(userID)
}
