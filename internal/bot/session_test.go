package bot

import (
	"errors"
	"fmt"
	"testing"
	"time"

	mock_bot "github.com/DanRulev/sentrack.git/internal/bot/mock"
	"github.com/DanRulev/sentrack.git/internal/models"
	"github.com/DanRulev/sentrack.git/internal/service"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSessionTMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_bot.MockServiceI)) *SessionT {
	mockService := mock_bot.NewMockServiceI(ctrl)
	if setupMock != nil {
		setupMock(mockService)
	}
	return NewSessionTAPI(&mock_bot.MockBot{}, mockService, 5*time.Second, zap.NewNop())
}

func TestSessionT_login(t *testing.T) {
	t.Parallel()

	acc := models.Account{ID: "u", Email: "me@example.com"}

	tests := []struct {
		name        string
		text        string
		f           func(*mock_bot.MockServiceI)
		wantText    string
		wantDeleted bool
	}{
		{
			name: "success",
			text: "/login me@example.com pw",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().Login(gomock.Any(), userID, "me@example.com", "pw").Return(acc, nil)
			},
			wantText:    "✅ me@example.com 계정으로 로그인했습니다. 서버 목록을 불러왔습니다.",
			wantDeleted: true,
		},
		{
			name: "bad credentials",
			text: "/login me@example.com nope",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().Login(gomock.Any(), userID, "me@example.com", "nope").Return(models.Account{}, service.ErrInvalidCredentials)
			},
			wantText:    "❌ 이메일 또는 비밀번호가 올바르지 않습니다.",
			wantDeleted: true,
		},
		{
			name: "logged in but reload failed",
			text: "/login me@example.com pw",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().Login(gomock.Any(), userID, "me@example.com", "pw").
					Return(acc, fmt.Errorf("%w: %v", service.ErrSyncFailed, errors.New("down")))
			},
			wantText:    "⚠️ 로그인했지만 서버 목록을 불러오지 못했습니다. /sync 로 다시 시도하세요.",
			wantDeleted: true,
		},
		{
			name:     "missing password",
			text:     "/login me@example.com",
			wantText: "사용법: /login 이메일 비밀번호",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			sessionT := newSessionTMock(t, ctrl, tt.f)
			mb := sessionT.bot.(*mock_bot.MockBot)

			sessionT.login(commandMessage(tt.text))

			sent := mb.Sent()
			require.Len(t, sent, 1)
			assert.Equal(t, tt.wantText, sent[0].(tgbotapi.MessageConfig).Text)

			if tt.wantDeleted {
				require.Len(t, mb.Requests, 1)
				del, ok := mb.Requests[0].(tgbotapi.DeleteMessageConfig)
				require.True(t, ok)
				assert.Equal(t, 10, del.MessageID)
			} else {
				assert.Empty(t, mb.Requests)
			}
		})
	}
}

func TestSessionT_logoutAndWhoami(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sessionT := newSessionTMock(t, ctrl, func(ms *mock_bot.MockServiceI) {
		gomock.InOrder(
			ms.EXPECT().CurrentUser(userID).Return(models.Account{Email: "me@example.com"}, true),
			ms.EXPECT().Logout(userID),
			ms.EXPECT().CurrentUser(userID).Return(models.Account{}, false),
		)
	})
	mb := sessionT.bot.(*mock_bot.MockBot)

	sessionT.whoami(commandMessage("/whoami"))
	sessionT.logout(commandMessage("/logout"))
	sessionT.whoami(commandMessage("/whoami"))

	sent := mb.Sent()
	require.Len(t, sent, 3)
	assert.Contains(t, sent[0].(tgbotapi.MessageConfig).Text, "me@example.com")
	assert.Contains(t, sent[1].(tgbotapi.MessageConfig).Text, "로그아웃")
	assert.Contains(t, sent[2].(tgbotapi.MessageConfig).Text, "로그인하지 않았습니다")
}
