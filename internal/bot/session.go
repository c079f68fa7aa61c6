package bot

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/DanRulev/sentrack.git/internal/models"
	"github.com/DanRulev/sentrack.git/internal/service"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type SessionSI interface {
	Login(ctx context.Context, userID int64, email, password string) (models.Account, error)
	Logout(userID int64)
	CurrentUser(userID int64) (models.Account, bool)
}

type SessionT struct {
	bot     BotSender
	service SessionSI
	timeout time.Duration
	log     *zap.Logger
}

func NewSessionTAPI(bot BotSender, service SessionSI, timeout time.Duration, log *zap.Logger) *SessionT {
	return &SessionT{
		bot:     bot,
		service: service,
		timeout: timeout,
		log:     log,
	}
}

func (t *SessionT) login(message *tgbotapi.Message) {
	args := strings.Fields(message.CommandArguments())

	// The command carries a password; drop it from the chat history.
	if len(args) > 1 {
		if _, err := t.bot.Request(tgbotapi.NewDeleteMessage(message.Chat.ID, message.MessageID)); err != nil {
			t.log.Warn("failed to delete login message", zap.Error(err))
		}
	}

	if len(args) != 2 {
		sendText(t.bot, t.log, message.Chat.ID, "사용법: /login 이메일 비밀번호")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	acc, err := t.service.Login(ctx, message.From.ID, args[0], args[1])
	switch {
	case err == nil:
		sendText(t.bot, t.log, message.Chat.ID, "✅ "+acc.Email+" 계정으로 로그인했습니다. 서버 목록을 불러왔습니다.")
	case errors.Is(err, service.ErrInvalidCredentials):
		sendText(t.bot, t.log, message.Chat.ID, "❌ 이메일 또는 비밀번호가 올바르지 않습니다.")
	case errors.Is(err, service.ErrSyncFailed):
		sendText(t.bot, t.log, message.Chat.ID, "⚠️ 로그인했지만 서버 목록을 불러오지 못했습니다. /sync 로 다시 시도하세요.")
	default:
		t.log.Error("login failed", zap.Int64("user_id", message.From.ID), zap.Error(err))
		sendText(t.bot, t.log, message.Chat.ID, "❌ 로그인하지 못했습니다. 잠시 후 다시 시도하세요.")
	}
}

func (t *SessionT) logout(message *tgbotapi.Message) {
	t.service.Logout(message.From.ID)
	sendText(t.bot, t.log, message.Chat.ID, "👋 로그아웃했습니다. 이제 이 기기에만 저장됩니다.")
}

func (t *SessionT) whoami(message *tgbotapi.Message) {
	acc, ok := t.service.CurrentUser(message.From.ID)
	if !ok {
		sendText(t.bot, t.log, message.Chat.ID, "🔓 로그인하지 않았습니다. 기록은 이 기기에만 저장됩니다.")
		return
	}
	sendText(t.bot, t.log, message.Chat.ID, "🔒 "+acc.Email+" 계정으로 로그인되어 있습니다.")
}
