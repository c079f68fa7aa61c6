package bot

import (
	"context"
	"time"

	"github.com/DanRulev/sentrack.git/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type ServiceI interface {
	PracticeSI
	DashboardSI
	SessionSI
	TransferSI
}

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetFileDirectURL(fileID string) (string, error)
}

type FileDownloader interface {
	Download(ctx context.Context, url string) ([]byte, error)
}

type TelegramAPI struct {
	bot       *tgbotapi.BotAPI
	dashboard *DashboardT
	practice  *PracticeT
	session   *SessionT
	transfer  *TransferT
	log       *zap.Logger
}

// NewBotAPI connects to Telegram. Debug output is on in development.
func NewBotAPI(botToken, env string) (*tgbotapi.BotAPI, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}

	bot.Debug = env == "development"

	return bot, nil
}

func NewTelegramAPI(bot *tgbotapi.BotAPI, service ServiceI, cache *cache.Cache, files FileDownloader, timeout time.Duration, log *zap.Logger) *TelegramAPI {
	return &TelegramAPI{
		bot:       bot,
		dashboard: NewDashboardTAPI(bot, service, timeout, log),
		practice:  NewPracticeTAPI(bot, cache, service, timeout, log),
		session:   NewSessionTAPI(bot, service, timeout, log),
		transfer:  NewTransferTAPI(bot, service, files, timeout, log),
		log:       log,
	}
}

// Start handles updates one at a time until ctx is cancelled.
func (t *TelegramAPI) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.bot.GetUpdatesChan(u)
	t.log.Info("bot started", zap.String("username", t.bot.Self.UserName))

	for {
		select {
		case <-ctx.Done():
			t.bot.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			t.handleUpdate(update)
		}
	}
}

func (t *TelegramAPI) handleUpdate(update tgbotapi.Update) {
	if update.Message != nil {
		switch {
		case update.Message.IsCommand():
			t.handleCommand(update.Message)
		case update.Message.Document != nil:
			t.transfer.importDocument(update.Message)
		default:
			t.handleMessage(update.Message)
		}
		return
	}

	if update.CallbackQuery != nil {
		t.handleCallbackQuery(update.CallbackQuery)
	}
}

func sendMessage(bot BotSender, log *zap.Logger, msg tgbotapi.Chattable) {
	sentMsg, err := bot.Send(msg)
	if err != nil {
		log.Warn("failed to send message", zap.Error(err))
		return
	}
	if sentMsg.Chat != nil {
		log.Debug("sent message", zap.Int64("chat_id", sentMsg.Chat.ID))
	}
}

func sendText(bot BotSender, log *zap.Logger, chatID int64, text string) {
	sendMessage(bot, log, tgbotapi.NewMessage(chatID, text))
}
