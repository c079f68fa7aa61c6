package bot

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/DanRulev/sentrack.git/internal/models"
	"github.com/DanRulev/sentrack.git/internal/service"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type TransferSI interface {
	Export(ctx context.Context, userID int64, format string) (string, []byte, error)
	Import(ctx context.Context, userID int64, fileName string, data []byte) (models.State, error)
}

type TransferT struct {
	bot     BotSender
	service TransferSI
	files   FileDownloader
	timeout time.Duration
	log     *zap.Logger
}

func NewTransferTAPI(bot BotSender, service TransferSI, files FileDownloader, timeout time.Duration, log *zap.Logger) *TransferT {
	return &TransferT{
		bot:     bot,
		service: service,
		files:   files,
		timeout: timeout,
		log:     log,
	}
}

func (t *TransferT) chooseFormat(message *tgbotapi.Message) {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("JSON", cbExport+service.FormatJSON),
			tgbotapi.NewInlineKeyboardButtonData("XLSX", cbExport+service.FormatXLSX),
		),
	)

	msg := tgbotapi.NewMessage(message.Chat.ID, "💾 내보낼 형식을 고르세요.\n가져오려면 .json 또는 .xlsx 파일을 보내세요.")
	msg.ReplyMarkup = &keyboard
	sendMessage(t.bot, t.log, msg)
}

func (t *TransferT) export(message *tgbotapi.Message) {
	format := strings.ToLower(strings.TrimSpace(message.CommandArguments()))
	if format == "" {
		t.chooseFormat(message)
		return
	}
	t.sendExport(message.Chat.ID, message.From.ID, format)
}

func (t *TransferT) sendExport(chatID, userID int64, format string) {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	name, data, err := t.service.Export(ctx, userID, format)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedFormat) {
			sendText(t.bot, t.log, chatID, "❌ json 또는 xlsx 만 지원합니다.")
			return
		}
		t.log.Error("export failed", zap.Int64("user_id", userID), zap.Error(err))
		sendText(t.bot, t.log, chatID, "❌ 내보내기에 실패했습니다.")
		return
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: name, Bytes: data})
	sendMessage(t.bot, t.log, doc)
}

func (t *TransferT) importDocument(message *tgbotapi.Message) {
	doc := message.Document
	ext := strings.ToLower(filepath.Ext(doc.FileName))
	if ext != "."+service.FormatJSON && ext != "."+service.FormatXLSX {
		sendText(t.bot, t.log, message.Chat.ID, "❌ .json 또는 .xlsx 파일만 가져올 수 있습니다.")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	url, err := t.bot.GetFileDirectURL(doc.FileID)
	if err != nil {
		t.log.Error("failed to resolve file", zap.String("file_id", doc.FileID), zap.Error(err))
		sendText(t.bot, t.log, message.Chat.ID, "❌ 파일을 받지 못했습니다.")
		return
	}
	data, err := t.files.Download(ctx, url)
	if err != nil {
		t.log.Error("failed to download file", zap.String("file", doc.FileName), zap.Error(err))
		sendText(t.bot, t.log, message.Chat.ID, "❌ 파일을 받지 못했습니다.")
		return
	}

	st, err := t.service.Import(ctx, message.From.ID, doc.FileName, data)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDocument) {
			sendText(t.bot, t.log, message.Chat.ID, "❌ 가져오기 실패: 올바른 데이터 파일이 아닙니다.")
			return
		}
		t.log.Error("import failed", zap.Int64("user_id", message.From.ID), zap.Error(err))
		sendText(t.bot, t.log, message.Chat.ID, "❌ 가져오기에 실패했습니다.")
		return
	}

	sendText(t.bot, t.log, message.Chat.ID, fmt.Sprintf("✅ 가져오기 완료: %s, %d문장", st.Meta.Title, len(st.Rows)))
}
