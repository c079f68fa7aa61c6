package bot

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/DanRulev/sentrack.git/internal/models"
	"github.com/DanRulev/sentrack.git/internal/service"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const barCells = 20

type DashboardSI interface {
	Stats(ctx context.Context, userID int64) (models.Meta, models.Stats)
	SetTitle(ctx context.Context, userID int64, title string) error
	SetPeriod(ctx context.Context, userID int64, start, end string) error
	SetGoal(ctx context.Context, userID int64, goal int) error
}

type DashboardT struct {
	bot     BotSender
	service DashboardSI
	printer *message.Printer
	timeout time.Duration
	log     *zap.Logger
}

func NewDashboardTAPI(bot BotSender, service DashboardSI, timeout time.Duration, log *zap.Logger) *DashboardT {
	return &DashboardT{
		bot:     bot,
		service: service,
		printer: message.NewPrinter(language.Korean),
		timeout: timeout,
		log:     log,
	}
}

func (t *DashboardT) sendDashboard(chatID, userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 새로고침", cbDashboard),
			tgbotapi.NewInlineKeyboardButtonData(ButtonPractice, cbPage+"0"),
		),
	)

	meta, stats := t.service.Stats(ctx, userID)

	msg := tgbotapi.NewMessage(chatID, t.renderDashboard(meta, stats))
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = &keyboard

	sendMessage(t.bot, t.log, msg)
}

func (t *DashboardT) setTitle(message *tgbotapi.Message) {
	title := strings.TrimSpace(message.CommandArguments())
	if title == "" {
		sendText(t.bot, t.log, message.Chat.ID, "사용법: /title 새 제목")
		return
	}

	t.apply(message, func(ctx context.Context) error {
		return t.service.SetTitle(ctx, message.From.ID, title)
	})
}

func (t *DashboardT) setPeriod(message *tgbotapi.Message) {
	args := strings.Fields(message.CommandArguments())
	if len(args) != 2 {
		sendText(t.bot, t.log, message.Chat.ID, "사용법: /period 2024-01-01 2024-12-31")
		return
	}

	t.apply(message, func(ctx context.Context) error {
		return t.service.SetPeriod(ctx, message.From.ID, args[0], args[1])
	})
}

func (t *DashboardT) setGoal(message *tgbotapi.Message) {
	goal, err := strconv.Atoi(strings.ReplaceAll(strings.TrimSpace(message.CommandArguments()), ",", ""))
	if err != nil {
		sendText(t.bot, t.log, message.Chat.ID, "사용법: /goal 10000")
		return
	}

	t.apply(message, func(ctx context.Context) error {
		return t.service.SetGoal(ctx, message.From.ID, goal)
	})
}

// apply runs a metadata edit and answers with the refreshed dashboard.
func (t *DashboardT) apply(message *tgbotapi.Message, edit func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
	defer cancel()

	if err := edit(ctx); err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			sendText(t.bot, t.log, message.Chat.ID, "❌ 날짜는 YYYY-MM-DD 형식이어야 합니다.")
			return
		}
		t.log.Error("failed to update meta", zap.Int64("user_id", message.From.ID), zap.Error(err))
		sendText(t.bot, t.log, message.Chat.ID, "❌ 저장하지 못했습니다.")
		return
	}

	t.sendDashboard(message.Chat.ID, message.From.ID)
}

func (t *DashboardT) renderDashboard(meta models.Meta, stats models.Stats) string {
	var sb strings.Builder

	title := meta.Title
	if title == "" {
		title = "제목 없음"
	}
	sb.WriteString("📘 *")
	sb.WriteString(tgbotapi.EscapeText(tgbotapi.ModeMarkdown, title))
	sb.WriteString("*\n\n")

	sb.WriteString(t.printer.Sprintf("📅 기간: %s ~ %s (%d일)\n",
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, dash(meta.Start)),
		tgbotapi.EscapeText(tgbotapi.ModeMarkdown, dash(meta.End)),
		stats.Duration))

	daily := "-"
	if stats.Duration > 0 {
		daily = t.printer.Sprintf("%d", int(math.Ceil(stats.DailyPace)))
	}
	sb.WriteString(t.printer.Sprintf("🎯 목표: %d 문장 · 하루 %s 문장\n", meta.Goal, daily))
	sb.WriteString(t.printer.Sprintf("✍️ 현재: %d 문장 (%.1f%%)\n\n", stats.Count, stats.Percent))

	sb.WriteString("`")
	sb.WriteString(progressBar(stats.Percent, stats.MarkerPercent))
	sb.WriteString("`\n\n")

	sb.WriteString(t.printer.Sprintf("📍 오늘까지 누계 목표: %d / %d 문장 (현재 %s 문장)",
		int(math.Round(stats.CumulativeTarget)), meta.Goal, t.signed(stats.Delta)))

	return sb.String()
}

// progressBar draws the completed share with a marker at today's target.
func progressBar(percent, marker float64) string {
	filled := int(math.Round(percent / 100 * barCells))
	at := int(math.Round(marker / 100 * barCells))

	var sb strings.Builder
	for i := 0; i <= barCells; i++ {
		if i == at {
			sb.WriteString("|")
		}
		if i == barCells {
			break
		}
		if i < filled {
			sb.WriteString("▓")
		} else {
			sb.WriteString("░")
		}
	}
	return sb.String()
}

func (t *DashboardT) signed(n int) string {
	if n >= 0 {
		return t.printer.Sprintf("+%d", n)
	}
	return t.printer.Sprintf("-%d", -n)
}
