package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/DanRulev/sentrack.git/internal/async"
	"github.com/DanRulev/sentrack.git/internal/models"
	"github.com/DanRulev/sentrack.git/internal/service"
	"github.com/DanRulev/sentrack.git/internal/storage/cache"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const buttonLabelLen = 16

type PracticeSI interface {
	AddRow(ctx context.Context, userID int64, ko, en string) (models.Row, *async.Task, error)
	UpdateRow(ctx context.Context, userID int64, key string, patch models.RowPatch) (*async.Task, error)
	RecordOutcome(ctx context.Context, userID int64, key string, outcome models.Outcome) (models.Row, *async.Task, error)
	DeleteRow(ctx context.Context, userID int64, key string) (*async.Task, error)
	MoveRow(ctx context.Context, userID int64, key string, position int) (*async.Task, error)
	Reload(ctx context.Context, userID int64) error
	Rows(ctx context.Context, userID int64, page int) ([]models.Row, int, bool)
	Row(ctx context.Context, userID int64, key string) (models.Row, error)
}

// PracticeT renders the sentence table and row cards. Remote failures are
// reported later through the notifier, so handlers never wait on tasks.
type PracticeT struct {
	bot     BotSender
	cache   *cache.Cache
	service PracticeSI
	timeout time.Duration
	log     *zap.Logger
}

func NewPracticeTAPI(bot BotSender, cache *cache.Cache, service PracticeSI, timeout time.Duration, log *zap.Logger) *PracticeT {
	return &PracticeT{
		bot:     bot,
		cache:   cache,
		service: service,
		timeout: timeout,
		log:     log,
	}
}

func (t *PracticeT) newContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), t.timeout)
}

func (t *PracticeT) showRows(message *tgbotapi.Message, page int) {
	ctx, cancel := t.newContext()
	defer cancel()

	rows, total, hasNext := t.service.Rows(ctx, message.From.ID, page)

	msg := tgbotapi.NewMessage(message.Chat.ID, renderPage(rows, total, page))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = pageKeyboard(rows, page, hasNext)

	sendMessage(t.bot, t.log, msg)
}

func renderPage(rows []models.Row, total, page int) string {
	if total == 0 {
		return "아직 문장이 없습니다. " + ButtonAdd + " 버튼을 누르세요."
	}

	pages := (total + service.PageSize - 1) / service.PageSize

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📝 <b>연습 목록</b> (총 %d문장, %d/%d쪽)\n\n", total, page+1, pages))
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("<b>#%d</b> %s\n", r.No, escapeHTML(r.Ko)))
		if r.En != "" {
			sb.WriteString("<tg-spoiler>" + escapeHTML(r.En) + "</tg-spoiler>\n")
		}
		sb.WriteString(fmt.Sprintf("%s · %d회 · %s\n\n", service.HistoryText(r.History), r.Count, dash(r.ReviewDay)))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func pageKeyboard(rows []models.Row, page int, hasNext bool) *tgbotapi.InlineKeyboardMarkup {
	var buttons [][]tgbotapi.InlineKeyboardButton

	line := make([]tgbotapi.InlineKeyboardButton, 0, 2)
	for _, r := range rows {
		label := fmt.Sprintf("#%d %s", r.No, truncate(r.Ko, buttonLabelLen))
		line = append(line, tgbotapi.NewInlineKeyboardButtonData(label, cbOpenRow+r.Key))
		if len(line) == 2 {
			buttons = append(buttons, line)
			line = make([]tgbotapi.InlineKeyboardButton, 0, 2)
		}
	}
	if len(line) > 0 {
		buttons = append(buttons, line)
	}

	nav := make([]tgbotapi.InlineKeyboardButton, 0, 2)
	if page > 0 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("◀️ 이전", cbPage+strconv.Itoa(page-1)))
	}
	if hasNext {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("다음 ▶️", cbPage+strconv.Itoa(page+1)))
	}
	if len(nav) > 0 {
		buttons = append(buttons, nav)
	}

	buttons = append(buttons, []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData(ButtonDashboard, cbDashboard),
	})

	return &tgbotapi.InlineKeyboardMarkup{InlineKeyboard: buttons}
}

func renderCard(r models.Row) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("<b>#%d</b>\n", r.No))
	sb.WriteString("🇰🇷 " + escapeHTML(r.Ko) + "\n")
	sb.WriteString("🇺🇸 <tg-spoiler>" + escapeHTML(dash(r.En)) + "</tg-spoiler>\n\n")
	sb.WriteString("기록: " + service.HistoryText(r.History) + "\n")
	sb.WriteString(fmt.Sprintf("횟수: %d\n", r.Count))
	sb.WriteString("최근 복습: " + dash(r.ReviewDay))
	return sb.String()
}

func cardKeyboard(r models.Row) *tgbotapi.InlineKeyboardMarkup {
	page := (r.No - 1) / service.PageSize
	if page < 0 {
		page = 0
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(models.OutcomePass.Symbol(), cbOutcome+string(models.OutcomePass)+":"+r.Key),
			tgbotapi.NewInlineKeyboardButtonData(models.OutcomeFail.Symbol(), cbOutcome+string(models.OutcomeFail)+":"+r.Key),
			tgbotapi.NewInlineKeyboardButtonData(models.OutcomePartial.Symbol(), cbOutcome+string(models.OutcomePartial)+":"+r.Key),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✏️ KO", cbEditKo+r.Key),
			tgbotapi.NewInlineKeyboardButtonData("✏️ EN", cbEditEn+r.Key),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬆️ 위로", cbMoveUp+r.Key),
			tgbotapi.NewInlineKeyboardButtonData("🗑 삭제", cbDelete+r.Key),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📝 목록", cbPage+strconv.Itoa(page)),
		),
	)
	return &keyboard
}

func (t *PracticeT) sendCard(chatID int64, row models.Row) {
	msg := tgbotapi.NewMessage(chatID, renderCard(row))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = cardKeyboard(row)
	sendMessage(t.bot, t.log, msg)
}

func (t *PracticeT) editCard(message *tgbotapi.Message, row models.Row) {
	edit := tgbotapi.NewEditMessageTextAndMarkup(message.Chat.ID, message.MessageID, renderCard(row), *cardKeyboard(row))
	edit.ParseMode = tgbotapi.ModeHTML
	sendMessage(t.bot, t.log, edit)
}

func (t *PracticeT) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	userID := query.From.ID
	message := query.Message
	data := query.Data

	ctx, cancel := t.newContext()
	defer cancel()

	switch {
	case strings.HasPrefix(data, cbPage):
		page, err := strconv.Atoi(strings.TrimPrefix(data, cbPage))
		if err != nil || page < 0 {
			sendText(t.bot, t.log, message.Chat.ID, "❌ 잘못된 페이지입니다.")
			return
		}
		rows, total, hasNext := t.service.Rows(ctx, userID, page)
		edit := tgbotapi.NewEditMessageTextAndMarkup(message.Chat.ID, message.MessageID, renderPage(rows, total, page), *pageKeyboard(rows, page, hasNext))
		edit.ParseMode = tgbotapi.ModeHTML
		sendMessage(t.bot, t.log, edit)

	case strings.HasPrefix(data, cbOpenRow):
		row, err := t.service.Row(ctx, userID, strings.TrimPrefix(data, cbOpenRow))
		if err != nil {
			t.replyError(message.Chat.ID, userID, err)
			return
		}
		t.sendCard(message.Chat.ID, row)

	case strings.HasPrefix(data, cbOutcome):
		outcome, key, _ := strings.Cut(strings.TrimPrefix(data, cbOutcome), ":")
		row, _, err := t.service.RecordOutcome(ctx, userID, key, models.Outcome(outcome))
		if err != nil {
			t.replyError(message.Chat.ID, userID, err)
			return
		}
		t.editCard(message, row)

	case strings.HasPrefix(data, cbEditKo):
		t.promptEdit(ctx, message.Chat.ID, userID, strings.TrimPrefix(data, cbEditKo), models.FieldKo)

	case strings.HasPrefix(data, cbEditEn):
		t.promptEdit(ctx, message.Chat.ID, userID, strings.TrimPrefix(data, cbEditEn), models.FieldEn)

	case strings.HasPrefix(data, cbMoveUp):
		key := strings.TrimPrefix(data, cbMoveUp)
		row, err := t.service.Row(ctx, userID, key)
		if err == nil && row.No <= 1 {
			sendText(t.bot, t.log, message.Chat.ID, "⬆️ 이미 맨 위에 있습니다.")
			return
		}
		if err == nil {
			_, err = t.service.MoveRow(ctx, userID, key, row.No-1)
		}
		if err == nil {
			row, err = t.service.Row(ctx, userID, key)
		}
		if err != nil {
			t.replyError(message.Chat.ID, userID, err)
			return
		}
		t.editCard(message, row)

	case strings.HasPrefix(data, cbDelete):
		key := strings.TrimPrefix(data, cbDelete)
		row, err := t.service.Row(ctx, userID, key)
		if err == nil {
			_, err = t.service.DeleteRow(ctx, userID, key)
		}
		if err != nil {
			t.replyError(message.Chat.ID, userID, err)
			return
		}
		text := fmt.Sprintf("🗑 #%d 삭제했습니다: %s", row.No, row.Ko)
		sendMessage(t.bot, t.log, tgbotapi.NewEditMessageText(message.Chat.ID, message.MessageID, text))
	}
}

func (t *PracticeT) promptEdit(ctx context.Context, chatID, userID int64, key, field string) {
	row, err := t.service.Row(ctx, userID, key)
	if err != nil {
		t.replyError(chatID, userID, err)
		return
	}

	t.cache.SetEdit(userID, models.PendingEdit{Key: key, Field: field})

	current, label := row.Ko, "한국어"
	if field == models.FieldEn {
		current, label = row.En, "영어"
	}
	sendText(t.bot, t.log, chatID, fmt.Sprintf("✏️ #%d 의 새 %s 문장을 입력하세요.\n현재: %s", row.No, label, dash(current)))
}

func (t *PracticeT) promptAdd(chatID, userID int64) {
	t.cache.SetEdit(userID, models.PendingEdit{Field: models.FieldNew})
	sendText(t.bot, t.log, chatID, "➕ 새 문장을 입력하세요.\n형식: 한국어 문장 | English sentence")
}

func (t *PracticeT) cancelEdit(userID int64) {
	t.cache.DeleteEdit(userID)
}

// completeEdit consumes a pending edit with the message text. It reports false
// when nothing was pending.
func (t *PracticeT) completeEdit(message *tgbotapi.Message) bool {
	userID := message.From.ID
	edit, ok := t.cache.GetEdit(userID)
	if !ok {
		return false
	}
	t.cache.DeleteEdit(userID)

	text := strings.TrimSpace(message.Text)
	if edit.Field == models.FieldNew {
		ko, en := splitPair(text)
		t.addRow(message.Chat.ID, userID, ko, en)
		return true
	}

	var patch models.RowPatch
	switch edit.Field {
	case models.FieldKo:
		patch.Ko = &text
	case models.FieldEn:
		patch.En = &text
	default:
		return false
	}

	ctx, cancel := t.newContext()
	defer cancel()

	if _, err := t.service.UpdateRow(ctx, userID, edit.Key, patch); err != nil {
		t.replyError(message.Chat.ID, userID, err)
		return true
	}
	row, err := t.service.Row(ctx, userID, edit.Key)
	if err != nil {
		t.replyError(message.Chat.ID, userID, err)
		return true
	}
	t.sendCard(message.Chat.ID, row)
	return true
}

func (t *PracticeT) add(message *tgbotapi.Message) {
	args := strings.TrimSpace(message.CommandArguments())
	if args == "" {
		t.promptAdd(message.Chat.ID, message.From.ID)
		return
	}

	ko, en := splitPair(args)
	t.addRow(message.Chat.ID, message.From.ID, ko, en)
}

func (t *PracticeT) addRow(chatID, userID int64, ko, en string) {
	if ko == "" && en == "" {
		sendText(t.bot, t.log, chatID, "❌ 빈 문장은 추가할 수 없습니다.")
		return
	}

	ctx, cancel := t.newContext()
	defer cancel()

	row, _, err := t.service.AddRow(ctx, userID, ko, en)
	if err != nil {
		t.replyError(chatID, userID, err)
		return
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("열기", cbOpenRow+row.Key),
			tgbotapi.NewInlineKeyboardButtonData(ButtonAdd, cbAddMore),
		),
	)
	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("✅ #%d 추가했습니다.", row.No))
	msg.ReplyMarkup = &keyboard
	sendMessage(t.bot, t.log, msg)
}

func (t *PracticeT) reload(message *tgbotapi.Message) {
	ctx, cancel := t.newContext()
	defer cancel()

	if err := t.service.Reload(ctx, message.From.ID); err != nil {
		t.replyError(message.Chat.ID, message.From.ID, err)
		return
	}
	t.showRows(message, 0)
}

func (t *PracticeT) replyError(chatID, userID int64, err error) {
	switch {
	case errors.Is(err, service.ErrRowNotFound):
		sendText(t.bot, t.log, chatID, "❌ 문장을 찾을 수 없습니다. 목록을 다시 여세요.")
	case errors.Is(err, service.ErrInvalidOutcome):
		sendText(t.bot, t.log, chatID, "❌ 알 수 없는 결과입니다.")
	case errors.Is(err, service.ErrNotAuthenticated):
		sendText(t.bot, t.log, chatID, "🔒 먼저 /login 으로 로그인하세요.")
	default:
		t.log.Error("practice action failed", zap.Int64("user_id", userID), zap.Error(err))
		sendText(t.bot, t.log, chatID, "❌ 처리하지 못했습니다. 잠시 후 다시 시도하세요.")
	}
}

// splitPair reads "korean | english"; the English half is optional.
func splitPair(text string) (string, string) {
	ko, en, _ := strings.Cut(text, "|")
	return strings.TrimSpace(ko), strings.TrimSpace(en)
}

func escapeHTML(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeHTML, s)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
