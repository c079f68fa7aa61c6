package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	ButtonDashboard = "📊 대시보드"
	ButtonPractice  = "📝 연습"
	ButtonAdd       = "➕ 문장 추가"
	ButtonExport    = "💾 내보내기"
	ButtonHelp      = "ℹ️ 도움말"
)

// Callback data prefixes. Row keys follow the prefix.
const (
	cbPage      = "pg:"
	cbOpenRow   = "row:"
	cbOutcome   = "o:"
	cbEditKo    = "eko:"
	cbEditEn    = "een:"
	cbMoveUp    = "up:"
	cbDelete    = "del:"
	cbExport    = "ex:"
	cbDashboard = "dash"
	cbAddMore   = "add"
)

const helpText = `
📚 명령어:
/start — 시작
/help — 이 도움말
/add 한국어 | English — 문장 추가
/list — 문장 목록
/title 제목 — 제목 변경
/period 2024-01-01 2024-12-31 — 기간 변경
/goal 10000 — 목표 문장 수 변경
/login 이메일 비밀번호 — 서버 계정 로그인
/logout — 로그아웃
/whoami — 로그인 상태
/sync — 서버에서 목록 다시 불러오기
/export json|xlsx — 내보내기

📎 .json 또는 .xlsx 파일을 보내면 전체 데이터를 가져옵니다.
로그인하지 않으면 이 기기에만 저장됩니다.
로그인은 봇이 다시 시작되면 풀리니 그때는 /login 을 다시 하세요.
`

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "help":
		t.handleHelpCommand(message)
	case "login":
		t.session.login(message)
	case "logout":
		t.session.logout(message)
	case "whoami":
		t.session.whoami(message)
	case "sync":
		t.practice.reload(message)
	case "title":
		t.dashboard.setTitle(message)
	case "period":
		t.dashboard.setPeriod(message)
	case "goal":
		t.dashboard.setGoal(message)
	case "add":
		t.practice.add(message)
	case "list":
		t.practice.showRows(message, 0)
	case "export":
		t.transfer.export(message)
	default:
		sendText(t.bot, t.log, message.Chat.ID, "알 수 없는 명령입니다. /help 를 입력하세요.")
	}
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	welcomeText := "👋 안녕하세요! 영어 문장 연습 기록 봇입니다.\n\n" +
		"✨ 할 수 있는 일:\n" +
		"• 📝 한국어/영어 문장 쌍 기록\n" +
		"• ㅇ / x / △ 로 복습 결과 표시\n" +
		"• 📊 목표 대비 진행률 확인\n" +
		"• 💾 JSON / XLSX 내보내기와 가져오기\n\n" +
		"아래 버튼으로 시작하세요!"

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ReplyMarkup = t.generateMenuKeyboard()

	sendMessage(t.bot, t.log, msg)
}

func (t *TelegramAPI) generateMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonDashboard),
			tgbotapi.NewKeyboardButton(ButtonPractice),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonAdd),
			tgbotapi.NewKeyboardButton(ButtonExport),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonHelp),
		),
	)

	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false

	return keyboard
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	sendText(t.bot, t.log, message.Chat.ID, helpText)
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		t.log.Warn("message without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}

	switch message.Text {
	case ButtonDashboard:
		t.practice.cancelEdit(message.From.ID)
		t.dashboard.sendDashboard(message.Chat.ID, message.From.ID)
	case ButtonPractice:
		t.practice.cancelEdit(message.From.ID)
		t.practice.showRows(message, 0)
	case ButtonAdd:
		t.practice.promptAdd(message.Chat.ID, message.From.ID)
	case ButtonExport:
		t.practice.cancelEdit(message.From.ID)
		t.transfer.chooseFormat(message)
	case ButtonHelp:
		t.practice.cancelEdit(message.From.ID)
		t.handleHelpCommand(message)
	default:
		if t.practice.completeEdit(message) {
			return
		}
		sendText(t.bot, t.log, message.Chat.ID, "이해하지 못했어요. 아래 버튼을 사용하세요.")
	}
}

func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, "")
	if _, err := t.bot.Request(callback); err != nil {
		t.log.Warn("failed to answer callback", zap.Error(err))
	}

	if query.Message == nil {
		t.log.Warn("callback without message", zap.Int64("user_id", query.From.ID))
		return
	}

	data := query.Data

	switch {
	case data == cbDashboard:
		t.dashboard.sendDashboard(query.Message.Chat.ID, query.From.ID)
	case data == cbAddMore:
		t.practice.promptAdd(query.Message.Chat.ID, query.From.ID)
	case strings.HasPrefix(data, cbExport):
		t.transfer.sendExport(query.Message.Chat.ID, query.From.ID, strings.TrimPrefix(data, cbExport))
	case strings.HasPrefix(data, cbPage),
		strings.HasPrefix(data, cbOpenRow),
		strings.HasPrefix(data, cbOutcome),
		strings.HasPrefix(data, cbEditKo),
		strings.HasPrefix(data, cbEditEn),
		strings.HasPrefix(data, cbMoveUp),
		strings.HasPrefix(data, cbDelete):
		t.practice.handleCallbackQuery(query)
	default:
		t.log.Warn("unknown callback data", zap.String("data", data), zap.Int64("user_id", query.From.ID))
	}
}
