package bot

import (
	"go.uber.org/zap"
)

// Notifier delivers messages outside a request, such as remote write failures
// and reminders. Private chat ids equal user ids.
type Notifier struct {
	bot BotSender
	log *zap.Logger
}

func NewNotifier(bot BotSender, log *zap.Logger) *Notifier {
	return &Notifier{bot: bot, log: log}
}

func (n *Notifier) Alert(userID int64, text string) {
	sendText(n.bot, n.log, userID, text)
}
