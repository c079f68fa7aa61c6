package mock_bot

import (
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type MockBot struct {
	mu           sync.Mutex
	SentMessages []tgbotapi.Chattable
	Requests     []tgbotapi.Chattable
	FileURL      string
	FileErr      error
}

func (m *MockBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SentMessages = append(m.SentMessages, c)
	return tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 123}}, nil
}

func (m *MockBot) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests = append(m.Requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (m *MockBot) GetFileDirectURL(fileID string) (string, error) {
	if m.FileErr != nil {
		return "", m.FileErr
	}
	return m.FileURL + fileID, nil
}

// Sent returns a copy of everything sent so far.
func (m *MockBot) Sent() []tgbotapi.Chattable {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]tgbotapi.Chattable(nil), m.SentMessages...)
}

func ClearSentMessages(bot *MockBot) {
	bot.mu.Lock()
	defer bot.mu.Unlock()
	bot.SentMessages = nil
	bot.Requests = nil
}
