package testutils

import (
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mkravets/telegram-clip-bot/internal/bot"
)

// MockMessage captures a single message sent by MockBot.
type MockMessage struct {
	ChatID   int64
	Text     string
	Keyboard *tgbotapi.InlineKeyboardMarkup
}

// MockEdit captures a single message edit made by MockBot.
type MockEdit struct {
	ChatID    int64
	MessageID int
	Text      string
	Keyboard  *tgbotapi.InlineKeyboardMarkup
}

// MockUpload captures a single audio or video upload made by MockBot.
type MockUpload struct {
	ChatID int64
	Path   string
	Audio  *bot.AudioMeta
	Video  *bot.VideoMeta
}

// MockBot implements bot.Service for testing. It records everything and is
// safe for concurrent use, since downloads run in their own goroutines.
type MockBot struct {
	mu sync.Mutex

	SentMessages []MockMessage
	Edits        []MockEdit
	Deleted      []int
	Callbacks    []string
	Uploads      []MockUpload

	// NextMessageID is returned (and incremented) by the ID-returning
	// send methods.
	NextMessageID int

	// SendError, if set, is returned by SendMessageReturningID and
	// SendKeyboard. UploadError, if set, is returned by SendAudio and
	// SendVideo.
	SendError   error
	UploadError error
}

func (m *MockBot) SendMessage(chatID int64, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SentMessages = append(m.SentMessages, MockMessage{ChatID: chatID, Text: text})
}

func (m *MockBot) SendMessageReturningID(chatID int64, text string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SendError != nil {
		return 0, m.SendError
	}
	m.NextMessageID++
	m.SentMessages = append(m.SentMessages, MockMessage{ChatID: chatID, Text: text})
	return m.NextMessageID, nil
}

func (m *MockBot) SendKeyboard(chatID int64, text string, keyboard tgbotapi.InlineKeyboardMarkup) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SendError != nil {
		return 0, m.SendError
	}
	m.NextMessageID++
	m.SentMessages = append(m.SentMessages, MockMessage{ChatID: chatID, Text: text, Keyboard: &keyboard})
	return m.NextMessageID, nil
}

func (m *MockBot) EditMessage(chatID int64, messageID int, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Edits = append(m.Edits, MockEdit{ChatID: chatID, MessageID: messageID, Text: text})
}

func (m *MockBot) EditMessageWithKeyboard(chatID int64, messageID int, text string, keyboard tgbotapi.InlineKeyboardMarkup) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Edits = append(m.Edits, MockEdit{ChatID: chatID, MessageID: messageID, Text: text, Keyboard: &keyboard})
}

func (m *MockBot) DeleteMessage(_ int64, messageID int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Deleted = append(m.Deleted, messageID)
}

func (m *MockBot) AnswerCallback(callbackID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Callbacks = append(m.Callbacks, callbackID)
}

func (m *MockBot) SendAudio(chatID int64, path string, meta bot.AudioMeta) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UploadError != nil {
		return m.UploadError
	}
	m.Uploads = append(m.Uploads, MockUpload{ChatID: chatID, Path: path, Audio: &meta})
	return nil
}

func (m *MockBot) SendVideo(chatID int64, path string, meta bot.VideoMeta) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UploadError != nil {
		return m.UploadError
	}
	m.Uploads = append(m.Uploads, MockUpload{ChatID: chatID, Path: path, Video: &meta})
	return nil
}

// LastMessage returns the most recently sent message, or nil if none.
func (m *MockBot) LastMessage() *MockMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.SentMessages) == 0 {
		return nil
	}
	return &m.SentMessages[len(m.SentMessages)-1]
}

// LastEdit returns the most recent edit, or nil if none.
func (m *MockBot) LastEdit() *MockEdit {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Edits) == 0 {
		return nil
	}
	return &m.Edits[len(m.Edits)-1]
}

// LastUpload returns the most recent upload, or nil if none.
func (m *MockBot) LastUpload() *MockUpload {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Uploads) == 0 {
		return nil
	}
	return &m.Uploads[len(m.Uploads)-1]
}
