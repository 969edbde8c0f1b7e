package bot

import (
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

const (
	sendRetries = 3
	retryDelay  = time.Second
)

// AudioMeta carries the attributes attached to an uploaded audio file.
type AudioMeta struct {
	Title     string
	Performer string
	Duration  int
}

// VideoMeta carries the attributes attached to an uploaded video file.
// Caption may be arbitrarily long; it is chunked below the transport ceiling
// and the tail is delivered as plain messages.
type VideoMeta struct {
	Caption       string
	Duration      int
	ThumbnailPath string
}

// Service is the messaging surface the rest of the bot talks through.
type Service interface {
	SendMessage(chatID int64, text string)
	SendMessageReturningID(chatID int64, text string) (int, error)
	SendKeyboard(chatID int64, text string, keyboard tgbotapi.InlineKeyboardMarkup) (int, error)
	EditMessage(chatID int64, messageID int, text string)
	EditMessageWithKeyboard(chatID int64, messageID int, text string, keyboard tgbotapi.InlineKeyboardMarkup)
	DeleteMessage(chatID int64, messageID int)
	AnswerCallback(callbackID string)
	SendAudio(chatID int64, path string, meta AudioMeta) error
	SendVideo(chatID int64, path string, meta VideoMeta) error
}

type Bot struct {
	Api *tgbotapi.BotAPI
}

func InitBot(token string) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("error creating bot: %w", err)
	}
	logrus.Infof("Authorized on account %s", api.Self.UserName)
	return &Bot{Api: api}, nil
}

// sendWithRetry pushes a Chattable with a bounded retry, so a transient
// transport hiccup does not lose a status update.
func (b *Bot) sendWithRetry(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	var lastErr error
	for attempt := 1; attempt <= sendRetries; attempt++ {
		msg, err := b.Api.Send(c)
		if err == nil {
			return msg, nil
		}
		if strings.Contains(err.Error(), "message is not modified") {
			return tgbotapi.Message{}, nil
		}
		lastErr = err
		logrus.WithError(err).Warnf("Transport send failed (attempt %d/%d)", attempt, sendRetries)
		if attempt < sendRetries {
			time.Sleep(retryDelay)
		}
	}
	return tgbotapi.Message{}, lastErr
}

func (b *Bot) SendMessage(chatID int64, text string) {
	if _, err := b.sendWithRetry(tgbotapi.NewMessage(chatID, text)); err != nil {
		logrus.WithError(err).Error("Message not sent")
	}
}

func (b *Bot) SendMessageReturningID(chatID int64, text string) (int, error) {
	msg, err := b.sendWithRetry(tgbotapi.NewMessage(chatID, text))
	if err != nil {
		return 0, err
	}
	return msg.MessageID, nil
}

func (b *Bot) SendKeyboard(chatID int64, text string, keyboard tgbotapi.InlineKeyboardMarkup) (int, error) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboard
	sent, err := b.sendWithRetry(msg)
	if err != nil {
		return 0, err
	}
	return sent.MessageID, nil
}

func (b *Bot) EditMessage(chatID int64, messageID int, text string) {
	if _, err := b.sendWithRetry(tgbotapi.NewEditMessageText(chatID, messageID, text)); err != nil {
		logrus.WithError(err).Error("Message not edited")
	}
}

func (b *Bot) EditMessageWithKeyboard(chatID int64, messageID int, text string, keyboard tgbotapi.InlineKeyboardMarkup) {
	if _, err := b.sendWithRetry(tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, keyboard)); err != nil {
		logrus.WithError(err).Error("Message not edited")
	}
}

func (b *Bot) DeleteMessage(chatID int64, messageID int) {
	if _, err := b.Api.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		logrus.WithError(err).Warn("Message not deleted")
	}
}

func (b *Bot) AnswerCallback(callbackID string) {
	if _, err := b.Api.Request(tgbotapi.NewCallback(callbackID, "")); err != nil {
		logrus.WithError(err).Warn("Callback not answered")
	}
}

func (b *Bot) SendAudio(chatID int64, path string, meta AudioMeta) error {
	audio := tgbotapi.NewAudio(chatID, tgbotapi.FilePath(path))
	audio.Title = meta.Title
	audio.Performer = meta.Performer
	audio.Duration = meta.Duration
	if _, err := b.sendWithRetry(audio); err != nil {
		return fmt.Errorf("send audio: %w", err)
	}
	return nil
}

func (b *Bot) SendVideo(chatID int64, path string, meta VideoMeta) error {
	chunks := SplitCaption(meta.Caption)

	video := tgbotapi.NewVideo(chatID, tgbotapi.FilePath(path))
	video.Duration = meta.Duration
	video.SupportsStreaming = true
	if len(chunks) > 0 {
		video.Caption = chunks[0]
	}
	if meta.ThumbnailPath != "" {
		video.Thumb = tgbotapi.FilePath(meta.ThumbnailPath)
	}
	if _, err := b.sendWithRetry(video); err != nil {
		return fmt.Errorf("send video: %w", err)
	}

	// Caption overflow is delivered as trailing plain messages.
	if len(chunks) > 1 {
		for _, chunk := range chunks[1:] {
			b.SendMessage(chatID, chunk)
		}
	}
	return nil
}
