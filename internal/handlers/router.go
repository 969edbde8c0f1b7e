package handlers

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/mkravets/telegram-clip-bot/internal/bot"
	"github.com/mkravets/telegram-clip-bot/internal/config"
	"github.com/mkravets/telegram-clip-bot/internal/lang"
	"github.com/mkravets/telegram-clip-bot/internal/downloader/manager"
	"github.com/mkravets/telegram-clip-bot/internal/session"
)

// DownloadService is what the flow controller needs from the download
// orchestrator.
type DownloadService interface {
	Download(ctx context.Context, req *manager.Request) manager.Outcome
}

// Handler is the conversation flow controller: it reacts to inbound messages
// and button presses and drives each chat's session through its states.
type Handler struct {
	bot       bot.Service
	sessions  *session.Store
	downloads DownloadService
	cfg       *config.Config
}

func NewHandler(botService bot.Service, sessions *session.Store, downloads DownloadService, cfg *config.Config) *Handler {
	return &Handler{
		bot:       botService,
		sessions:  sessions,
		downloads: downloads,
		cfg:       cfg,
	}
}

// Route dispatches one update.
func (h *Handler) Route(ctx context.Context, update *tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil {
		return
	}
	message := update.Message

	if message.IsCommand() {
		command := strings.ToLower(message.Command())
		switch command {
		case "start":
			h.handleStart(message.Chat.ID)
		case "help":
			h.handleHelp(message.Chat.ID)
		case "version":
			h.handleVersion(message.Chat.ID)
		case "cancel":
			h.handleCancel(message.Chat.ID)
		default:
			logrus.Warnf("Unknown command: %s", command)
			h.bot.SendMessage(message.Chat.ID, lang.GetMessage(lang.UnknownCommandMsgID))
		}
		return
	}

	h.handleText(message)
}
