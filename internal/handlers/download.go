package handlers

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/mkravets/telegram-clip-bot/internal/config"
	"github.com/mkravets/telegram-clip-bot/internal/downloader"
	"github.com/mkravets/telegram-clip-bot/internal/downloader/manager"
	"github.com/mkravets/telegram-clip-bot/internal/lang"
	"github.com/mkravets/telegram-clip-bot/internal/session"
)

// beginDownload turns the prompt message into the status message and runs the
// download in its own goroutine so the update loop never blocks.
func (h *Handler) beginDownload(ctx context.Context, s *session.Session, chatID int64, statusMessageID int, from *tgbotapi.User, url string, kind downloader.MediaKind, tier config.QualityTier) {
	h.bot.EditMessage(chatID, statusMessageID, lang.GetMessage(lang.StartingDownloadMsgID))
	s.SetPrompt(statusMessageID)

	dctx, dl := s.BeginDownload(ctx)
	req := &manager.Request{
		ChatID:          chatID,
		StatusMessageID: statusMessageID,
		UserName:        displayName(from),
		URL:             url,
		Kind:            kind,
		Tier:            tier,
	}

	go func() {
		defer dl.Finish()
		outcome := h.downloads.Download(dctx, req)
		s.FinishDownload(dl)
		logrus.WithFields(logrus.Fields{
			"chat_id": chatID,
			"url":     url,
			"kind":    kind.String(),
			"outcome": outcome.String(),
		}).Info("Download finished")
	}()
}

func displayName(from *tgbotapi.User) string {
	if from == nil {
		return ""
	}
	if from.UserName != "" {
		return from.UserName
	}
	return strings.TrimSpace(from.FirstName + " " + from.LastName)
}
