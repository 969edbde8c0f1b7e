package handlers

import (
	"context"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/mkravets/telegram-clip-bot/internal/downloader"
	"github.com/mkravets/telegram-clip-bot/internal/lang"
	"github.com/mkravets/telegram-clip-bot/internal/session"
)

// handleCallback reacts to one inline button press. A press that does not
// match the session's current state (restart, double tap, stale keyboard) is
// answered with a session-expired notice instead of acting on stale data.
func (h *Handler) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	h.bot.AnswerCallback(query.ID)

	if query.Message == nil {
		return
	}
	chatID := query.Message.Chat.ID
	messageID := query.Message.MessageID

	s := h.sessions.Get(chatID)
	view := s.View()
	data := query.Data

	switch {
	case data == callbackFormatAudio || data == callbackFormatVideo:
		if view.State != session.StateChoosingFormat || view.PendingURL == "" {
			h.expireSession(s, chatID, messageID)
			return
		}

		if data == callbackFormatAudio {
			s.SetMediaKind(downloader.KindAudio)
			tier := h.cfg.DefaultTier
			if view.TierCapable {
				tier, _ = h.cfg.NormalAudioTier()
			}
			h.beginDownload(ctx, s, chatID, messageID, query.From, view.PendingURL, downloader.KindAudio, tier)
			return
		}

		s.SetMediaKind(downloader.KindVideo)
		if !view.TierCapable {
			h.beginDownload(ctx, s, chatID, messageID, query.From, view.PendingURL, downloader.KindVideo, h.cfg.DefaultTier)
			return
		}
		s.SetState(session.StateChoosingQuality)
		h.bot.EditMessageWithKeyboard(chatID, messageID, lang.GetMessage(lang.AskQualityMsgID), h.qualityKeyboard())
		s.SetPrompt(messageID)

	case strings.HasPrefix(data, callbackQualityPrefix):
		if view.State != session.StateChoosingQuality || view.PendingURL == "" {
			h.expireSession(s, chatID, messageID)
			return
		}
		index, err := strconv.Atoi(strings.TrimPrefix(data, callbackQualityPrefix))
		if err != nil || index < 0 || index >= len(h.cfg.QualityTiers) {
			logrus.Warnf("Bad quality callback data: %q", data)
			return
		}
		s.SetQualityTier(index)
		h.beginDownload(ctx, s, chatID, messageID, query.From, view.PendingURL, downloader.KindVideo, h.cfg.QualityTiers[index])

	default:
		logrus.Warnf("Unknown callback data: %q", data)
	}
}

func (h *Handler) expireSession(s *session.Session, chatID int64, messageID int) {
	h.bot.EditMessage(chatID, messageID, lang.GetMessage(lang.SessionExpiredMsgID))
	if s.View().State != session.StateDownloading {
		s.Reset()
	}
}
