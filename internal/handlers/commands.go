package handlers

import (
	"github.com/sirupsen/logrus"

	"github.com/mkravets/telegram-clip-bot/internal/lang"
	"github.com/mkravets/telegram-clip-bot/internal/session"
)

func (h *Handler) handleStart(chatID int64) {
	h.bot.SendMessage(chatID, lang.GetMessage(lang.StartMsgID))
}

func (h *Handler) handleHelp(chatID int64) {
	h.bot.SendMessage(chatID, lang.GetMessage(lang.HelpMsgID))
}

func (h *Handler) handleVersion(chatID int64) {
	h.bot.SendMessage(chatID, lang.GetMessage(lang.VersionMsgID, h.cfg.Version, h.cfg.Changelog))
}

// handleCancel aborts a pending prompt or an in-flight download. The download
// goroutine itself resets the session once it has fully stopped.
func (h *Handler) handleCancel(chatID int64) {
	s := h.sessions.Get(chatID)
	view := s.View()

	switch view.State {
	case session.StateChoosingFormat, session.StateChoosingQuality:
		if view.LastPromptID != 0 {
			h.bot.DeleteMessage(chatID, view.LastPromptID)
		}
		s.Reset()
		h.bot.SendMessage(chatID, lang.GetMessage(lang.CancelConfirmedMsgID))

	case session.StateDownloading:
		download := s.ActiveDownload()
		if download == nil || download.Finished() {
			h.bot.SendMessage(chatID, lang.GetMessage(lang.NothingToCancelMsgID))
			return
		}
		logrus.WithField("chat_id", chatID).Info("Cancelling in-flight download")
		download.Cancel()
		if view.LastPromptID != 0 {
			h.bot.DeleteMessage(chatID, view.LastPromptID)
		}
		h.bot.SendMessage(chatID, lang.GetMessage(lang.CancelConfirmedMsgID))

	default:
		h.bot.SendMessage(chatID, lang.GetMessage(lang.NothingToCancelMsgID))
	}
}
