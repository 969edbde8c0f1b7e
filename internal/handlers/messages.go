package handlers

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/mkravets/telegram-clip-bot/internal/lang"
	"github.com/mkravets/telegram-clip-bot/internal/session"
	"github.com/mkravets/telegram-clip-bot/internal/utils"
)

// handleText processes a plain message: a thank-you gets a friendly reply, a
// link starts the format conversation, anything else gets the help text.
func (h *Handler) handleText(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	text := message.Text
	if text == "" {
		text = message.Caption
	}

	// A thank-you reply never swallows a link in the same message; the
	// acknowledgement goes first, then the usual link flow.
	thanked := utils.IsThankYouMessage(text)
	if thanked {
		h.bot.SendMessage(chatID, lang.RandomThanksReply())
	}

	urls := utils.ExtractURLs(text)
	if len(urls) == 0 {
		if !thanked {
			h.bot.SendMessage(chatID, lang.GetMessage(lang.HelpMsgID))
		}
		return
	}
	if len(urls) > 1 {
		h.bot.SendMessage(chatID, lang.GetMessage(lang.MultipleLinksMsgID))
	}

	url := urls[0]
	if !utils.IsPreferredPlatform(url) {
		logrus.WithField("url", url).Debug("Unrecognized platform, passing through to the engine")
	}

	s := h.sessions.Get(chatID)
	view := s.View()
	if view.LastPromptID != 0 && view.State != session.StateDownloading {
		// A fresh link supersedes the pending prompt.
		h.bot.DeleteMessage(chatID, view.LastPromptID)
	}

	s.SetLink(url, utils.IsYouTubeURL(url))

	promptID, err := h.bot.SendKeyboard(chatID, lang.GetMessage(lang.AskFormatMsgID), h.formatKeyboard())
	if err != nil {
		logrus.WithError(err).Error("Failed to send the format prompt")
		s.Reset()
		return
	}
	s.SetPrompt(promptID)
}
