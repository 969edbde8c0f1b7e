package handlers

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mkravets/telegram-clip-bot/internal/lang"
)

const (
	callbackFormatAudio   = "format:audio"
	callbackFormatVideo   = "format:video"
	callbackQualityPrefix = "quality:"
)

func (h *Handler) formatKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(lang.GetMessage(lang.AudioButtonMsgID), callbackFormatAudio),
			tgbotapi.NewInlineKeyboardButtonData(lang.GetMessage(lang.VideoButtonMsgID), callbackFormatVideo),
		),
	)
}

// qualityKeyboard lists the configured tiers in order, one button per row.
func (h *Handler) qualityKeyboard() tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(h.cfg.QualityTiers))
	for i, tier := range h.cfg.QualityTiers {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(tier.Name, fmt.Sprintf("%s%d", callbackQualityPrefix, i)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
