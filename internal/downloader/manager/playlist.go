package manager

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/mkravets/telegram-clip-bot/internal/lang"
)

// downloadPlaylist fans a collection out into sequential single-item
// downloads. Strictly one engine invocation at a time per chat; a bad item
// is counted and skipped, never aborts the rest.
func (m *Manager) downloadPlaylist(ctx context.Context, req *Request, url string) Outcome {
	log := logrus.WithFields(logrus.Fields{"chat_id": req.ChatID, "url": url})

	entries, err := m.engine.FlatEntries(ctx, url)
	if err != nil || len(entries) == 0 {
		if err != nil {
			log.WithError(err).Error("Failed to list playlist entries")
		}
		m.bot.EditMessage(req.ChatID, req.StatusMessageID, lang.GetMessage(lang.PlaylistEmptyMsgID))
		return OutcomeFailed
	}

	total := len(entries)
	log.Infof("Playlist with %d entries", total)

	var succeeded, failed int
	for _, entry := range entries {
		if ctx.Err() != nil {
			return OutcomeCancelled
		}

		m.bot.EditMessage(req.ChatID, req.StatusMessageID,
			lang.GetMessage(lang.PlaylistProgressMsgID, succeeded+failed, total, entry.Title))

		itemReq := *req
		itemReq.URL = entry.URL
		itemReq.PlaylistItem = true

		switch m.Download(ctx, &itemReq) {
		case OutcomeCancelled:
			return OutcomeCancelled
		case OutcomeSent:
			succeeded++
		default:
			failed++
		}
	}

	m.bot.EditMessage(req.ChatID, req.StatusMessageID,
		lang.GetMessage(lang.PlaylistSummaryMsgID, succeeded, failed))

	if succeeded > 0 {
		return OutcomeSent
	}
	return OutcomeFailed
}
