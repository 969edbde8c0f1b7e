package manager

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/mkravets/telegram-clip-bot/internal/bot"
	"github.com/mkravets/telegram-clip-bot/internal/config"
	"github.com/mkravets/telegram-clip-bot/internal/downloader"
	"github.com/mkravets/telegram-clip-bot/internal/history"
	"github.com/mkravets/telegram-clip-bot/internal/lang"
	"github.com/mkravets/telegram-clip-bot/internal/utils"
)

// Outcome is the terminal result of one download invocation.
type Outcome int

const (
	OutcomeSent Outcome = iota
	OutcomeTooLarge
	OutcomeUnavailable
	OutcomeCancelled
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSent:
		return "sent"
	case OutcomeTooLarge:
		return "too_large"
	case OutcomeUnavailable:
		return "unavailable"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "failed"
	}
}

// Request describes one download invocation.
type Request struct {
	ChatID          int64
	StatusMessageID int
	UserName        string
	URL             string
	Kind            downloader.MediaKind
	Tier            config.QualityTier
	// PlaylistItem suppresses per-item chat messages; the playlist loop
	// owns the status message then.
	PlaylistItem bool
}

// Manager orchestrates single downloads and playlist fan-out on top of the
// extraction engine.
type Manager struct {
	bot     bot.Service
	engine  downloader.Engine
	cfg     *config.Config
	history *history.Logger
}

func NewManager(botService bot.Service, engine downloader.Engine, cfg *config.Config, historyLog *history.Logger) *Manager {
	return &Manager{
		bot:     botService,
		engine:  engine,
		cfg:     cfg,
		history: historyLog,
	}
}

// report edits the status message unless this is a playlist item.
func (m *Manager) report(req *Request, text string) {
	if req.PlaylistItem {
		return
	}
	m.bot.EditMessage(req.ChatID, req.StatusMessageID, text)
}

// Download runs the whole ladder for one URL: probe, fetch with one format
// fallback, size check, upload, history, cleanup. Whatever the outcome, no
// artifact file remains on disk when it returns.
//
// Oversized results are reported with a lower-tier suggestion and stopped;
// there is deliberately no automatic downgrade to the next tier.
func (m *Manager) Download(ctx context.Context, req *Request) Outcome {
	url := utils.NormalizeURL(req.URL)
	log := logrus.WithFields(logrus.Fields{"chat_id": req.ChatID, "url": url, "kind": req.Kind.String()})

	var meta *downloader.Metadata
	if !req.PlaylistItem {
		probed, err := m.engine.Probe(ctx, url)
		switch {
		case errors.Is(err, downloader.ErrRestricted):
			m.report(req, lang.GetMessage(lang.RestrictedMsgID))
			return OutcomeUnavailable
		case errors.Is(err, downloader.ErrUnavailable):
			m.report(req, lang.GetMessage(lang.UnavailableMsgID))
			return OutcomeUnavailable
		case err != nil:
			log.WithError(err).Warn("Probe failed, attempting download anyway")
		case probed.Restricted:
			m.report(req, lang.GetMessage(lang.RestrictedMsgID))
			return OutcomeUnavailable
		case probed.IsPlaylist:
			return m.downloadPlaylist(ctx, req, url)
		default:
			meta = probed
		}
	}

	selector := req.Tier.Selector
	if req.Kind == downloader.KindAudio {
		selector = m.cfg.AudioSelector
	}

	var title, uploader string
	var duration int
	if meta != nil {
		title = meta.Title
		uploader = meta.Uploader
		duration = meta.Duration
	}

	outputBase := filepath.Join(m.cfg.DownloadDir, utils.FileNameBase(title, url))
	fetchReq := &downloader.FetchRequest{
		URL:            url,
		FormatSelector: selector,
		OutputBase:     outputBase,
		WriteThumbnail: req.Kind == downloader.KindVideo,
	}

	m.report(req, lang.GetMessage(lang.DownloadingMsgID, req.Tier.Name))

	var artifact *downloader.Artifact
	defer func() { m.removeArtifact(artifact) }()

	onProgress := func(percent float64) {
		log.Debugf("Download progress: %.1f%%", percent)
	}

	artifact, err := m.engine.Fetch(ctx, fetchReq, onProgress)
	if errors.Is(err, downloader.ErrFormatUnavailable) {
		relaxed := config.RelaxedSelector
		if req.Kind == downloader.KindAudio {
			relaxed = "bestaudio/best"
		}
		log.Infof("Requested format unavailable, retrying with %q", relaxed)
		fetchReq.FormatSelector = relaxed
		artifact, err = m.engine.Fetch(ctx, fetchReq, onProgress)
	}

	switch {
	case errors.Is(err, context.Canceled) || ctx.Err() != nil:
		// The cancellation confirmation is sent by the flow controller.
		log.Info("Download cancelled")
		return OutcomeCancelled
	case errors.Is(err, downloader.ErrRestricted):
		m.report(req, lang.GetMessage(lang.RestrictedMsgID))
		return OutcomeUnavailable
	case errors.Is(err, downloader.ErrUnavailable):
		m.report(req, lang.GetMessage(lang.UnavailableMsgID))
		return OutcomeUnavailable
	case errors.Is(err, downloader.ErrNetwork):
		log.WithError(err).Error("Download failed with a network error")
		m.report(req, lang.GetMessage(lang.NetworkErrorMsgID))
		return OutcomeFailed
	case err != nil:
		log.WithError(err).Error("Download failed")
		m.report(req, lang.GetMessage(lang.DownloadFailedMsgID))
		return OutcomeFailed
	}

	info, statErr := os.Stat(artifact.MediaPath)
	if statErr != nil {
		log.WithError(statErr).Error("Downloaded file is missing")
		m.report(req, lang.GetMessage(lang.DownloadFailedMsgID))
		return OutcomeFailed
	}

	if info.Size() > m.cfg.MaxUploadSize {
		log.Warnf("File too large: %d bytes", info.Size())
		m.report(req, lang.GetMessage(lang.FileTooLargeMsgID, humanize.Bytes(uint64(info.Size()))))
		return OutcomeTooLarge
	}

	m.report(req, lang.GetMessage(lang.UploadPreparationMsgID))

	if uploadErr := m.upload(req, artifact, title, uploader, duration); uploadErr != nil {
		log.WithError(uploadErr).Error("Upload failed")
		m.report(req, lang.GetMessage(lang.SendTimedOutMsgID))
		return OutcomeFailed
	}

	m.history.Append(req.UserName, url, req.Kind.String(), filepath.Base(artifact.MediaPath))
	m.report(req, lang.GetMessage(lang.FileSentMsgID, m.qualitySuffix(req)))
	log.Info("File sent successfully")
	return OutcomeSent
}

func (m *Manager) qualitySuffix(req *Request) string {
	if req.Kind == downloader.KindVideo && req.Tier.Name != m.cfg.DefaultTier.Name {
		return " (" + req.Tier.Name + ")"
	}
	return ""
}

func (m *Manager) upload(req *Request, artifact *downloader.Artifact, title, uploader string, duration int) error {
	if req.Kind == downloader.KindAudio {
		if title == "" {
			title = filepath.Base(artifact.MediaPath)
		}
		return m.bot.SendAudio(req.ChatID, artifact.MediaPath, bot.AudioMeta{
			Title:     title,
			Performer: uploader,
			Duration:  duration,
		})
	}
	return m.bot.SendVideo(req.ChatID, artifact.MediaPath, bot.VideoMeta{
		Caption:       title,
		Duration:      duration,
		ThumbnailPath: artifact.ThumbnailPath,
	})
}

// removeArtifact deletes whatever a fetch produced. Runs deferred on every
// exit path of Download.
func (m *Manager) removeArtifact(artifact *downloader.Artifact) {
	if artifact == nil {
		return
	}
	for _, path := range []string{artifact.MediaPath, artifact.ThumbnailPath} {
		if path == "" {
			continue
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			logrus.WithError(err).Warnf("Failed to remove artifact: %s", path)
		}
	}
}
