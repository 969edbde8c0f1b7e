package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	tcbbot "github.com/mkravets/telegram-clip-bot/internal/bot"
	tcbconfig "github.com/mkravets/telegram-clip-bot/internal/config"
	"github.com/mkravets/telegram-clip-bot/internal/downloader/manager"
	"github.com/mkravets/telegram-clip-bot/internal/downloader/ytdlp"
	"github.com/mkravets/telegram-clip-bot/internal/handlers"
	"github.com/mkravets/telegram-clip-bot/internal/history"
	"github.com/mkravets/telegram-clip-bot/internal/lang"
	"github.com/mkravets/telegram-clip-bot/internal/session"
)

func main() {
	config, err := tcbconfig.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize configuration")
	}

	initLogger(config.LogLevel)
	logrus.WithField("version", config.Version).Info("Starting Telegram Clip Bot")

	lang.Setup(config.Lang)

	if err := os.MkdirAll(config.DownloadDir, 0o755); err != nil {
		logrus.WithError(err).Fatal("Failed to create the download directory")
	}

	botInstance, err := tcbbot.InitBot(config.BotToken)
	if err != nil {
		logrus.WithError(err).Fatal("Bot initialization failed")
	}

	sessions := session.NewStore()
	downloadManager := manager.NewManager(botInstance, ytdlp.New(), config, history.NewLogger(config.HistoryFile))
	handler := handlers.NewHandler(botInstance, sessions, downloadManager, config)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go processUpdates(ctx, botInstance, handler)

	logrus.Info("Telegram Clip Bot started successfully")

	<-sigChan
	logrus.Info("Received shutdown signal, starting graceful shutdown...")

	cancel()

	sessions.CancelActive()
	logrus.Info("All downloads stopped")

	logrus.Info("Telegram Clip Bot shutdown complete")
}

func initLogger(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.WithField("log_level", level).Warn("Unknown log level, using info")
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

func processUpdates(ctx context.Context, bot *tcbbot.Bot, handler *handlers.Handler) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := bot.Api.GetUpdatesChan(u)

	for {
		select {
		case update := <-updates:
			handler.Route(ctx, &update)
		case <-ctx.Done():
			logrus.Info("Stopping update processing")
			return
		}
	}
}
