package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	// DefaultMaxUploadSize matches the bot API upload ceiling for bot accounts.
	DefaultMaxUploadSize = 50 * 1024 * 1024

	// DefaultAudioSelector is the fixed "best available audio" selector;
	// quality tiers apply to video only.
	DefaultAudioSelector = "bestaudio[ext=m4a]/best[ext=m4a]/bestaudio"

	// RelaxedSelector is the fallback used when the requested format
	// selector turns out not to be offered by the source.
	RelaxedSelector = "bestvideo*+bestaudio/best"
)

// QualityTier is one entry of the ordered video quality ladder,
// highest quality first.
type QualityTier struct {
	Selector string `mapstructure:"selector"`
	Name     string `mapstructure:"name"`
}

type Config struct {
	BotToken      string
	DownloadDir   string
	HistoryFile   string
	MaxUploadSize int64
	Lang          string
	LogLevel      string
	Version       string
	Changelog     string

	// QualityTiers is the video ladder for tier-capable platforms.
	QualityTiers []QualityTier
	// DefaultTier is used for platforms with no tiering.
	DefaultTier   QualityTier
	AudioSelector string
}

func defaultQualityTiers() []map[string]any {
	return []map[string]any{
		{
			"selector": "bestvideo[height<=1080][ext=mp4]+bestaudio[ext=m4a]/best[height<=1080][ext=mp4]/best[height<=1080]",
			"name":     "High quality (1080p)",
		},
		{
			"selector": "bestvideo[height<=720][ext=mp4]+bestaudio[ext=m4a]/best[height<=720][ext=mp4]/best[height<=720]",
			"name":     "Normal quality (720p)",
		},
		{
			"selector": "bestvideo[height<=480][ext=mp4]+bestaudio[ext=m4a]/best[height<=480][ext=mp4]/best[height<=480]",
			"name":     "Low quality (480p)",
		},
	}
}

// NewConfig reads config.yaml (working dir or /etc/telegram-clip-bot) and the
// environment; environment variables win. Only BOT_TOKEN has no default.
func NewConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/telegram-clip-bot")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("download_dir", "downloads")
	v.SetDefault("history_file", "downloads_history.txt")
	v.SetDefault("max_upload_size", DefaultMaxUploadSize)
	v.SetDefault("lang", "en")
	v.SetDefault("log_level", "info")
	v.SetDefault("version", "dev")
	v.SetDefault("changelog", "")
	v.SetDefault("quality_tiers", defaultQualityTiers())
	v.SetDefault("default_tier.selector", "best")
	v.SetDefault("default_tier.name", "Best available")
	v.SetDefault("audio_selector", DefaultAudioSelector)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	config := &Config{
		BotToken:      v.GetString("bot_token"),
		DownloadDir:   v.GetString("download_dir"),
		HistoryFile:   v.GetString("history_file"),
		MaxUploadSize: v.GetInt64("max_upload_size"),
		Lang:          v.GetString("lang"),
		LogLevel:      v.GetString("log_level"),
		Version:       v.GetString("version"),
		Changelog:     v.GetString("changelog"),
		AudioSelector: v.GetString("audio_selector"),
		DefaultTier: QualityTier{
			Selector: v.GetString("default_tier.selector"),
			Name:     v.GetString("default_tier.name"),
		},
	}

	if err := v.UnmarshalKey("quality_tiers", &config.QualityTiers); err != nil {
		return nil, fmt.Errorf("parse quality tiers: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) validate() error {
	var missing []string
	if c.BotToken == "" {
		missing = append(missing, "BOT_TOKEN")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	if c.MaxUploadSize <= 0 {
		return fmt.Errorf("max_upload_size must be positive")
	}
	if len(c.QualityTiers) == 0 {
		return fmt.Errorf("quality_tiers must not be empty")
	}
	for i, tier := range c.QualityTiers {
		if tier.Selector == "" || tier.Name == "" {
			return fmt.Errorf("quality tier %d is missing a selector or name", i)
		}
	}
	return nil
}

// NormalAudioTier returns the tier used when the user asks for audio from a
// tier-capable platform: the second-highest tier when one exists, matching
// the historical "normal quality" default.
func (c *Config) NormalAudioTier() (QualityTier, int) {
	if len(c.QualityTiers) > 1 {
		return c.QualityTiers[1], 1
	}
	return c.QualityTiers[0], 0
}
