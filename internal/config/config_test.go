package config

import (
	"strings"
	"testing"
)

func TestNewConfigRequiresBotToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	if _, err := NewConfig(); err == nil {
		t.Fatal("NewConfig succeeded without BOT_TOKEN")
	}
}

func TestNewConfigDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")

	config, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}

	if config.BotToken != "123:abc" {
		t.Errorf("BotToken = %q", config.BotToken)
	}
	if config.DownloadDir != "downloads" {
		t.Errorf("DownloadDir = %q, want downloads", config.DownloadDir)
	}
	if config.MaxUploadSize != DefaultMaxUploadSize {
		t.Errorf("MaxUploadSize = %d, want %d", config.MaxUploadSize, DefaultMaxUploadSize)
	}
	if config.Lang != "en" {
		t.Errorf("Lang = %q, want en", config.Lang)
	}
	if config.AudioSelector != DefaultAudioSelector {
		t.Errorf("AudioSelector = %q", config.AudioSelector)
	}
	if len(config.QualityTiers) != 3 {
		t.Fatalf("got %d quality tiers, want 3", len(config.QualityTiers))
	}
	for i, tier := range config.QualityTiers {
		if tier.Selector == "" || tier.Name == "" {
			t.Errorf("tier %d incomplete: %+v", i, tier)
		}
	}
	if !strings.Contains(config.QualityTiers[0].Selector, "1080") {
		t.Errorf("highest tier selector = %q, want a 1080p bound", config.QualityTiers[0].Selector)
	}
	if config.DefaultTier.Selector != "best" {
		t.Errorf("DefaultTier.Selector = %q, want best", config.DefaultTier.Selector)
	}
}

func TestNewConfigEnvOverrides(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("DOWNLOAD_DIR", "/tmp/clips")
	t.Setenv("LANG", "he")

	config, err := NewConfig()
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if config.DownloadDir != "/tmp/clips" {
		t.Errorf("DownloadDir = %q, want /tmp/clips", config.DownloadDir)
	}
	if config.Lang != "he" {
		t.Errorf("Lang = %q, want he", config.Lang)
	}
}

func TestNormalAudioTier(t *testing.T) {
	config := &Config{QualityTiers: []QualityTier{
		{Selector: "a", Name: "High"},
		{Selector: "b", Name: "Normal"},
		{Selector: "c", Name: "Low"},
	}}

	tier, index := config.NormalAudioTier()
	if index != 1 || tier.Name != "Normal" {
		t.Errorf("NormalAudioTier = %+v at %d, want the second tier", tier, index)
	}

	config.QualityTiers = config.QualityTiers[:1]
	tier, index = config.NormalAudioTier()
	if index != 0 || tier.Name != "High" {
		t.Errorf("single-tier NormalAudioTier = %+v at %d, want the only tier", tier, index)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid",
			config: Config{
				BotToken:      "t",
				MaxUploadSize: 1,
				QualityTiers:  []QualityTier{{Selector: "best", Name: "Best"}},
			},
		},
		{
			name: "zero upload size",
			config: Config{
				BotToken:     "t",
				QualityTiers: []QualityTier{{Selector: "best", Name: "Best"}},
			},
			wantErr: true,
		},
		{
			name: "tier missing name",
			config: Config{
				BotToken:      "t",
				MaxUploadSize: 1,
				QualityTiers:  []QualityTier{{Selector: "best"}},
			},
			wantErr: true,
		},
		{
			name:    "no tiers",
			config:  Config{BotToken: "t", MaxUploadSize: 1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
