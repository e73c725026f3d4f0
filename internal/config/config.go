package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Port           int           `yaml:"port"`
		ReadTimeout    time.Duration `yaml:"read_timeout"`
		WriteTimeout   time.Duration `yaml:"write_timeout"`
		RequestTimeout time.Duration `yaml:"request_timeout"`
		CORSOrigins    []string      `yaml:"cors_origins"`
	} `yaml:"server"`
	Fred struct {
		APIKey   string `yaml:"api_key"`
		BaseURL  string `yaml:"base_url"`
		SeriesID string `yaml:"series_id"`
	} `yaml:"fred"`
	MarketData struct {
		Provider string   `yaml:"provider"` // yahoo, financego or mock
		BaseURL  string   `yaml:"base_url"`
		Symbols  []string `yaml:"symbols"`
		Lookback string   `yaml:"lookback"`
		TopN     int      `yaml:"top_n"`
		Proxy    string   `yaml:"proxy"`
	} `yaml:"market_data"`
	Translate struct {
		ProjectID       string `yaml:"project_id"`
		AccessToken     string `yaml:"access_token"`
		BaseURL         string `yaml:"base_url"`
		DefaultLanguage string `yaml:"default_language"`
	} `yaml:"translate"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Schedule struct {
		SnapshotCron string `yaml:"snapshot_cron"`
	} `yaml:"schedule"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Log struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"log"`
}

// Load reads .env, then the YAML file at path, then applies environment
// variable overrides and defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	// .env is optional; real environment variables win over it.
	_ = godotenv.Load()

	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.Fred.APIKey, "FRED_API_KEY")
	setString(&c.Translate.ProjectID, "TRANSLATE_PROJECT_ID")
	setString(&c.Translate.AccessToken, "TRANSLATE_ACCESS_TOKEN")
	setString(&c.Database.SQLitePath, "SQLITE_PATH")
	setString(&c.Log.Level, "LOG_LEVEL")
	setString(&c.Telegram.BotToken, "TELEGRAM_BOT_TOKEN")
	setString(&c.Telegram.ChatID, "TELEGRAM_CHAT_ID")
	setString(&c.MarketData.Proxy, "HTTPS_PROXY")
	setString(&c.Schedule.SnapshotCron, "CRON_SNAPSHOT")
	setString(&c.MarketData.Provider, "MARKET_DATA_PROVIDER")

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PORT: %w", err)
		}
		c.Server.Port = port
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 60 * time.Second
	}
	if c.Server.RequestTimeout == 0 {
		c.Server.RequestTimeout = 45 * time.Second
	}
	if len(c.Server.CORSOrigins) == 0 {
		c.Server.CORSOrigins = []string{"*"}
	}
	if c.Fred.SeriesID == "" {
		c.Fred.SeriesID = "CPIAUCSL"
	}
	c.MarketData.Provider = strings.ToLower(c.MarketData.Provider)
	if c.MarketData.Provider == "" {
		c.MarketData.Provider = "yahoo"
	}
	if c.MarketData.Lookback == "" {
		c.MarketData.Lookback = "3mo"
	}
	if c.MarketData.TopN == 0 {
		c.MarketData.TopN = 5
	}
	if c.Translate.DefaultLanguage == "" {
		c.Translate.DefaultLanguage = "en"
	}
	if c.Schedule.SnapshotCron == "" {
		c.Schedule.SnapshotCron = "0 30 18 * * 1-5"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Fred.APIKey == "" {
		return fmt.Errorf("fred.api_key is required")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}
	switch c.MarketData.Provider {
	case "yahoo", "financego", "mock":
	default:
		return fmt.Errorf("market_data.provider must be yahoo, financego or mock, got %q", c.MarketData.Provider)
	}
	if c.MarketData.TopN < 0 {
		return fmt.Errorf("market_data.top_n must not be negative")
	}
	if (c.Telegram.BotToken == "") != (c.Telegram.ChatID == "") {
		return fmt.Errorf("telegram.bot_token and telegram.chat_id must be set together")
	}
	return nil
}

// TranslationEnabled reports whether a translation backend is configured.
func (c *Config) TranslationEnabled() bool {
	return c.Translate.ProjectID != "" && c.Translate.AccessToken != ""
}

// TelegramEnabled reports whether snapshot digests should be sent.
func (c *Config) TelegramEnabled() bool {
	return c.Telegram.BotToken != "" && c.Telegram.ChatID != ""
}
