package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"tradegate/internal/domain"
)

type Config struct {
	ServerAddr       string
	DatabaseURL      string
	RedisURL         string
	TelegramBotToken string
	TelegramChatID   string
	APIKey           string

	EmotionPollSecs   int
	UndoWindowSecs    int
	RefreshDebounceMs int

	AccountValue        float64
	MaxDailyDrawdownPct float64
	DailyTradeHardCap   int

	// LimitDefaults seeds the trading limits for a fresh profile store.
	// Persisted limits always win over these.
	LimitDefaults domain.TradingLimits
}

func Load() *Config {
	cfg := &Config{
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		RedisURL:         os.Getenv("REDIS_URL"),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID")),
		APIKey:           strings.TrimSpace(os.Getenv("API_KEY")),
	}

	if cfg.TelegramBotToken == "" {
		log.Println("Warning: TELEGRAM_BOT_TOKEN not set")
	}
	if cfg.DatabaseURL == "" {
		log.Println("Warning: DATABASE_URL not set")
	}
	if cfg.RedisURL == "" {
		log.Println("Warning: REDIS_URL not set, defaulting to localhost:6379")
		cfg.RedisURL = "localhost:6379"
	}
	if cfg.APIKey == "" {
		log.Println("Warning: API_KEY not set, API authentication disabled")
	}

	cfg.ServerAddr = strings.TrimSpace(os.Getenv("SERVER_ADDR"))
	if cfg.ServerAddr == "" {
		cfg.ServerAddr = ":8080"
	}

	cfg.EmotionPollSecs = 30
	if v := os.Getenv("EMOTION_POLL_SECS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.EmotionPollSecs = n
		}
	}

	cfg.UndoWindowSecs = 30
	if v := os.Getenv("UNDO_WINDOW_SECS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.UndoWindowSecs = n
		}
	}

	cfg.RefreshDebounceMs = 1000
	if v := os.Getenv("REFRESH_DEBOUNCE_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RefreshDebounceMs = n
		}
	}

	cfg.AccountValue = 10000
	if v := strings.TrimSpace(os.Getenv("ACCOUNT_VALUE")); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil && n > 0 {
			cfg.AccountValue = n
		}
	}

	cfg.MaxDailyDrawdownPct = 10
	if v := strings.TrimSpace(os.Getenv("MAX_DAILY_DRAWDOWN_PCT")); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil && n > 0 && n <= 100 {
			cfg.MaxDailyDrawdownPct = n
		}
	}

	cfg.DailyTradeHardCap = 50
	if v := strings.TrimSpace(os.Getenv("DAILY_TRADE_HARD_CAP")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.DailyTradeHardCap = n
		}
	}

	cfg.LimitDefaults = domain.DefaultLimits()
	if path := strings.TrimSpace(os.Getenv("TRADEGATE_CONFIG")); path != "" {
		if err := applyLimitsOverlay(&cfg.LimitDefaults, path); err != nil {
			log.Printf("Warning: limits overlay %s: %v", path, err)
		}
	}

	return cfg
}

// limitsOverlay mirrors TradingLimits with pointer fields so an overlay file
// only overrides the keys it names.
type limitsOverlay struct {
	MaxPositionValue      *float64 `yaml:"max_position_value"`
	MaxDailyTrades        *int     `yaml:"max_daily_trades"`
	MaxDailyLoss          *float64 `yaml:"max_daily_loss"`
	AllowedSymbols        []string `yaml:"allowed_symbols"`
	AllowedHoursStart     *int     `yaml:"allowed_hours_start"`
	AllowedHoursEnd       *int     `yaml:"allowed_hours_end"`
	RequireHighConfidence *bool    `yaml:"require_high_confidence"`
}

func applyLimitsOverlay(limits *domain.TradingLimits, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var file struct {
		Limits limitsOverlay `yaml:"limits"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return err
	}
	o := file.Limits

	if o.MaxPositionValue != nil && *o.MaxPositionValue >= 0 {
		limits.MaxPositionValue = *o.MaxPositionValue
	}
	if o.MaxDailyTrades != nil && *o.MaxDailyTrades >= 0 {
		limits.MaxDailyTrades = *o.MaxDailyTrades
	}
	if o.MaxDailyLoss != nil && *o.MaxDailyLoss >= 0 {
		limits.MaxDailyLoss = *o.MaxDailyLoss
	}
	if len(o.AllowedSymbols) > 0 {
		limits.AllowedSymbols = o.AllowedSymbols
	}
	if o.AllowedHoursStart != nil || o.AllowedHoursEnd != nil {
		window := limits.AllowedHours
		if o.AllowedHoursStart != nil {
			window.Start = *o.AllowedHoursStart
		}
		if o.AllowedHoursEnd != nil {
			window.End = *o.AllowedHoursEnd
		}
		if window.IsValid() {
			limits.AllowedHours = window
		} else {
			log.Printf("Warning: ignoring invalid hour window %d-%d in limits overlay", window.Start, window.End)
		}
	}
	if o.RequireHighConfidence != nil {
		limits.RequireHighConfidence = *o.RequireHighConfidence
	}
	return nil
}
