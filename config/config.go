package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // TIMEZONE tizimda tzdata bo'lmasa ham ishlashi uchun

	"github.com/joho/godotenv"
)

// Config ilovaning konfiguratsiyasi
type Config struct {
	TelegramToken   string
	AdminID         int64
	DBPath          string
	CollectEmail    bool
	Timezone        string
	Location        *time.Location
	BroadcastRate   float64 // xabar/sekund
	ConversationTTL time.Duration
	Workers         int
	GeminiAPIKey    string
	CatalogXLSXPath string
	LogLevel        string
}

// Load konfiguratsiyani yuklash
func Load() (*Config, error) {
	// .env faylini yuklash (mavjud bo'lsa)
	_ = godotenv.Load()

	config := &Config{
		TelegramToken:   strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN")),
		DBPath:          "data/bot.db",
		CollectEmail:    true,
		Timezone:        "Europe/Moscow",
		BroadcastRate:   25,
		ConversationTTL: 24 * time.Hour,
		Workers:         8,
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		CatalogXLSXPath: os.Getenv("CATALOG_XLSX_PATH"),
		LogLevel:        "info",
	}

	// Validatsiya
	if config.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable bo'sh")
	}

	rawAdminID := strings.TrimSpace(os.Getenv("ADMIN_ID"))
	if rawAdminID == "" {
		return nil, fmt.Errorf("ADMIN_ID environment variable bo'sh")
	}
	adminID, err := strconv.ParseInt(rawAdminID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("ADMIN_ID noto'g'ri formatda: %w", err)
	}
	config.AdminID = adminID

	if dbPath := os.Getenv("DB_PATH"); dbPath != "" {
		config.DBPath = dbPath
	}

	if raw := os.Getenv("COLLECT_EMAIL"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("COLLECT_EMAIL noto'g'ri formatda: %w", err)
		}
		config.CollectEmail = v
	}

	if tz := os.Getenv("TIMEZONE"); tz != "" {
		config.Timezone = tz
	}
	loc, err := time.LoadLocation(config.Timezone)
	if err != nil {
		return nil, fmt.Errorf("TIMEZONE noto'g'ri: %w", err)
	}
	config.Location = loc

	if raw := os.Getenv("BROADCAST_RATE"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("BROADCAST_RATE musbat son bo'lishi kerak: %q", raw)
		}
		config.BroadcastRate = v
	}

	if raw := os.Getenv("CONVERSATION_TTL"); raw != "" {
		v, err := time.ParseDuration(raw)
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("CONVERSATION_TTL noto'g'ri: %q", raw)
		}
		config.ConversationTTL = v
	}

	if raw := os.Getenv("WORKERS"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("WORKERS musbat butun son bo'lishi kerak: %q", raw)
		}
		config.Workers = v
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.LogLevel = strings.ToLower(level)
	}

	return config, nil
}
