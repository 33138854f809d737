package config

import (
	"os"
	"strconv"
	"time"
)

// Config is the process-wide, read-only configuration. It is built once at
// startup and passed by value; nothing mutates it afterwards, so concurrent
// reads need no synchronization.
type Config struct {
	ListenAddr string

	// MarketMaya platform access.
	MMBaseURL     string
	MMBearerToken string
	MMTimeout     time.Duration
	// MMRequireToken makes a missing bearer token fatal at startup. The
	// default (false) lets calls fail at the remote side instead.
	MMRequireToken bool

	AdminUsername string
	AdminPassword string
	JWTSecret     string

	StoreMode          string
	DatabaseURL        string
	AuditEncryptionKey string

	TelegramBotToken string
	TelegramChatID   string
}

func Load() Config {
	return Config{
		ListenAddr: getEnv("LISTEN_ADDR", ":18090"),

		MMBaseURL:      getEnv("MM_BASE_URL", "https://api.marketmaya.com/api"),
		MMBearerToken:  getEnv("MM_BEARER_TOKEN", ""),
		MMTimeout:      getDuration("MM_TIMEOUT", 30*time.Second),
		MMRequireToken: getBool("MM_REQUIRE_TOKEN", false),

		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "change-me"),
		JWTSecret:     getEnv("JWT_SECRET", "change-this-secret"),

		StoreMode:          getEnv("STORE_MODE", "memory"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		AuditEncryptionKey: getEnv("AUDIT_ENCRYPTION_KEY", ""),

		TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID:   getEnv("TELEGRAM_CHAT_ID", ""),
	}
}

func getEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
