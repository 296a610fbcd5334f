package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig collects everything the server needs at boot.
type AppConfig struct {
	ListenAddr      string
	Port            string
	DatabasePath    string
	SessionSecret   string
	GinMode         string
	LogLevel        string
	PrettyLog       bool
	ShutdownTimeout time.Duration

	UploadDir        string
	UploadURLPath    string
	BlobBackend      string
	UploadThingToken string

	TelegramBotToken string
	TelegramChatID   string

	SeoDefaultsFile    string
	CORSAllowedOrigins []string
	NoticeDismissAfter time.Duration
	LoginMaxAttempts   int
	LoginWindow        time.Duration

	ProfileName       string
	SuperRootUserName string
	SuperRootPassword string
}

const (
	BlobBackendLocal       = "local"
	BlobBackendUploadThing = "uploadthing"
)

// Load reads an optional .env file, then the process environment, and fills
// safe defaults for anything missing.
func Load() AppConfig {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds the configuration from the current environment only.
func FromEnv() AppConfig {
	port := getenv("PORT", "8080")

	blobBackend := strings.ToLower(getenv("BLOB_BACKEND", BlobBackendLocal))
	if blobBackend != BlobBackendUploadThing {
		blobBackend = BlobBackendLocal
	}

	return AppConfig{
		ListenAddr:      getenv("LISTEN_ADDR", fmt.Sprintf(":%s", port)),
		Port:            port,
		DatabasePath:    getenv("DATABASE_PATH", "portfolio.db"),
		SessionSecret:   getenv("SESSION_SECRET", "portfolio-dev-secret"),
		GinMode:         getenv("GIN_MODE", "release"),
		LogLevel:        strings.ToLower(getenv("LOG_LEVEL", "info")),
		PrettyLog:       getenvBool("PRETTY_LOG", false),
		ShutdownTimeout: getenvDuration("SHUTDOWN_TIMEOUT", 5*time.Second),

		UploadDir:        getenv("UPLOAD_DIR", "web/static/uploads"),
		UploadURLPath:    strings.TrimRight(getenv("UPLOAD_URL_PATH", "/static/uploads"), "/"),
		BlobBackend:      blobBackend,
		UploadThingToken: strings.Trim(getenv("UPLOADTHING_TOKEN", ""), `"'`),

		TelegramBotToken: getenv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID:   getenv("TELEGRAM_CHAT_ID", ""),

		SeoDefaultsFile:    getenv("SEO_DEFAULTS_FILE", ""),
		CORSAllowedOrigins: getenvList("CORS_ALLOWED_ORIGINS"),
		NoticeDismissAfter: time.Duration(getenvInt("NOTICE_DISMISS_MS", 3000)) * time.Millisecond,
		LoginMaxAttempts:   getenvInt("LOGIN_MAX_ATTEMPTS", 5),
		LoginWindow:        getenvDuration("LOGIN_WINDOW", 15*time.Minute),

		ProfileName:       getenv("PROFILE_NAME", ""),
		SuperRootUserName: getenv("SUPER_ROOT_USER_NAME", ""),
		SuperRootPassword: getenv("SUPER_ROOT_PASSWORD", ""),
	}
}

// TelegramEnabled reports whether both Telegram credentials are present.
func (c AppConfig) TelegramEnabled() bool {
	return c.TelegramBotToken != "" && c.TelegramChatID != ""
}

func getenv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getenvInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 0 {
		return fallback
	}
	return parsed
}

func getenvBool(key string, fallback bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return parsed
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func getenvList(key string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
