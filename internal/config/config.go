// Package config reads process configuration from the environment. Load the
// .env file (godotenv) before calling Load.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config carries everything main needs to wire the agent, the calendar
// client, and the HTTP server.
type Config struct {
	// Model settings.
	ModelName    string
	ModelBaseURL string

	// Server settings.
	Addr          string
	SessionSecret string

	// Calendar settings.
	CalendarEnabled bool
	CalendarID      string
	CredentialsJSON string
	TokenJSON       string
	CredentialsFile string
	TokenFile       string
	OAuthRedirectURL string

	// Event settings.
	ConflictDetection bool
	AddMeetLink       bool
	SendNotifications bool
	ReminderMinutes   int64
	MaxResults        int64

	// Request bounds.
	ProviderTimeout   time.Duration
	MaxToolIterations int
}

// Load builds a Config from environment variables, falling back to defaults
// that match the reference deployment.
func Load() Config {
	return Config{
		ModelName:    getenv("MODEL_NAME", "openai/gpt-oss-20b"),
		ModelBaseURL: getenv("MODEL_BASE_URL", "https://api.groq.com/openai/v1"),

		Addr:          getenv("ADDR", ":8080"),
		SessionSecret: os.Getenv("SESSION_SECRET"),

		CalendarEnabled: getbool("GOOGLE_CALENDAR_ENABLED", true),
		CalendarID:      getenv("GOOGLE_CALENDAR_ID", "primary"),
		CredentialsJSON: os.Getenv("GOOGLE_CREDENTIALS_JSON"),
		TokenJSON:       os.Getenv("GOOGLE_TOKEN_JSON"),
		CredentialsFile: getenv("GOOGLE_CREDENTIALS_FILE", "credentials/google_credentials.json"),
		TokenFile:       getenv("GOOGLE_TOKEN_FILE", "credentials/google_token.json"),
		OAuthRedirectURL: getenv("OAUTH_REDIRECT_URL", "http://localhost:8080/oauth/oauth2callback/"),

		ConflictDetection: getbool("ENABLE_CONFLICT_DETECTION", true),
		AddMeetLink:       getbool("ADD_CONFERENCE_LINK", true),
		SendNotifications: getbool("SEND_NOTIFICATIONS", true),
		ReminderMinutes:   getint("DEFAULT_REMINDER_MINUTES", 15),
		MaxResults:        getint("CALENDAR_MAX_RESULTS", 100),

		ProviderTimeout:   time.Duration(getint("PROVIDER_TIMEOUT_SECONDS", 30)) * time.Second,
		MaxToolIterations: int(getint("MAX_TOOL_ITERATIONS", 10)),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getbool(key string, fallback bool) bool {
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

func getint(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
