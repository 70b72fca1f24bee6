package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Google  GoogleConfig
	YouTube YouTubeConfig
	Export  ExportConfig
	Server  ServerConfig
}

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	AuthURL      string
	TokenURL     string
}

type YouTubeConfig struct {
	APIURL  string
	Timeout time.Duration
}

type ExportConfig struct {
	RecordLimit     int
	AllowedChannels []string
}

type ServerConfig struct {
	Addr string
}

// New builds the configuration from the environment. A .env file in the
// working directory is loaded first if present, so local runs and deployed
// runs read credentials the same way.
func New() *Config {
	_ = godotenv.Load()

	return &Config{
		Google: GoogleConfig{
			ClientID:     getEnvOrDefault("GOOGLE_CLIENT_ID", ""),
			ClientSecret: getEnvOrDefault("GOOGLE_CLIENT_SECRET", ""),
			RedirectURI:  getEnvOrDefault("GOOGLE_REDIRECT_URI", ""),
			AuthURL:      getEnvOrDefault("OAUTH_AUTH_URL", "https://accounts.google.com/o/oauth2/auth"),
			TokenURL:     getEnvOrDefault("OAUTH_TOKEN_URL", "https://oauth2.googleapis.com/token"),
		},
		YouTube: YouTubeConfig{
			APIURL:  getEnvOrDefault("YOUTUBE_API_URL", "https://www.googleapis.com/youtube/v3"),
			Timeout: getEnvDurationOrDefault("HTTP_TIMEOUT", 30*time.Second),
		},
		Export: ExportConfig{
			RecordLimit:     getEnvIntOrDefault("RECORD_LIMIT", 1000),
			AllowedChannels: getEnvListOrDefault("ALLOWED_CHANNELS", nil),
		},
		Server: ServerConfig{
			Addr: getEnvOrDefault("HTTP_ADDR", ":8080"),
		},
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var list []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	if len(list) == 0 {
		return defaultValue
	}
	return list
}
