package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrMissingWebhookURL = errors.New("BITRIX_WEBHOOK_URL is required")

type Config struct {
	AppPort           string
	BitrixWebhookURL  string
	BitrixTimeout     time.Duration
	LogLevel          string
	TranslationFolder string
	TrustedProxies    []string
}

func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	timeout, err := parseDuration(getEnv("BITRIX_HTTP_TIMEOUT", "0"))
	if err != nil {
		return nil, fmt.Errorf("BITRIX_HTTP_TIMEOUT: %w", err)
	}

	return &Config{
		AppPort:           getEnv("APP_PORT", "8080"),
		BitrixWebhookURL:  strings.TrimSpace(os.Getenv("BITRIX_WEBHOOK_URL")),
		BitrixTimeout:     timeout,
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		TranslationFolder: getEnv("TRANSLATION_FOLDER", "pkg/translator/translation"),
		TrustedProxies:    parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
	}, nil
}

// Validate reports settings the server cannot start without.
func (c *Config) Validate() error {
	if c.BitrixWebhookURL == "" {
		return ErrMissingWebhookURL
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func parseDuration(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" || value == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %s", value)
	}
	return d, nil
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
