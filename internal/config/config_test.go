package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("BITRIX_WEBHOOK_URL", "")
	t.Setenv("TRUSTED_PROXIES", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "pkg/translator/translation", cfg.TranslationFolder)
	assert.Zero(t, cfg.BitrixTimeout)
	assert.Nil(t, cfg.TrustedProxies)
	assert.ErrorIs(t, cfg.Validate(), ErrMissingWebhookURL)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("BITRIX_WEBHOOK_URL", " https://example.bitrix24.ru/rest/1/secret/ ")
	t.Setenv("BITRIX_HTTP_TIMEOUT", "15s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.1, ,10.0.0.2")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, "https://example.bitrix24.ru/rest/1/secret/", cfg.BitrixWebhookURL)
	assert.Equal(t, 15*time.Second, cfg.BitrixTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_InvalidTimeout(t *testing.T) {
	t.Setenv("BITRIX_HTTP_TIMEOUT", "soon")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestParseDuration_RejectsNegative(t *testing.T) {
	_, err := parseDuration("-1s")
	assert.Error(t, err)
}

func TestParseTrustedProxies_OnlySeparators(t *testing.T) {
	assert.Nil(t, parseTrustedProxies(" , ,"))
}
