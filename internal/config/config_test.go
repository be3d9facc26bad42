package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_MODEL", "")
	t.Setenv("ADDR", "")
	t.Setenv("CONTEXT_MESSAGE_LIMIT", "")

	cfg := Load("testdata/missing.env")

	// a missing key is not fatal here; the proxy checks it per request
	assert.Empty(t, cfg.OpenAIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 20, cfg.HistoryLimit)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("ADDR", ":9999")
	t.Setenv("CONTEXT_MESSAGE_LIMIT", "5")
	t.Setenv("ALLOWED_TELEGRAM_USER_IDS", "1, 2,junk,3")

	cfg := Load("testdata/missing.env")

	assert.Equal(t, "sk-test", cfg.OpenAIKey)
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, 5, cfg.HistoryLimit)
	assert.Equal(t, []int64{1, 2, 3}, cfg.AllowedUserIDs)
}

func TestGetenvIntDefaultRejectsGarbage(t *testing.T) {
	t.Setenv("CONTEXT_MESSAGE_LIMIT", "not-a-number")
	cfg := Load("testdata/missing.env")
	assert.Equal(t, 20, cfg.HistoryLimit)
}
