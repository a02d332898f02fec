package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"assistant": map[string]any{
			"apiKey": "",
			"model":  "gemini-2.5-flash",
		},
		"news": map[string]any{
			"refreshSpec": "@every 30m",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "ASSISTANT_APIKEY", want: "assistant.apiKey"},
		{envKey: "ASSISTANT_MODEL", want: "assistant.model"},
		{envKey: "NEWS_REFRESHSPEC", want: "news.refreshSpec"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, "develop", cfg.Env.Env)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 24*time.Hour, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, "gemini-2.5-flash", cfg.Assistant.Model)
	assert.Equal(t, 30*time.Second, cfg.Assistant.Timeout)
	assert.True(t, cfg.News.Enabled)
	assert.Equal(t, "@every 30m", cfg.News.RefreshSpec)
	assert.Equal(t, 16, cfg.Realtime.SendBuffer)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Assistant: &AssistantConfig{Model: "custom", Timeout: time.Second},
		News:      &NewsConfig{Enabled: false, RefreshSpec: "@hourly"},
	}
	applyDefaults(cfg)

	assert.Equal(t, "custom", cfg.Assistant.Model)
	assert.Equal(t, time.Second, cfg.Assistant.Timeout)
	assert.False(t, cfg.News.Enabled)
	assert.Equal(t, "@hourly", cfg.News.RefreshSpec)
}
