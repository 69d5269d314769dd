package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-wizard/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "openai", cfg.AI.Provider)
	assert.Equal(t, "gpt-4o", cfg.AI.OpenAIModel)
	assert.Zero(t, cfg.AI.Temperature)
	assert.Equal(t, "http://product_events_api:8000", cfg.Services.ProductEventsURL)
	assert.Equal(t, "http://dc_events_api:8001", cfg.Services.DCEventsURL)
	assert.Equal(t, "http://set_stock_on_hand:8002", cfg.Services.SOHURL)
	assert.True(t, cfg.Assistant.AllowWrites)
	assert.False(t, cfg.JWT.Enabled())
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("AI_PROVIDER", "Anthropic")
	t.Setenv("SOH_API_URL", "http://localhost:9002")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("ASSISTANT_ALLOW_WRITES", "false")
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("EVENTS_SOURCE", "dc")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "anthropic", cfg.AI.Provider)
	assert.Equal(t, "http://localhost:9002", cfg.Services.SOHURL)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.False(t, cfg.Assistant.AllowWrites)
	assert.True(t, cfg.JWT.Enabled())
	assert.Equal(t, "dc", cfg.Events.Source)
}

func TestLoad_RechazaValoresInvalidos(t *testing.T) {
	cases := map[string]string{
		"AI_PROVIDER":   "ollama",
		"EVENTS_SOURCE": "warehouse",
		"SOH_API_URL":   "not a url",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss", DBName: "rw", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss@db:5432/rw?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
