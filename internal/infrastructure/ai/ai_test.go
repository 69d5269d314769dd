package ai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-wizard/internal/application/ports"
	"github.com/jhoicas/retail-wizard/internal/infrastructure/ai"
	"github.com/jhoicas/retail-wizard/pkg/config"
	"github.com/jhoicas/retail-wizard/pkg/logger"
)

var msgs = []ports.Message{
	{Role: ports.RoleSystem, Content: "clasifica"},
	{Role: ports.RoleUser, Content: "How many of SKU 30000913 in store 1234?"},
}

func TestAnthropicService_Generate(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.NotEmpty(t, r.Header.Get("anthropic-version"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"{\"intent\":\"get_stock\"}"}]}`))
	}))
	defer srv.Close()

	svc := ai.NewAnthropicService("test-key", "claude-test", srv.URL, 0, 5*time.Second)
	out, err := svc.Generate(context.Background(), msgs)
	require.NoError(t, err)
	assert.Equal(t, `{"intent":"get_stock"}`, out)

	assert.Equal(t, "clasifica", got["system"])
	assert.Equal(t, "claude-test", got["model"])
	messages, ok := got["messages"].([]any)
	require.True(t, ok)
	assert.Len(t, messages, 1)
}

func TestAnthropicService_ErrorHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"type":"authentication_error","message":"invalid x-api-key"}}`))
	}))
	defer srv.Close()

	svc := ai.NewAnthropicService("bad", "claude-test", srv.URL, 0, 5*time.Second)
	_, err := svc.Generate(context.Background(), msgs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "authentication_error")
}

func TestAnthropicService_SinAPIKey(t *testing.T) {
	svc := ai.NewAnthropicService("", "claude-test", "", 0, time.Second)
	_, err := svc.Generate(context.Background(), msgs)
	assert.ErrorIs(t, err, ports.ErrLLMNotConfigured)
}

func TestGeminiService_Generate(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/models/gemini-test:generateContent"))
		assert.Equal(t, "g-key", r.URL.Query().Get("key"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Stock looks "},{"text":"healthy."}]}}]}`))
	}))
	defer srv.Close()

	svc := ai.NewGeminiService("g-key", "gemini-test", srv.URL, 0, 5*time.Second)
	out, err := svc.Generate(context.Background(), msgs)
	require.NoError(t, err)
	assert.Equal(t, "Stock looks healthy.", out)
	assert.Contains(t, got, "system_instruction")
}

func TestGeminiService_RespuestaVacia(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	svc := ai.NewGeminiService("g-key", "gemini-test", srv.URL, 0, 5*time.Second)
	_, err := svc.Generate(context.Background(), msgs)
	assert.Error(t, err)
}

func TestOpenAIService_Generate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"))
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "gpt-4o",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "{\"intent\":\"compare_events\"}"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
		}`))
	}))
	defer srv.Close()

	svc, err := ai.NewOpenAIService("sk-test", "gpt-4o", srv.URL, 0, 5*time.Second, logger.Nop())
	require.NoError(t, err)
	out, err := svc.Generate(context.Background(), msgs)
	require.NoError(t, err)
	assert.Equal(t, `{"intent":"compare_events"}`, out)
}

func TestOpenAIService_SinAPIKey(t *testing.T) {
	svc, err := ai.NewOpenAIService("", "gpt-4o", "", 0, time.Second, logger.Nop())
	require.NoError(t, err)
	_, err = svc.Generate(context.Background(), msgs)
	assert.ErrorIs(t, err, ports.ErrLLMNotConfigured)
}

type observer struct {
	provider string
	calls    int
}

func (o *observer) ObserveLLM(provider string, _ time.Duration) {
	o.provider = provider
	o.calls++
}

func TestNewLLMService_Proveedores(t *testing.T) {
	base := config.AIConfig{
		TimeoutSeconds: 5,
		OpenAIModel:    "gpt-4o",
		AnthropicModel: "claude-test",
		GeminiModel:    "gemini-test",
	}

	for _, p := range []string{ai.ProviderOpenAI, ai.ProviderAnthropic, ai.ProviderGemini} {
		t.Run(p, func(t *testing.T) {
			cfg := base
			cfg.Provider = p
			obs := &observer{}
			svc, err := ai.NewLLMService(cfg, obs, logger.Nop())
			require.NoError(t, err)

			_, err = svc.Generate(context.Background(), msgs)
			assert.ErrorIs(t, err, ports.ErrLLMNotConfigured)
			assert.Equal(t, p, obs.provider)
			assert.Equal(t, 1, obs.calls)
		})
	}

	cfg := base
	cfg.Provider = "mistral"
	_, err := ai.NewLLMService(cfg, nil, logger.Nop())
	assert.Error(t, err)
}
