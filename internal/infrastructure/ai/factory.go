package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/retail-wizard/internal/application/ports"
	"github.com/jhoicas/retail-wizard/pkg/config"
	"github.com/jhoicas/retail-wizard/pkg/logger"
)

// Proveedores soportados (AI_PROVIDER).
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

// DurationObserver recibe la duración de cada llamada al modelo.
type DurationObserver interface {
	ObserveLLM(provider string, d time.Duration)
}

// NewLLMService elige el adaptador según cfg.Provider y lo envuelve con la medición de latencia.
// obs puede ser nil.
func NewLLMService(cfg config.AIConfig, obs DurationObserver, log *logger.Logger) (ports.LLMService, error) {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second

	var svc ports.LLMService
	switch cfg.Provider {
	case ProviderOpenAI, "":
		oa, err := NewOpenAIService(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL, cfg.Temperature, timeout, log)
		if err != nil {
			return nil, err
		}
		svc = oa
	case ProviderAnthropic:
		svc = NewAnthropicService(cfg.AnthropicAPIKey, cfg.AnthropicModel, cfg.AnthropicURL, cfg.Temperature, timeout)
	case ProviderGemini:
		svc = NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiURL, cfg.Temperature, timeout)
	default:
		return nil, fmt.Errorf("AI: proveedor no soportado %q", cfg.Provider)
	}

	provider := cfg.Provider
	if provider == "" {
		provider = ProviderOpenAI
	}
	if obs == nil {
		return svc, nil
	}
	return &instrumented{next: svc, provider: provider, obs: obs}, nil
}

type instrumented struct {
	next     ports.LLMService
	provider string
	obs      DurationObserver
}

func (i *instrumented) Generate(ctx context.Context, messages []ports.Message) (string, error) {
	start := time.Now()
	out, err := i.next.Generate(ctx, messages)
	i.obs.ObserveLLM(i.provider, time.Since(start))
	return out, err
}
