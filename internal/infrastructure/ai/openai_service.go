package ai

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/jhoicas/retail-wizard/internal/application/ports"
	"github.com/jhoicas/retail-wizard/pkg/logger"
)

var _ ports.LLMService = (*OpenAIService)(nil)

// OpenAIService adaptador de chat completions sobre langchaingo.
type OpenAIService struct {
	llm         llms.Model
	temperature float64
}

// NewOpenAIService construye el cliente. Sin apiKey devuelve un servicio que
// responde ports.ErrLLMNotConfigured en cada llamada, para no bloquear el arranque.
func NewOpenAIService(apiKey, model, baseURL string, temperature float64, timeout time.Duration, log *logger.Logger) (*OpenAIService, error) {
	if apiKey == "" {
		return &OpenAIService{temperature: temperature}, nil
	}
	opts := []openai.Option{
		openai.WithToken(apiKey),
		openai.WithModel(model),
		openai.WithHTTPClient(&http.Client{Timeout: timeout}),
		openai.WithCallback(NewLogCallbackHandler(log)),
	}
	if baseURL != "" {
		opts = append(opts, openai.WithBaseURL(baseURL))
	}
	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("AI: inicializar cliente OpenAI: %w", err)
	}
	return &OpenAIService{llm: llm, temperature: temperature}, nil
}

// Generate envía los mensajes con sus roles y devuelve el contenido de la primera opción.
func (s *OpenAIService) Generate(ctx context.Context, messages []ports.Message) (string, error) {
	if s.llm == nil {
		return "", fmt.Errorf("%w: OPENAI_API_KEY", ports.ErrLLMNotConfigured)
	}

	content := make([]llms.MessageContent, 0, len(messages))
	for _, m := range messages {
		role := llms.ChatMessageTypeHuman
		if m.Role == ports.RoleSystem {
			role = llms.ChatMessageTypeSystem
		}
		content = append(content, llms.TextParts(role, m.Content))
	}

	resp, err := s.llm.GenerateContent(ctx, content, llms.WithTemperature(s.temperature))
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: OpenAI: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("AI: OpenAI devolvió respuesta vacía")
	}
	return resp.Choices[0].Content, nil
}
