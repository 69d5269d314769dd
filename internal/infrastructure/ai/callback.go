package ai

import (
	"context"

	"github.com/tmc/langchaingo/callbacks"
	"github.com/tmc/langchaingo/llms"

	"github.com/jhoicas/retail-wizard/pkg/logger"
)

var _ callbacks.Handler = (*LogCallbackHandler)(nil)

// LogCallbackHandler registra en zerolog los eventos relevantes de langchaingo.
// El resto de callbacks los ignora SimpleHandler.
type LogCallbackHandler struct {
	callbacks.SimpleHandler
	log *logger.Logger
}

// NewLogCallbackHandler construye el handler con un sublogger "llm".
func NewLogCallbackHandler(log *logger.Logger) *LogCallbackHandler {
	return &LogCallbackHandler{log: log.Named("llm")}
}

func (h *LogCallbackHandler) HandleLLMGenerateContentStart(_ context.Context, ms []llms.MessageContent) {
	h.log.Debug().Int("messages", len(ms)).Msg("llamada al modelo")
}

func (h *LogCallbackHandler) HandleLLMGenerateContentEnd(_ context.Context, res *llms.ContentResponse) {
	if res == nil {
		return
	}
	h.log.Debug().Int("choices", len(res.Choices)).Msg("respuesta del modelo")
}

func (h *LogCallbackHandler) HandleLLMError(_ context.Context, err error) {
	h.log.Error().Err(err).Msg("error del modelo")
}
