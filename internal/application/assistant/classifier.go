package assistant

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/jhoicas/retail-wizard/internal/application/ports"
	domassistant "github.com/jhoicas/retail-wizard/internal/domain/assistant"
	"github.com/jhoicas/retail-wizard/pkg/logger"
)

// Classifier envía la consulta al modelo con una instrucción fija y decodifica la respuesta.
type Classifier struct {
	llm    ports.LLMService
	prompt string
	parser *domassistant.Parser
	log    *logger.Logger
}

// NewClassifier construye el clasificador con el prompt y los aliases del perfil.
func NewClassifier(llm ports.LLMService, prompts PromptProfile, log *logger.Logger) *Classifier {
	return &Classifier{
		llm:    llm,
		prompt: prompts.Classifier,
		parser: domassistant.NewParser(domassistant.NormalizeAliases(prompts.IntentAliases)),
		log:    log,
	}
}

// Classify siempre devuelve un resultado: si el modelo falla o su respuesta no se
// puede interpretar, el intent es unknown y Reasoning explica el motivo.
func (c *Classifier) Classify(ctx context.Context, query string) domassistant.IntentResult {
	reply, err := c.llm.Generate(ctx, []ports.Message{
		{Role: ports.RoleSystem, Content: c.prompt},
		{Role: ports.RoleUser, Content: query},
	})
	if err != nil {
		c.log.Warn().Err(err).Msg("clasificador: llamada al modelo fallida")
		return domassistant.Unknown(fmt.Sprintf("Error calling language model: %v", err))
	}

	result, err := c.parser.Parse(reply)
	if err != nil {
		c.log.Warn().Err(err).Str("reply", truncate(reply, 300)).Msg("clasificador: respuesta no interpretable")
	}
	return result
}

// truncate corta a n runas para no partir caracteres multibyte en los logs.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "…"
}
