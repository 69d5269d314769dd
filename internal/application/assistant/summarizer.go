package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jhoicas/retail-wizard/internal/application/ports"
)

// LabeledPayload documento JSON con la etiqueta con que se presenta al modelo.
type LabeledPayload struct {
	Label string
	Data  json.RawMessage
}

// Summarizer delega en el modelo la redacción de un resumen de uno o dos payloads.
// La respuesta no se valida: se muestra tal cual.
type Summarizer struct {
	llm ports.LLMService
}

// NewSummarizer construye el summarizer sobre el mismo puerto del clasificador.
func NewSummarizer(llm ports.LLMService) *Summarizer {
	return &Summarizer{llm: llm}
}

// Summarize envía la instrucción como mensaje de sistema y los payloads etiquetados como mensaje de usuario.
func (s *Summarizer) Summarize(ctx context.Context, instruction string, payloads ...LabeledPayload) (string, error) {
	var b strings.Builder
	for i, p := range payloads {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s: %s", p.Label, bytes.TrimSpace(p.Data))
	}
	out, err := s.llm.Generate(ctx, []ports.Message{
		{Role: ports.RoleSystem, Content: instruction},
		{Role: ports.RoleUser, Content: b.String()},
	})
	if err != nil {
		return "", fmt.Errorf("resumen IA: %w", err)
	}
	return strings.TrimSpace(out), nil
}
