package dto

import (
	"encoding/json"

	domassistant "github.com/jhoicas/retail-wizard/internal/domain/assistant"
)

// ReplyKind forma en que se presenta la respuesta.
type ReplyKind string

const (
	ReplyData    ReplyKind = "data"    // JSON crudo del servicio
	ReplySummary ReplyKind = "summary" // texto generado por el modelo
	ReplyWarning ReplyKind = "warning" // faltan campos o no hay datos; sin efectos
	ReplyError   ReplyKind = "error"   // fallo de un servicio externo o del modelo
)

// AssistantQueryRequest cuerpo de POST /api/assistant/query.
type AssistantQueryRequest struct {
	Query string `json:"query" validate:"required,max=2000"`
}

// AssistantReply resultado completo de una interacción.
type AssistantReply struct {
	Query          string                    `json:"query"`
	Classification domassistant.IntentResult `json:"classification"`
	Intent         domassistant.Intent       `json:"intent"`
	Reasoning      string                    `json:"reasoning,omitempty"`
	Kind           ReplyKind                 `json:"kind"`
	Title          string                    `json:"title,omitempty"`
	Data           json.RawMessage           `json:"data,omitempty"`
	Summary        string                    `json:"summary,omitempty"`
	Message        string                    `json:"message,omitempty"`
}
