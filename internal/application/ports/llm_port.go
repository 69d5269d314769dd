package ports

import (
	"context"
	"errors"
)

// ErrLLMNotConfigured lo devuelven los adaptadores cuando falta la API key del proveedor.
var ErrLLMNotConfigured = errors.New("AI: proveedor sin API key configurada")

// Role rol de un mensaje enviado al modelo.
type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message mensaje con rol (instrucción de sistema o contenido del usuario).
type Message struct {
	Role    Role
	Content string
}

// LLMService define el puerto de salida hacia el modelo de lenguaje.
// Cualquier adaptador (OpenAI, Anthropic, Gemini, fake de tests) implementa esta interfaz;
// se usa tanto para clasificar (respuesta con forma JSON) como para resumir (texto libre).
type LLMService interface {
	// Generate envía los mensajes en orden y devuelve el texto generado.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	Generate(ctx context.Context, messages []Message) (string, error)
}
