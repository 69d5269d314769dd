package ai

import (
	"strings"

	"github.com/jhoicas/retail-wizard/internal/application/ports"
)

// maxResponseBytes límite de lectura de las respuestas REST de los proveedores.
const maxResponseBytes = 256 * 1024

// splitMessages separa la instrucción de sistema (concatenada) del contenido de usuario.
// Anthropic y Gemini reciben el sistema en un campo aparte.
func splitMessages(messages []ports.Message) (system string, user []string) {
	var sys []string
	for _, m := range messages {
		if m.Role == ports.RoleSystem {
			sys = append(sys, m.Content)
			continue
		}
		user = append(user, m.Content)
	}
	return strings.Join(sys, "\n\n"), user
}
