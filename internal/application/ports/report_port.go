package ports

import (
	"context"

	"github.com/jhoicas/retail-wizard/internal/application/dto"
)

// ReportGenerator genera la versión PDF de una respuesta del asistente.
type ReportGenerator interface {
	GenerateReplyPDF(ctx context.Context, reply *dto.AssistantReply) ([]byte, error)
}
