package http

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-wizard/internal/application/assistant"
	"github.com/jhoicas/retail-wizard/internal/application/dto"
	"github.com/jhoicas/retail-wizard/internal/application/ports"
	"github.com/jhoicas/retail-wizard/internal/domain"
)

//go:embed web/index.html
var indexHTML []byte

// asker contrato mínimo del caso de uso del asistente.
type asker interface {
	Ask(ctx context.Context, in assistant.AskInput) (*dto.AssistantReply, error)
}

// AssistantHandler expone el asistente: página web, consulta JSON y reporte PDF.
type AssistantHandler struct {
	uc     asker
	report ports.ReportGenerator
	policy WritePolicy
}

// NewAssistantHandler construye el handler.
func NewAssistantHandler(uc asker, report ports.ReportGenerator, policy WritePolicy) *AssistantHandler {
	return &AssistantHandler{uc: uc, report: report, policy: policy}
}

// Index sirve la página de consulta.
func (h *AssistantHandler) Index(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(indexHTML)
}

// Query godoc
// @Summary      Consultar al asistente
// @Description  Clasifica la consulta con el modelo de lenguaje, llama al servicio que corresponda
//               y devuelve datos crudos, un resumen o un aviso.
// @Tags         assistant
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AssistantQueryRequest  true  "query"
// @Success      200   {object}  dto.AssistantReply
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/assistant/query [post]
func (h *AssistantHandler) Query(c *fiber.Ctx) error {
	var req dto.AssistantQueryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo de la petición inválido"})
	}
	if done, err := validateBody(c, &req); done {
		return err
	}

	reply, err := h.uc.Ask(c.UserContext(), assistant.AskInput{
		Query:     req.Query,
		CanWrite:  h.policy.CanWrite(c),
		RequestID: GetRequestID(c),
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query is required"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(reply)
}

// Report godoc
// @Summary      Reporte PDF de una respuesta
// @Tags         assistant
// @Security     Bearer
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.AssistantReply  true  "respuesta devuelta por /api/assistant/query"
// @Success      200
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/assistant/report [post]
func (h *AssistantHandler) Report(c *fiber.Ctx) error {
	var reply dto.AssistantReply
	if err := c.BodyParser(&reply); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo de la petición inválido"})
	}
	if reply.Kind == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "kind es obligatorio"})
	}

	pdf, err := h.report.GenerateReplyPDF(c.UserContext(), &reply)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_ERROR", Message: err.Error()})
	}
	filename := fmt.Sprintf("retail-wizard-%s.pdf", time.Now().Format("20060102-150405"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
