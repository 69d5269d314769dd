package http

import (
	"context"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-wizard/internal/application/dto"
)

type eventsService interface {
	List(ctx context.Context, q dto.ListEventsQuery) ([]dto.EventDTO, error)
	Create(ctx context.Context, in dto.CreateEventRequest) (*dto.EventDTO, error)
}

// EventsHandler endpoints de un servicio de eventos (producto o CD).
type EventsHandler struct {
	uc eventsService
}

// NewEventsHandler construye el handler.
func NewEventsHandler(uc eventsService) *EventsHandler {
	return &EventsHandler{uc: uc}
}

// List godoc
// @Summary      Eventos de un producto, más recientes primero
// @Tags         events
// @Produce      json
// @Param        product_id   query  int     true   "SKU"
// @Param        loc_type     query  string  false  "S (tienda) o W (CD)"
// @Param        location_id  query  int     false  "ubicación"
// @Success      200  {array}   dto.EventDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /events [get]
func (h *EventsHandler) List(c *fiber.Ctx) error {
	productID, err := strconv.ParseInt(c.Query("product_id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id debe ser entero"})
	}
	q := dto.ListEventsQuery{
		ProductID: productID,
		LocType:   strings.ToUpper(strings.TrimSpace(c.Query("loc_type"))),
	}
	if raw := c.Query("location_id"); raw != "" {
		loc, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "location_id debe ser entero"})
		}
		q.LocationID = &loc
	}
	if done, err := validateBody(c, &q); done {
		return err
	}
	list, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Registrar un evento
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEventRequest  true  "evento"
// @Success      201   {object}  dto.EventDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /events [post]
func (h *EventsHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEventRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.LocType = strings.ToUpper(strings.TrimSpace(in.LocType))
	if done, err := validateBody(c, &in); done {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
