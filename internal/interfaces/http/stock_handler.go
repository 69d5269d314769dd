package http

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-wizard/internal/application/dto"
)

type stockService interface {
	GetStock(ctx context.Context, productID, locationID int64) (*dto.StockDTO, error)
	AdjustStock(ctx context.Context, in dto.AdjustStockRequest, userID string) (*dto.AdjustStockResult, error)
	ListMovements(ctx context.Context, productID int64, limit int) ([]dto.MovementDTO, error)
}

// StockHandler endpoints del servicio de stock on hand.
type StockHandler struct {
	uc stockService
}

// NewStockHandler construye el handler.
func NewStockHandler(uc stockService) *StockHandler {
	return &StockHandler{uc: uc}
}

// GetStock godoc
// @Summary      Stock on hand de un producto en una ubicación
// @Tags         stock
// @Produce      json
// @Param        product_id   query  int  true  "SKU"
// @Param        location_id  query  int  true  "tienda o CD"
// @Success      200  {object}  dto.StockDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /get_stock [get]
func (h *StockHandler) GetStock(c *fiber.Ctx) error {
	productID, err1 := strconv.ParseInt(c.Query("product_id"), 10, 64)
	locationID, err2 := strconv.ParseInt(c.Query("location_id"), 10, 64)
	if err1 != nil || err2 != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y location_id deben ser enteros"})
	}
	out, err := h.uc.GetStock(c.UserContext(), productID, locationID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// AdjustStock godoc
// @Summary      Fijar el stock on hand (valor absoluto)
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "product_id, soh, location"
// @Success      200   {object}  dto.AdjustStockResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /adjust_stock [post]
func (h *StockHandler) AdjustStock(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if done, err := validateBody(c, &in); done {
		return err
	}
	userID := GetUserID(c)
	if userID == "" {
		userID = GetRequestID(c)
	}
	out, err := h.uc.AdjustStock(c.UserContext(), in, userID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// ListMovements godoc
// @Summary      Historial de ajustes de un producto
// @Tags         stock
// @Produce      json
// @Param        product_id  query  int  true   "SKU"
// @Param        limit       query  int  false  "máximo de registros (50 por defecto)"
// @Success      200  {array}   dto.MovementDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /movements [get]
func (h *StockHandler) ListMovements(c *fiber.Ctx) error {
	productID, err := strconv.ParseInt(c.Query("product_id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id debe ser entero"})
	}
	list, err := h.uc.ListMovements(c.UserContext(), productID, c.QueryInt("limit", 50))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(list)
}
