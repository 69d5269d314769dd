package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/retail-wizard/internal/application/dto"
	"github.com/jhoicas/retail-wizard/internal/domain"
	"github.com/jhoicas/retail-wizard/internal/domain/entity"
	"github.com/jhoicas/retail-wizard/internal/domain/repository"
)

// UseCase consulta y fija el stock on hand de un producto en una ubicación.
type UseCase struct {
	stockRepo repository.StockRepository
	movRepo   repository.InventoryMovementRepository
	txRunner  TxRunner
	now       func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(stockRepo repository.StockRepository, movRepo repository.InventoryMovementRepository, txRunner TxRunner) *UseCase {
	return &UseCase{stockRepo: stockRepo, movRepo: movRepo, txRunner: txRunner, now: time.Now}
}

// GetStock devuelve el SOH actual (cero si el par producto/ubicación no existe).
func (uc *UseCase) GetStock(ctx context.Context, productID, locationID int64) (*dto.StockDTO, error) {
	if productID <= 0 || locationID < 0 {
		return nil, domain.ErrInvalidInput
	}
	s, err := uc.stockRepo.Get(ctx, productID, locationID)
	if err != nil {
		return nil, err
	}
	out := &dto.StockDTO{ProductID: s.ProductID, LocationID: s.LocationID, SOH: s.Quantity}
	if !s.UpdatedAt.IsZero() {
		updated := s.UpdatedAt
		out.UpdatedAt = &updated
	}
	return out, nil
}

// AdjustStock fija el SOH absoluto dentro de una transacción: bloquea la fila
// (SELECT FOR UPDATE), guarda el nuevo valor y registra el delta como movimiento.
func (uc *UseCase) AdjustStock(ctx context.Context, in dto.AdjustStockRequest, userID string) (*dto.AdjustStockResult, error) {
	if in.ProductID == nil || in.Location == nil || in.SOH == nil || *in.ProductID <= 0 || *in.Location < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.SOH.IsNegative() {
		return nil, domain.ErrNegativeStock
	}
	productID, locationID, target := *in.ProductID, *in.Location, *in.SOH

	now := uc.now()
	txID := uuid.New().String()
	var previous decimal.Decimal

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.InventoryMovementRepository,
		stockRepo repository.StockRepository,
	) error {
		if err := stockRepo.EnsureRow(ctx, productID, locationID); err != nil {
			return err
		}
		current, err := stockRepo.GetForUpdate(ctx, productID, locationID)
		if err != nil {
			return err
		}
		previous = current.Quantity
		delta := target.Sub(previous)

		current.Quantity = target
		current.UpdatedAt = now
		if err := stockRepo.Upsert(ctx, current); err != nil {
			return err
		}
		return movRepo.Create(ctx, &entity.InventoryMovement{
			TransactionID: txID,
			ProductID:     productID,
			LocationID:    locationID,
			Type:          entity.MovementTypeForDelta(delta),
			Quantity:      delta,
			PreviousSOH:   previous,
			NewSOH:        target,
			Date:          now,
			CreatedBy:     userID,
		})
	})
	if err != nil {
		return nil, err
	}

	return &dto.AdjustStockResult{
		Status:        "ok",
		ProductID:     productID,
		Location:      locationID,
		PreviousSOH:   previous,
		SOH:           target,
		TransactionID: txID,
	}, nil
}

// maxMovements tope de la historia devuelta por ListMovements.
const maxMovements = 500

// ListMovements devuelve los últimos ajustes de un producto, más reciente primero.
func (uc *UseCase) ListMovements(ctx context.Context, productID int64, limit int) ([]dto.MovementDTO, error) {
	if productID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 || limit > maxMovements {
		limit = 50
	}
	list, err := uc.movRepo.ListByProduct(ctx, productID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementDTO, 0, len(list))
	for _, m := range list {
		out = append(out, dto.MovementDTO{
			ID:            m.ID,
			TransactionID: m.TransactionID,
			ProductID:     m.ProductID,
			LocationID:    m.LocationID,
			Type:          m.Type,
			Quantity:      m.Quantity,
			PreviousSOH:   m.PreviousSOH,
			NewSOH:        m.NewSOH,
			Date:          m.Date,
			CreatedBy:     m.CreatedBy,
		})
	}
	return out, nil
}
