package repository

import (
	"context"

	"github.com/jhoicas/retail-wizard/internal/domain/entity"
)

// StockRepository define el puerto para consultar/actualizar SOH por producto+ubicación.
// Usado dentro de transacciones para garantizar consistencia.
type StockRepository interface {
	Get(ctx context.Context, productID, locationID int64) (*entity.Stock, error)
	Upsert(ctx context.Context, stock *entity.Stock) error
	// EnsureRow crea la fila con SOH 0 si no existe, para que GetForUpdate tenga algo que bloquear.
	EnsureRow(ctx context.Context, productID, locationID int64) error
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, productID, locationID int64) (*entity.Stock, error)
}
