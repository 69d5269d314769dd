package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/retail-wizard/internal/domain/entity"
	"github.com/jhoicas/retail-wizard/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el SOH actual; un par sin fila equivale a stock cero.
func (r *StockRepo) Get(ctx context.Context, productID, locationID int64) (*entity.Stock, error) {
	return r.get(ctx, `
		SELECT product_id, location_id, quantity, updated_at
		FROM stock WHERE product_id = $1 AND location_id = $2`, productID, locationID)
}

// EnsureRow inserta la fila en cero si falta. Dos ajustes concurrentes sobre un par
// nuevo quedan así serializados por el bloqueo de GetForUpdate.
func (r *StockRepo) EnsureRow(ctx context.Context, productID, locationID int64) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO stock (product_id, location_id, quantity, updated_at)
		VALUES ($1, $2, 0, now())
		ON CONFLICT (product_id, location_id) DO NOTHING`, productID, locationID)
	if err != nil {
		return fmt.Errorf("ensure stock row: %w", err)
	}
	return nil
}

// GetForUpdate igual que Get pero bloquea la fila (SELECT FOR UPDATE).
func (r *StockRepo) GetForUpdate(ctx context.Context, productID, locationID int64) (*entity.Stock, error) {
	return r.get(ctx, `
		SELECT product_id, location_id, quantity, updated_at
		FROM stock WHERE product_id = $1 AND location_id = $2
		FOR UPDATE`, productID, locationID)
}

func (r *StockRepo) get(ctx context.Context, query string, productID, locationID int64) (*entity.Stock, error) {
	var s entity.Stock
	err := r.q.QueryRow(ctx, query, productID, locationID).Scan(
		&s.ProductID, &s.LocationID, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{ProductID: productID, LocationID: locationID, Quantity: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza la cantidad (por producto y ubicación).
func (r *StockRepo) Upsert(ctx context.Context, stock *entity.Stock) error {
	query := `
		INSERT INTO stock (product_id, location_id, quantity, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (product_id, location_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(ctx, query, stock.ProductID, stock.LocationID, stock.Quantity, stock.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}
