package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/retail-wizard/internal/domain/entity"
	"github.com/jhoicas/retail-wizard/internal/domain/repository"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

// InventoryMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
type InventoryMovementRepo struct {
	q Querier
}

// NewInventoryMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryMovementRepository(q Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

// Create persiste un movimiento de inventario.
func (r *InventoryMovementRepo) Create(ctx context.Context, m *entity.InventoryMovement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	var createdBy *string
	if m.CreatedBy != "" {
		createdBy = &m.CreatedBy
	}
	query := `
		INSERT INTO inventory_movements (id, transaction_id, product_id, location_id, type, quantity, previous_soh, new_soh, date, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.TransactionID, m.ProductID, m.LocationID, m.Type,
		m.Quantity, m.PreviousSOH, m.NewSOH, m.Date, createdBy,
	)
	if err != nil {
		return fmt.Errorf("create inventory movement: %w", err)
	}
	return nil
}

// ListByProduct lista los últimos movimientos de un producto (más reciente primero).
func (r *InventoryMovementRepo) ListByProduct(ctx context.Context, productID int64, limit int) ([]*entity.InventoryMovement, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT id, transaction_id, product_id, location_id, type, quantity, previous_soh, new_soh, date, created_by
		FROM inventory_movements WHERE product_id = $1
		ORDER BY date DESC LIMIT $2`
	rows, err := r.q.Query(ctx, query, productID, limit)
	if err != nil {
		return nil, fmt.Errorf("list by product: %w", err)
	}
	defer rows.Close()

	var list []*entity.InventoryMovement
	for rows.Next() {
		var m entity.InventoryMovement
		var createdBy *string
		if err := rows.Scan(&m.ID, &m.TransactionID, &m.ProductID, &m.LocationID, &m.Type,
			&m.Quantity, &m.PreviousSOH, &m.NewSOH, &m.Date, &createdBy); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		if createdBy != nil {
			m.CreatedBy = *createdBy
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
