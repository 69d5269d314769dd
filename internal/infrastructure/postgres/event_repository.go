package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/retail-wizard/internal/domain"
	"github.com/jhoicas/retail-wizard/internal/domain/entity"
	"github.com/jhoicas/retail-wizard/internal/domain/repository"
)

var _ repository.EventRepository = (*EventRepo)(nil)

// Tablas de eventos por fuente.
const (
	TableProductEvents = "product_events"
	TableDCEvents      = "dc_events"
)

// EventTableFor devuelve la tabla de la fuente ("product" o "dc").
func EventTableFor(source string) (string, error) {
	switch source {
	case "product":
		return TableProductEvents, nil
	case "dc":
		return TableDCEvents, nil
	}
	return "", fmt.Errorf("%w: fuente de eventos %q", domain.ErrInvalidInput, source)
}

// EventRepo implementación de EventRepository sobre una de las tablas de eventos.
type EventRepo struct {
	q     Querier
	table string
}

// NewEventRepository construye el adaptador; table debe venir de EventTableFor.
func NewEventRepository(q Querier, table string) *EventRepo {
	return &EventRepo{q: q, table: table}
}

// Create persiste un evento.
func (r *EventRepo) Create(ctx context.Context, e *entity.Event) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	query := fmt.Sprintf(`
		INSERT INTO %s (id, product_id, location_id, loc_type, event_type, quantity, reference, occurred_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`, r.table)
	_, err := r.q.Exec(ctx, query,
		e.ID, e.ProductID, e.LocationID, e.LocType, e.EventType,
		e.Quantity, e.Reference, e.OccurredAt, e.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

// List devuelve los eventos del producto, más reciente primero, aplicando solo los filtros presentes.
func (r *EventRepo) List(ctx context.Context, f repository.EventFilter) ([]*entity.Event, error) {
	query := fmt.Sprintf(`
		SELECT id, product_id, location_id, loc_type, event_type, quantity, reference, occurred_at, created_at
		FROM %s WHERE product_id = $1`, r.table)
	args := []any{f.ProductID}
	pos := 2
	if f.LocType != "" {
		query += fmt.Sprintf(" AND loc_type = $%d", pos)
		args = append(args, f.LocType)
		pos++
	}
	if f.LocationID != nil {
		query += fmt.Sprintf(" AND location_id = $%d", pos)
		args = append(args, *f.LocationID)
		pos++
	}
	limit := f.Limit
	if limit <= 0 {
		limit = 200
	}
	query += fmt.Sprintf(" ORDER BY occurred_at DESC LIMIT $%d", pos)
	args = append(args, limit)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Event, 0)
	for rows.Next() {
		var e entity.Event
		if err := rows.Scan(&e.ID, &e.ProductID, &e.LocationID, &e.LocType, &e.EventType,
			&e.Quantity, &e.Reference, &e.OccurredAt, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
