package repository

import (
	"context"

	"github.com/jhoicas/retail-wizard/internal/domain/entity"
)

// EventFilter filtros opcionales de consulta; ProductID es obligatorio.
type EventFilter struct {
	ProductID  int64
	LocType    string
	LocationID *int64
	Limit      int
}

// EventRepository puerto de persistencia de eventos (una tabla por fuente).
type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	List(ctx context.Context, filter EventFilter) ([]*entity.Event, error)
}
