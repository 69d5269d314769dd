package ports

import (
	"context"
	"encoding/json"
)

// StockService puerto hacia el servicio de stock on hand.
// Las respuestas se devuelven sin modificar; cualquier fallo es un error, nunca un pánico.
type StockService interface {
	GetStock(ctx context.Context, sku, locationID int64) (json.RawMessage, error)
	SetStock(ctx context.Context, sku, soh, locationID int64) (json.RawMessage, error)
}

// EventQuery filtros de consulta de eventos. LocationType y LocationID son opcionales.
type EventQuery struct {
	SKU          int64
	LocationType string
	LocationID   *int64
}

// EventsService puerto hacia un servicio de eventos (producto o CD).
type EventsService interface {
	FetchEvents(ctx context.Context, q EventQuery) (json.RawMessage, error)
}
