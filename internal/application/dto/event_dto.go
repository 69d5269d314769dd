package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventDTO evento tal como lo expone GET /events.
type EventDTO struct {
	ID         string          `json:"id"`
	ProductID  int64           `json:"product_id"`
	LocationID int64           `json:"location_id"`
	LocType    string          `json:"loc_type"`
	EventType  string          `json:"event_type"`
	Quantity   decimal.Decimal `json:"quantity"`
	Reference  string          `json:"reference,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// CreateEventRequest cuerpo de POST /events.
type CreateEventRequest struct {
	ProductID  int64           `json:"product_id" validate:"required,gt=0"`
	LocationID int64           `json:"location_id" validate:"gte=0"`
	LocType    string          `json:"loc_type" validate:"required,oneof=S W"`
	EventType  string          `json:"event_type" validate:"required,max=64"`
	Quantity   decimal.Decimal `json:"quantity"`
	Reference  string          `json:"reference" validate:"max=128"`
	OccurredAt *time.Time      `json:"occurred_at"`
}

// ListEventsQuery parámetros de GET /events.
type ListEventsQuery struct {
	ProductID  int64  `query:"product_id" validate:"required,gt=0"`
	LocType    string `query:"loc_type" validate:"omitempty,oneof=S W"`
	LocationID *int64 `query:"location_id"`
}
