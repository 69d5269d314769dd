package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de ubicación de un evento.
const (
	LocTypeStore     = "S"
	LocTypeWarehouse = "W"
)

// Event evento de producto registrado por una tienda o un centro de distribución
// (recepción, venta, despacho, conteo...).
type Event struct {
	ID         string
	ProductID  int64
	LocationID int64
	LocType    string
	EventType  string
	Quantity   decimal.Decimal
	Reference  string
	OccurredAt time.Time
	CreatedAt  time.Time
}
