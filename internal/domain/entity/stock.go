package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock representa el stock on hand (SOH) de un producto en una ubicación (tienda o CD).
type Stock struct {
	ProductID  int64
	LocationID int64
	Quantity   decimal.Decimal
	UpdatedAt  time.Time
}
