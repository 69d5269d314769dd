package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeIN         = "IN"
	MovementTypeOUT        = "OUT"
	MovementTypeADJUSTMENT = "ADJUSTMENT"
)

// InventoryMovement registro histórico de un cambio de SOH.
type InventoryMovement struct {
	ID            string
	TransactionID string
	ProductID     int64
	LocationID    int64
	Type          string
	Quantity      decimal.Decimal // delta aplicado: positivo suma, negativo resta
	PreviousSOH   decimal.Decimal
	NewSOH        decimal.Decimal
	Date          time.Time
	CreatedBy     string
}

// MovementTypeForDelta clasifica un ajuste absoluto según el signo del delta.
func MovementTypeForDelta(delta decimal.Decimal) string {
	switch {
	case delta.IsPositive():
		return MovementTypeIN
	case delta.IsNegative():
		return MovementTypeOUT
	default:
		return MovementTypeADJUSTMENT
	}
}
