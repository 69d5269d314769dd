package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockDTO respuesta de GET /get_stock.
type StockDTO struct {
	ProductID  int64           `json:"product_id"`
	LocationID int64           `json:"location_id"`
	SOH        decimal.Decimal `json:"soh"`
	UpdatedAt  *time.Time      `json:"updated_at,omitempty"`
}

// AdjustStockRequest cuerpo de POST /adjust_stock (SOH absoluto).
type AdjustStockRequest struct {
	ProductID *int64           `json:"product_id" validate:"required,gt=0"`
	SOH       *decimal.Decimal `json:"soh" validate:"required"`
	Location  *int64           `json:"location" validate:"required,gte=0"`
}

// AdjustStockResult respuesta de POST /adjust_stock.
type AdjustStockResult struct {
	Status        string          `json:"status"`
	ProductID     int64           `json:"product_id"`
	Location      int64           `json:"location"`
	PreviousSOH   decimal.Decimal `json:"previous_soh"`
	SOH           decimal.Decimal `json:"soh"`
	TransactionID string          `json:"transaction_id"`
}

// MovementDTO ajuste registrado, expuesto por GET /movements.
type MovementDTO struct {
	ID            string          `json:"id"`
	TransactionID string          `json:"transaction_id"`
	ProductID     int64           `json:"product_id"`
	LocationID    int64           `json:"location_id"`
	Type          string          `json:"type"`
	Quantity      decimal.Decimal `json:"quantity"`
	PreviousSOH   decimal.Decimal `json:"previous_soh"`
	NewSOH        decimal.Decimal `json:"new_soh"`
	Date          time.Time       `json:"date"`
	CreatedBy     string          `json:"created_by,omitempty"`
}
