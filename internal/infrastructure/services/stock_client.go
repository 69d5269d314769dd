package services

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"github.com/jhoicas/retail-wizard/internal/application/ports"
)

var _ ports.StockService = (*StockClient)(nil)

// StockClient adaptador del servicio de stock on hand.
type StockClient struct {
	rest restClient
}

// NewStockClient construye el cliente con la URL base (SOH_API_URL).
func NewStockClient(baseURL string, timeout time.Duration) *StockClient {
	return &StockClient{rest: newRestClient(ServiceSOH, baseURL, timeout)}
}

// GetStock GET /get_stock?product_id=&location_id=
func (c *StockClient) GetStock(ctx context.Context, sku, locationID int64) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("product_id", strconv.FormatInt(sku, 10))
	q.Set("location_id", strconv.FormatInt(locationID, 10))
	return c.rest.get(ctx, "/get_stock", q)
}

type adjustStockPayload struct {
	ProductID int64 `json:"product_id"`
	SOH       int64 `json:"soh"`
	Location  int64 `json:"location"`
}

// SetStock POST /adjust_stock con el SOH absoluto.
func (c *StockClient) SetStock(ctx context.Context, sku, soh, locationID int64) (json.RawMessage, error) {
	return c.rest.postJSON(ctx, "/adjust_stock", adjustStockPayload{
		ProductID: sku,
		SOH:       soh,
		Location:  locationID,
	})
}
