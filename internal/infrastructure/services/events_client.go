package services

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"github.com/jhoicas/retail-wizard/internal/application/ports"
)

var _ ports.EventsService = (*EventsClient)(nil)

// EventsClient adaptador de un servicio de eventos. Hay una instancia por fuente.
type EventsClient struct {
	rest restClient
}

// NewProductEventsClient cliente de PRODUCT_EVENTS_API_URL.
func NewProductEventsClient(baseURL string, timeout time.Duration) *EventsClient {
	return &EventsClient{rest: newRestClient(ServiceProductEvents, baseURL, timeout)}
}

// NewDCEventsClient cliente de DC_EVENTS_API_URL.
func NewDCEventsClient(baseURL string, timeout time.Duration) *EventsClient {
	return &EventsClient{rest: newRestClient(ServiceDCEvents, baseURL, timeout)}
}

// FetchEvents GET /events?product_id=[&loc_type=][&location_id=]. Los filtros ausentes no se envían.
func (c *EventsClient) FetchEvents(ctx context.Context, q ports.EventQuery) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("product_id", strconv.FormatInt(q.SKU, 10))
	if q.LocationType != "" {
		params.Set("loc_type", q.LocationType)
	}
	if q.LocationID != nil {
		params.Set("location_id", strconv.FormatInt(*q.LocationID, 10))
	}
	return c.rest.get(ctx, "/events", params)
}
