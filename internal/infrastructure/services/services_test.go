package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/retail-wizard/internal/application/ports"
	"github.com/jhoicas/retail-wizard/internal/domain"
	"github.com/jhoicas/retail-wizard/internal/infrastructure/services"
)

func TestStockClient_GetStock_DevuelveCuerpoSinModificar(t *testing.T) {
	body := `{"product_id":30000913,"location_id":3,"soh":"42"}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/get_stock", r.URL.Path)
		assert.Equal(t, "30000913", r.URL.Query().Get("product_id"))
		assert.Equal(t, "3", r.URL.Query().Get("location_id"))
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	c := services.NewStockClient(srv.URL, 5*time.Second)
	out, err := c.GetStock(context.Background(), 30000913, 3)
	require.NoError(t, err)
	assert.Equal(t, body, string(out))
}

func TestStockClient_SetStock_EnviaPayload(t *testing.T) {
	var got map[string]int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/adjust_stock", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	c := services.NewStockClient(srv.URL+"/", 5*time.Second)
	out, err := c.SetStock(context.Background(), 30000913, 25, 1234)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok"}`, string(out))
	assert.Equal(t, map[string]int64{"product_id": 30000913, "soh": 25, "location": 1234}, got)
}

func TestStockClient_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("maintenance"))
	}))
	defer srv.Close()

	c := services.NewStockClient(srv.URL, 5*time.Second)
	_, err := c.GetStock(context.Background(), 1, 2)

	var upErr *services.UpstreamError
	require.True(t, errors.As(err, &upErr))
	assert.Equal(t, services.ServiceSOH, upErr.Service)
	assert.Equal(t, http.StatusServiceUnavailable, upErr.StatusCode)
	assert.Equal(t, "maintenance", upErr.Body)
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestStockClient_JSONInvalido(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>oops</html>"))
	}))
	defer srv.Close()

	c := services.NewStockClient(srv.URL, 5*time.Second)
	_, err := c.GetStock(context.Background(), 1, 2)
	var upErr *services.UpstreamError
	require.True(t, errors.As(err, &upErr))
	assert.Zero(t, upErr.StatusCode)
	assert.Error(t, upErr.Err)
}

func TestStockClient_ErrorDeTransporte(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := services.NewStockClient(url, time.Second)
	_, err := c.GetStock(context.Background(), 1, 2)
	var upErr *services.UpstreamError
	require.True(t, errors.As(err, &upErr))
	assert.Zero(t, upErr.StatusCode)
	assert.NotNil(t, upErr.Err)
}

func TestEventsClient_OmiteFiltrosAusentes(t *testing.T) {
	var queries []map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/events", r.URL.Path)
		queries = append(queries, r.URL.Query())
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := services.NewProductEventsClient(srv.URL, 5*time.Second)
	loc := int64(1234)

	out, err := c.FetchEvents(context.Background(), ports.EventQuery{SKU: 30000913})
	require.NoError(t, err)
	assert.Equal(t, "[]", string(out))

	_, err = c.FetchEvents(context.Background(), ports.EventQuery{SKU: 30000913, LocationType: "S", LocationID: &loc})
	require.NoError(t, err)

	require.Len(t, queries, 2)
	assert.Equal(t, map[string][]string{"product_id": {"30000913"}}, queries[0])
	assert.Equal(t, map[string][]string{
		"product_id":  {"30000913"},
		"loc_type":    {"S"},
		"location_id": {"1234"},
	}, queries[1])
}

func TestEventsClient_DC_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := services.NewDCEventsClient(srv.URL, 5*time.Second)
	_, err := c.FetchEvents(context.Background(), ports.EventQuery{SKU: 1})
	var upErr *services.UpstreamError
	require.True(t, errors.As(err, &upErr))
	assert.Equal(t, services.ServiceDCEvents, upErr.Service)
	assert.Equal(t, http.StatusNotFound, upErr.StatusCode)
	assert.Contains(t, upErr.Error(), "HTTP 404")
}
