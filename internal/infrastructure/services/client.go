// Package services contiene los adaptadores HTTP hacia los servicios REST de
// stock on hand y de eventos (producto y centro de distribución).
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jhoicas/retail-wizard/internal/domain"
	"github.com/jhoicas/retail-wizard/internal/infrastructure/metrics"
)

// Nombres de servicio usados en errores y métricas.
const (
	ServiceSOH           = "soh"
	ServiceProductEvents = "product_events"
	ServiceDCEvents      = "dc_events"
)

const maxBodyBytes = 4 * 1024 * 1024

// UpstreamError fallo de un servicio externo: status no 2xx, error de transporte o JSON inválido.
type UpstreamError struct {
	Service    string
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("%s service returned HTTP %d: %s", e.Service, e.StatusCode, e.Body)
	case e.Err != nil:
		return fmt.Sprintf("%s service unavailable: %v", e.Service, e.Err)
	default:
		return fmt.Sprintf("%s service failed", e.Service)
	}
}

func (e *UpstreamError) Unwrap() []error {
	if e.Err != nil {
		return []error{domain.ErrUpstream, e.Err}
	}
	return []error{domain.ErrUpstream}
}

// restClient base común: URL base, cliente HTTP y nombre del servicio.
type restClient struct {
	service    string
	baseURL    string
	httpClient *http.Client
}

func newRestClient(service, baseURL string, timeout time.Duration) restClient {
	return restClient{
		service:    service,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c restClient) get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &UpstreamError{Service: c.service, Err: err}
	}
	return c.do(req)
}

func (c restClient) postJSON(ctx context.Context, path string, payload any) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("serializar request %s: %w", c.service, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, &UpstreamError{Service: c.service, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

// do ejecuta la request y devuelve el cuerpo sin modificar si es 2xx y JSON válido.
func (c restClient) do(req *http.Request) (json.RawMessage, error) {
	req.Header.Set("Accept", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveUpstream(c.service, metrics.OutcomeTransport)
		return nil, &UpstreamError{Service: c.service, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		metrics.ObserveUpstream(c.service, metrics.OutcomeTransport)
		return nil, &UpstreamError{Service: c.service, Err: fmt.Errorf("leer respuesta: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.ObserveUpstream(c.service, metrics.OutcomeHTTPError)
		return nil, &UpstreamError{Service: c.service, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && !json.Valid(trimmed) {
		metrics.ObserveUpstream(c.service, metrics.OutcomeBadJSON)
		return nil, &UpstreamError{Service: c.service, Err: fmt.Errorf("respuesta no es JSON válido")}
	}
	metrics.ObserveUpstream(c.service, metrics.OutcomeOK)
	return json.RawMessage(trimmed), nil
}
