package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/retail-wizard/internal/application/dto"
)

// seedFile contenido del archivo de seed.
type seedFile struct {
	Stock         []dto.AdjustStockRequest `json:"stock"`
	ProductEvents []dto.CreateEventRequest `json:"product_events"`
	DCEvents      []dto.CreateEventRequest `json:"dc_events"`
}

// decodeSeed lee el JSON convirtiendo a UTF-8 si el archivo viene en Latin-1 o Windows-1252.
func decodeSeed(r io.Reader, charset string) (*seedFile, error) {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "", "utf-8", "utf8":
	case "iso-8859-1", "iso8859-1", "latin1":
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	case "windows-1252", "cp1252":
		r = transform.NewReader(r, charmap.Windows1252.NewDecoder())
	default:
		return nil, fmt.Errorf("charset no soportado: %s", charset)
	}

	var out seedFile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("decodificar JSON: %w", err)
	}
	// Sin occurred_at cada corrida usaría la hora actual y la clave natural no detectaría duplicados.
	for name, list := range map[string][]dto.CreateEventRequest{"product_events": out.ProductEvents, "dc_events": out.DCEvents} {
		for i, ev := range list {
			if ev.OccurredAt == nil {
				return nil, fmt.Errorf("%s[%d]: occurred_at es obligatorio", name, i)
			}
		}
	}
	return &out, nil
}
