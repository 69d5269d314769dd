// Package assistant contiene el modelo de dominio del asistente de retail:
// el resultado de clasificación que devuelve el modelo de lenguaje, su parser
// tolerante y la resolución de entidades (SKU, ubicación, cantidad).
package assistant

import (
	"strings"
)

// Intent etiqueta canónica de la intención del usuario.
type Intent string

const (
	IntentGetStock            Intent = "get_stock"
	IntentSetStock            Intent = "set_stock"
	IntentCompareEvents       Intent = "compare_events"
	IntentAnalyzeLocation     Intent = "analyze_location"
	IntentAnalyzeLocationType Intent = "analyze_location_type"
	IntentUnknown             Intent = "unknown"
)

// intentAnalyzeEvent variante sin dividir; se resuelve según los campos presentes.
const intentAnalyzeEvent = "analyze_event"

// LocationType distingue tienda (S) de bodega/centro de distribución (W).
type LocationType string

const (
	LocationStore     LocationType = "S"
	LocationWarehouse LocationType = "W"
)

// Valid indica si el tag es uno de los dos reconocidos.
func (t LocationType) Valid() bool {
	return t == LocationStore || t == LocationWarehouse
}

// IntentResult es la clasificación estructurada de una consulta.
// Intent siempre tiene valor; el resto de campos son nil cuando el modelo no los extrajo.
type IntentResult struct {
	Intent       Intent        `json:"intent"`
	StoreNumber  *string       `json:"store_number"`
	DCNumber     *string       `json:"dc_number"`
	SKUNumber    *string       `json:"sku_number"`
	SOH          *int64        `json:"soh"`
	LocationType *LocationType `json:"location_type"`
	Reasoning    string        `json:"reasoning,omitempty"`
}

// Unknown construye el resultado por defecto con una nota de diagnóstico.
func Unknown(note string) IntentResult {
	return IntentResult{Intent: IntentUnknown, Reasoning: note}
}

// DefaultAliases mapea las etiquetas que usan las distintas variantes del prompt
// a la etiqueta canónica. Las claves se comparan normalizadas (ver normalizeTag).
var DefaultAliases = map[string]Intent{
	"get_stock":                           IntentGetStock,
	"read_stock":                          IntentGetStock,
	"set_stock":                           IntentSetStock,
	"write_stock":                         IntentSetStock,
	"adjust_stock":                        IntentSetStock,
	"compare_events":                      IntentCompareEvents,
	"compare":                             IntentCompareEvents,
	"analyze_location":                    IntentAnalyzeLocation,
	"analyze_location_events":             IntentAnalyzeLocation,
	"analyze_event_for_one_location":      IntentAnalyzeLocation,
	"analyze_location_type":               IntentAnalyzeLocationType,
	"analyze_location_type_events":        IntentAnalyzeLocationType,
	"analyze_event_for_one_location_type": IntentAnalyzeLocationType,
}

// NormalizeIntent traduce una etiqueta cruda a la canónica usando aliases.
// "analyze_event" sin calificar se resuelve a analyze_location si hay número de
// tienda o CD, y a analyze_location_type en caso contrario.
func NormalizeIntent(raw string, aliases map[string]Intent, hasLocationNumber bool) Intent {
	tag := normalizeTag(raw)
	if tag == "" {
		return IntentUnknown
	}
	if tag == intentAnalyzeEvent {
		if hasLocationNumber {
			return IntentAnalyzeLocation
		}
		return IntentAnalyzeLocationType
	}
	if in, ok := aliases[tag]; ok {
		return in
	}
	if in, ok := DefaultAliases[tag]; ok {
		return in
	}
	return IntentUnknown
}

// normalizeTag pasa a minúsculas y unifica separadores: "Analyze-Event for one location" -> "analyze_event_for_one_location".
func normalizeTag(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.NewReplacer("-", "_", " ", "_").Replace(s)
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	return strings.Trim(s, "_")
}

// NormalizeAliases devuelve una copia con las claves normalizadas.
func NormalizeAliases(in map[string]string) map[string]Intent {
	out := make(map[string]Intent, len(in))
	for k, v := range in {
		target := NormalizeIntent(v, nil, true)
		if target == IntentUnknown {
			continue
		}
		out[normalizeTag(k)] = target
	}
	return out
}
