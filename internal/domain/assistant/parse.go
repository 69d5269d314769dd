package assistant

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jhoicas/retail-wizard/internal/domain"
)

// jsonBlockRe captura desde el primer '{' hasta el último '}' (multilínea).
var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// intentSchema solo exige que la respuesta sea un objeto y que intent y reasoning
// sean texto. El resto de campos se convierten uno a uno: un tipo inesperado deja
// ese campo en nil sin descartar la clasificación.
const intentSchema = `{
  "type": "object",
  "properties": {
    "intent":        {"type": ["string", "null"]},
    "store_number":  {},
    "dc_number":     {},
    "sku_number":    {},
    "soh":           {},
    "location_type": {},
    "reasoning":     {"type": ["string", "null"]}
  }
}`

var compiledIntentSchema = mustSchema(intentSchema)

func mustSchema(s string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(s))
	if err != nil {
		panic(fmt.Sprintf("schema de intención inválido: %v", err))
	}
	return schema
}

// Parser decodifica la respuesta libre del modelo en un IntentResult.
type Parser struct {
	aliases map[string]Intent
}

// NewParser construye un parser con aliases adicionales (pueden ser nil).
func NewParser(aliases map[string]Intent) *Parser {
	return &Parser{aliases: aliases}
}

var defaultParser = NewParser(nil)

// ParseIntent usa el parser por defecto. Ver Parser.Parse.
func ParseIntent(reply string) (IntentResult, error) {
	return defaultParser.Parse(reply)
}

// Parse localiza el primer bloque {...} del texto, lo valida y lo convierte.
// Nunca entra en pánico: ante cualquier fallo devuelve Unknown con una nota
// y un error que envuelve domain.ErrUnparseableReply.
func (p *Parser) Parse(reply string) (IntentResult, error) {
	block := ExtractJSON(reply)
	if block == "" {
		return Unknown(fmt.Sprintf("Could not parse JSON from: %q", reply)),
			fmt.Errorf("%w: no hay bloque JSON", domain.ErrUnparseableReply)
	}
	fields, err := decodeObject([]byte(block))
	if err != nil {
		return Unknown(fmt.Sprintf("Could not parse JSON from: %q", block)),
			fmt.Errorf("%w: %v", domain.ErrUnparseableReply, err)
	}
	if err := validateSchema(block); err != nil {
		return Unknown(fmt.Sprintf("Unexpected field types in: %q (%v)", block, err)),
			fmt.Errorf("%w: %v", domain.ErrUnparseableReply, err)
	}
	return p.fromFields(fields), nil
}

// UnmarshalJSON aplica las mismas reglas tolerantes que el parser. null no modifica r.
func (r *IntentResult) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil
	}
	fields, err := decodeObject(b)
	if err != nil {
		return err
	}
	*r = defaultParser.fromFields(fields)
	return nil
}

// ExtractJSON devuelve el primer objeto {...} del texto, quitando cercas markdown.
func ExtractJSON(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx != -1 {
		after := text[idx+3:]
		if nl := strings.Index(after, "\n"); nl != -1 {
			after = after[nl+1:]
		}
		if end := strings.LastIndex(after, "```"); end != -1 {
			after = after[:end]
		}
		text = strings.TrimSpace(after)
	}
	return strings.TrimSpace(jsonBlockRe.FindString(text))
}

func decodeObject(b []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, errors.New("el JSON no es un objeto")
	}
	return fields, nil
}

func validateSchema(block string) error {
	res, err := compiledIntentSchema.Validate(gojsonschema.NewStringLoader(block))
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return errors.New(strings.Join(msgs, "; "))
}

func (p *Parser) fromFields(fields map[string]any) IntentResult {
	r := IntentResult{
		StoreNumber:  stringField(fields["store_number"]),
		DCNumber:     stringField(fields["dc_number"]),
		SKUNumber:    stringField(fields["sku_number"]),
		SOH:          intField(fields["soh"]),
		LocationType: locationTypeField(fields["location_type"]),
	}
	if s, ok := fields["reasoning"].(string); ok {
		r.Reasoning = s
	}
	raw, _ := fields["intent"].(string)
	r.Intent = NormalizeIntent(raw, p.aliases, r.StoreNumber != nil || r.DCNumber != nil)
	return r
}

func stringField(v any) *string {
	var s string
	switch t := v.(type) {
	case string:
		s = strings.TrimSpace(t)
	case json.Number:
		s = t.String()
	default:
		return nil
	}
	if s == "" {
		return nil
	}
	return &s
}

// 2^63 es exacto en float64; todo valor >= 2^63 o < -2^63 no cabe en int64.
const float64Int64Limit = 1 << 63

func intField(v any) *int64 {
	var raw string
	switch t := v.(type) {
	case json.Number:
		raw = t.String()
	case string:
		raw = strings.TrimSpace(t)
	default:
		return nil
	}
	if raw == "" {
		return nil
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return &n
	}
	// "40.0" o 4e1: enteros escritos como float, dentro del rango de int64.
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return nil
	}
	if f >= float64Int64Limit || f < -float64Int64Limit {
		return nil
	}
	n := int64(f)
	return &n
}

func locationTypeField(v any) *LocationType {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	var t LocationType
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "s", "store", "tienda":
		t = LocationStore
	case "w", "warehouse", "dc", "distribution center", "bodega":
		t = LocationWarehouse
	default:
		return nil
	}
	return &t
}
