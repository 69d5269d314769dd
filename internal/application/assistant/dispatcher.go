package assistant

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/jhoicas/retail-wizard/internal/application/dto"
	"github.com/jhoicas/retail-wizard/internal/application/ports"
	domassistant "github.com/jhoicas/retail-wizard/internal/domain/assistant"
	"github.com/jhoicas/retail-wizard/pkg/logger"
)

// Mensajes visibles para el usuario.
const (
	MsgMissingSKUOrLocation     = "Missing SKU or location."
	MsgMissingSKUSOHOrLocation  = "Missing SKU, SOH, or location."
	MsgMissingSKU               = "Missing SKU."
	MsgMissingSKUOrSpecificLoc  = "Missing SKU or specific location."
	MsgMissingSKUOrLocationType = "Missing SKU or location type."
	MsgEventsUnavailable        = "Could not retrieve events data."
	MsgNoEvents                 = "No events found."
	MsgNotUnderstood            = "Intent not understood. Please try again."
	MsgNegativeSOH              = "Stock on hand cannot be negative."
	MsgWriteForbidden           = "You are not allowed to change stock."
)

// Títulos de cada acción.
const (
	TitleStockOnHand          = "Stock on Hand"
	TitleStockUpdate          = "Stock Update Result"
	TitleComparison           = "Comparison Summary"
	TitleLocationAnalysis     = "Location Analysis"
	TitleLocationTypeAnalysis = "Location Type Analysis"
)

// Outcome resultado de despachar una intención.
type Outcome struct {
	Kind    dto.ReplyKind
	Title   string
	Data    json.RawMessage
	Summary string
	Message string
}

func warning(msg string) Outcome { return Outcome{Kind: dto.ReplyWarning, Message: msg} }

func failure(title string, err error) Outcome {
	return Outcome{Kind: dto.ReplyError, Title: title, Message: err.Error()}
}

// Dispatcher traduce (intención, parámetros) en exactamente una acción.
// Si falta un campo requerido no se llama a ningún servicio.
type Dispatcher struct {
	stock         ports.StockService
	productEvents ports.EventsService
	dcEvents      ports.EventsService
	summarizer    *Summarizer
	prompts       PromptProfile
	log           *logger.Logger
}

// NewDispatcher construye el dispatcher.
func NewDispatcher(
	stock ports.StockService,
	productEvents ports.EventsService,
	dcEvents ports.EventsService,
	summarizer *Summarizer,
	prompts PromptProfile,
	log *logger.Logger,
) *Dispatcher {
	return &Dispatcher{
		stock:         stock,
		productEvents: productEvents,
		dcEvents:      dcEvents,
		summarizer:    summarizer,
		prompts:       prompts,
		log:           log,
	}
}

// Dispatch ejecuta la acción asociada a la intención. canWrite habilita set_stock.
func (d *Dispatcher) Dispatch(ctx context.Context, intent domassistant.Intent, p domassistant.Params, canWrite bool) Outcome {
	switch intent {
	case domassistant.IntentGetStock:
		return d.getStock(ctx, p)
	case domassistant.IntentSetStock:
		return d.setStock(ctx, p, canWrite)
	case domassistant.IntentCompareEvents:
		return d.compareEvents(ctx, p)
	case domassistant.IntentAnalyzeLocation:
		return d.analyzeLocation(ctx, p)
	case domassistant.IntentAnalyzeLocationType:
		return d.analyzeLocationType(ctx, p)
	default:
		return warning(MsgNotUnderstood)
	}
}

func (d *Dispatcher) getStock(ctx context.Context, p domassistant.Params) Outcome {
	if p.SKU == nil || p.LocationID == nil {
		return warning(MsgMissingSKUOrLocation)
	}
	data, err := d.stock.GetStock(ctx, *p.SKU, *p.LocationID)
	if err != nil {
		d.log.Warn().Err(err).Int64("sku", *p.SKU).Int64("location_id", *p.LocationID).Msg("get_stock fallido")
		return failure(TitleStockOnHand, err)
	}
	return Outcome{Kind: dto.ReplyData, Title: TitleStockOnHand, Data: data}
}

func (d *Dispatcher) setStock(ctx context.Context, p domassistant.Params, canWrite bool) Outcome {
	if p.SKU == nil || p.LocationID == nil || p.Quantity == nil {
		return warning(MsgMissingSKUSOHOrLocation)
	}
	if *p.Quantity < 0 {
		return warning(MsgNegativeSOH)
	}
	if !canWrite {
		return warning(MsgWriteForbidden)
	}
	data, err := d.stock.SetStock(ctx, *p.SKU, *p.Quantity, *p.LocationID)
	if err != nil {
		d.log.Warn().Err(err).Int64("sku", *p.SKU).Int64("location_id", *p.LocationID).Msg("set_stock fallido")
		return failure(TitleStockUpdate, err)
	}
	d.log.Info().Int64("sku", *p.SKU).Int64("location_id", *p.LocationID).Int64("soh", *p.Quantity).Msg("stock actualizado")
	return Outcome{Kind: dto.ReplyData, Title: TitleStockUpdate, Data: data}
}

func (d *Dispatcher) compareEvents(ctx context.Context, p domassistant.Params) Outcome {
	if p.SKU == nil {
		return warning(MsgMissingSKU)
	}
	q := ports.EventQuery{SKU: *p.SKU}
	inv, err := d.productEvents.FetchEvents(ctx, q)
	if err != nil {
		d.log.Warn().Err(err).Int64("sku", *p.SKU).Msg("eventos de producto no disponibles")
		return failure(TitleComparison, err)
	}
	if IsEmptyPayload(inv) {
		return warning(MsgEventsUnavailable)
	}
	dc, err := d.dcEvents.FetchEvents(ctx, q)
	if err != nil {
		d.log.Warn().Err(err).Int64("sku", *p.SKU).Msg("eventos de CD no disponibles")
		return failure(TitleComparison, err)
	}
	if IsEmptyPayload(dc) {
		return warning(MsgEventsUnavailable)
	}
	summary, err := d.summarizer.Summarize(ctx, d.prompts.Compare,
		LabeledPayload{Label: d.prompts.ProductEventsLabel, Data: inv},
		LabeledPayload{Label: d.prompts.DCEventsLabel, Data: dc},
	)
	if err != nil {
		return failure(TitleComparison, err)
	}
	return Outcome{Kind: dto.ReplySummary, Title: TitleComparison, Summary: summary}
}

func (d *Dispatcher) analyzeLocation(ctx context.Context, p domassistant.Params) Outcome {
	if p.SKU == nil || p.LocationID == nil {
		return warning(MsgMissingSKUOrSpecificLoc)
	}
	q := ports.EventQuery{SKU: *p.SKU, LocationType: string(*p.LocationType), LocationID: p.LocationID}
	return d.analyze(ctx, q, d.prompts.AnalyzeLocation, TitleLocationAnalysis)
}

func (d *Dispatcher) analyzeLocationType(ctx context.Context, p domassistant.Params) Outcome {
	if p.SKU == nil || p.LocationType == nil || !p.LocationType.Valid() {
		return warning(MsgMissingSKUOrLocationType)
	}
	q := ports.EventQuery{SKU: *p.SKU, LocationType: string(*p.LocationType)}
	return d.analyze(ctx, q, d.prompts.AnalyzeLocationType, TitleLocationTypeAnalysis)
}

func (d *Dispatcher) analyze(ctx context.Context, q ports.EventQuery, instruction, title string) Outcome {
	events, err := d.productEvents.FetchEvents(ctx, q)
	if err != nil {
		d.log.Warn().Err(err).Int64("sku", q.SKU).Msg("eventos de producto no disponibles")
		return failure(title, err)
	}
	if IsEmptyPayload(events) {
		return warning(MsgNoEvents)
	}
	summary, err := d.summarizer.Summarize(ctx, instruction,
		LabeledPayload{Label: d.prompts.EventsLabel, Data: events},
	)
	if err != nil {
		return failure(title, err)
	}
	return Outcome{Kind: dto.ReplySummary, Title: title, Summary: summary}
}

// IsEmptyPayload trata como "sin datos" un cuerpo vacío, null, {} o [].
func IsEmptyPayload(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	if len(t) == 0 || bytes.Equal(t, []byte("null")) {
		return true
	}
	if t[0] != '{' && t[0] != '[' {
		return false
	}
	var v any
	if err := json.Unmarshal(t, &v); err != nil {
		return false
	}
	switch x := v.(type) {
	case map[string]any:
		return len(x) == 0
	case []any:
		return len(x) == 0
	}
	return false
}
