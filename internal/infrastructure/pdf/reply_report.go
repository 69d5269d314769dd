// Package pdf genera el reporte PDF de una respuesta del asistente.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Retail Wizard + título  │  Tipo + Fecha            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CONSULTA: texto del usuario                                │
//	│  CLASIFICACIÓN: Intent | Store | DC | SKU | SOH | Loc type  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CUERPO: JSON indentado, resumen o aviso                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/retail-wizard/internal/application/dto"
	"github.com/jhoicas/retail-wizard/internal/application/ports"
	domassistant "github.com/jhoicas/retail-wizard/internal/domain/assistant"
)

var _ ports.ReportGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorWarning = &props.Color{Red: 176, Green: 106, Blue: 0}
	colorError   = &props.Color{Red: 170, Green: 20, Blue: 20}
)

// maxLineChars ancho aproximado de una línea de cuerpo en A4 con fuente 8.
const maxLineChars = 110

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa ports.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	now func() time.Time
}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator {
	return &MarotoReportGenerator{now: time.Now}
}

// GenerateReplyPDF genera el PDF de la respuesta y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateReplyPDF(_ context.Context, reply *dto.AssistantReply) ([]byte, error) {
	if reply == nil {
		return nil, fmt.Errorf("pdf: respuesta vacía")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Retail Wizard", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(reply, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(queryRows(reply.Query)...)
	m.AddRows(classificationHeaderRow(), classificationRow(reply.Classification))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(bodyRows(reply)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(reply *dto.AssistantReply, at time.Time) core.Row {
	title := reply.Title
	if title == "" {
		title = "Assistant Reply"
	}
	return row.New(18).Add(
		col.New(8).Add(
			text.New("Retail Wizard", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(title, props.Text{
				Size: 10, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(strings.ToUpper(string(reply.Kind)), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: kindColor(reply.Kind), Top: 1,
			}),
			text.New(at.Format("2006-01-02 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func queryRows(query string) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("QUERY", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
		)),
	}
	for _, l := range wrap(query, maxLineChars) {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(l, props.Text{Size: 9, Top: 0.5, Left: 2}),
		)))
	}
	return append(rows, row.New(3))
}

// classificationHeaderRow cabecera de la tabla de clasificación.
func classificationHeaderRow() core.Row {
	h := func(label string, size int) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Center,
			Color: colorWhite, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Intent", 3),
		h("Store", 2),
		h("DC", 2),
		h("SKU", 2),
		h("SOH", 2),
		h("Type", 1),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func classificationRow(r domassistant.IntentResult) core.Row {
	c := func(value string, size int) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: align.Center, Top: 1.5}))
	}
	soh := "-"
	if r.SOH != nil {
		soh = strconv.FormatInt(*r.SOH, 10)
	}
	locType := "-"
	if r.LocationType != nil {
		locType = string(*r.LocationType)
	}
	return row.New(7).Add(
		c(string(r.Intent), 3),
		c(deref(r.StoreNumber), 2),
		c(deref(r.DCNumber), 2),
		c(deref(r.SKUNumber), 2),
		c(soh, 2),
		c(locType, 1),
	)
}

// bodyRows: datos crudos indentados, resumen o mensaje según el tipo de respuesta.
func bodyRows(reply *dto.AssistantReply) []core.Row {
	var lines []string
	color := colorGray
	switch reply.Kind {
	case dto.ReplyData:
		lines = strings.Split(prettyJSON(reply.Data), "\n")
	case dto.ReplySummary:
		lines = strings.Split(reply.Summary, "\n")
		color = nil
	default:
		lines = []string{reply.Message}
		color = kindColor(reply.Kind)
	}

	rows := make([]core.Row, 0, len(lines))
	for _, raw := range lines {
		for _, l := range wrap(raw, maxLineChars) {
			rows = append(rows, row.New(4.5).Add(col.New(12).Add(
				text.New(l, props.Text{Size: 8, Top: 0.5, Left: 2, Color: color}),
			)))
		}
	}
	if reply.Reasoning != "" {
		rows = append(rows, row.New(4))
		for _, l := range wrap("Note: "+reply.Reasoning, maxLineChars) {
			rows = append(rows, row.New(4).Add(col.New(12).Add(
				text.New(l, props.Text{Size: 6.5, Color: colorGray, Top: 0.5}),
			)))
		}
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func kindColor(k dto.ReplyKind) *props.Color {
	switch k {
	case dto.ReplyWarning:
		return colorWarning
	case dto.ReplyError:
		return colorError
	default:
		return colorPrimary
	}
}

func deref(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func prettyJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}

// wrap parte una línea en trozos de max n caracteres (runas). Una línea vacía se conserva.
func wrap(s string, n int) []string {
	r := []rune(strings.TrimRight(s, " \t\r"))
	if len(r) == 0 {
		return []string{" "}
	}
	var parts []string
	for len(r) > n {
		parts = append(parts, string(r[:n]))
		r = r[n:]
	}
	return append(parts, string(r))
}
