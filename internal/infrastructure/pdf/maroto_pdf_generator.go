// Package pdf genera el documento imprimible de una orden de compra.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: ORDEN DE COMPRA + N°        │  Fecha               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CONTRATISTA (emisor)  │  PROVEEDOR (destinatario)          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DETALLE de la orden                                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FACTURAS: Fecha | N° | Archivo | Monto  + total facturado  │
//	│  FOOTER: QR con el id de la orden                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/obras-api/internal/application/procurement"
	"github.com/jhoicas/obras-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ procurement.PurchaseOrderPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa procurement.PurchaseOrderPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GeneratePurchaseOrderPDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GeneratePurchaseOrderPDF(
	_ context.Context,
	po *entity.PurchaseOrder,
	invoices []*entity.Invoice,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Orden de compra "+po.ID, true).
		WithAuthor(nonEmpty(po.ContractorEmail, po.ContractorID), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(po))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(po))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(detailRows(po.Details)...)

	m.AddRows(line.NewRow(4))
	m.AddRows(invoiceHeaderRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(invoiceRows(invoices)...)
	m.AddRows(totalRow(invoices))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(po))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(po *entity.PurchaseOrder) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New("ORDEN DE COMPRA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("N° "+po.ID, props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Fecha: "+po.CreatedAt.Format("02/01/2006"), props.Text{
				Size: 9, Align: align.Right, Top: 3,
			}),
		),
	)
}

// partiesRow: contratista emisor (izq) y proveedor destinatario (der).
func partiesRow(po *entity.PurchaseOrder) core.Row {
	party := func(title, email, id string) core.Col {
		return col.New(6).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(email, "-"), props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New("ID: "+id, props.Text{Size: 7, Top: 12, Color: colorGray}),
		)
	}
	return row.New(18).Add(
		party("CONTRATISTA", po.ContractorEmail, po.ContractorID),
		party("PROVEEDOR", po.SupplierEmail, po.SupplierID),
	)
}

func detailRows(details string) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("DETALLE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
		)),
	}
	for _, l := range strings.Split(details, "\n") {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(l, props.Text{Size: 9, Top: 0.5, Left: 2}),
		)))
	}
	return rows
}

func invoiceHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Factura", 3, align.Left),
		h("Archivo", 4, align.Left),
		h("Monto", 3, align.Right),
	)
}

func invoiceRows(invoices []*entity.Invoice) []core.Row {
	if len(invoices) == 0 {
		return []core.Row{row.New(7).Add(col.New(12).Add(
			text.New("Sin facturas recibidas", props.Text{Size: 8, Color: colorGray, Top: 1, Left: 1}),
		))}
	}
	result := make([]core.Row, 0, len(invoices))
	for _, inv := range invoices {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(inv.CreatedAt.Format("02/01/2006"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(shortID(inv.ID), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(nonEmpty(inv.FilePath, "-"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New("$"+formatMoney(inv.Amount), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

func totalRow(invoices []*entity.Invoice) core.Row {
	total := decimal.Zero
	for _, inv := range invoices {
		total = total.Add(inv.Amount)
	}
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL FACTURADO:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(3).Add(text.New("$"+formatMoney(total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

func footerRow(po *entity.PurchaseOrder) core.Row {
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(po.ID, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Presente este código al entregar el pedido\no al enviar la factura correspondiente.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// formatMoney redondea a 2 decimales e inserta puntos de miles en la parte entera.
// Ej: 1500000.5 → "1.500.000,50"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, frac, _ := strings.Cut(s, ".")

	n := len(intPart)
	buf := make([]byte, 0, n+n/3+3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	out := string(buf) + "," + frac
	if neg {
		return "-" + out
	}
	return out
}
