// Package pdf implementa la generación del contrato de renta en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + NIT  │  N° Contrato + Fecha              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ARRENDADOR: Dirección / Tel / Email                        │
//	│  ARRENDATARIO: Nombre + contacto                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  VEHÍCULO: Placa | Modelo | Año | Color | Tarifa diaria     │
//	│  PERIODO: Desde - Hasta (N días)  │  TOTAL                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PAGOS: Fecha | Método | Estado | Monto                     │
//	│  FOOTER: Leyenda legal + firmas                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ilogush/cars-api/internal/application/usecase"
	"github.com/ilogush/cars-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// es-CO: separador de miles con punto.
var moneyPrinter = message.NewPrinter(language.MustParse("es-CO"))

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoContractGenerator implementa usecase.ContractPDFGenerator usando Maroto v2.
type MarotoContractGenerator struct{}

// NewMarotoContractGenerator construye el generador.
func NewMarotoContractGenerator() *MarotoContractGenerator { return &MarotoContractGenerator{} }

// GenerateContractPDF genera el PDF del contrato y devuelve sus bytes.
func (g *MarotoContractGenerator) GenerateContractPDF(
	_ context.Context,
	booking *entity.Booking,
	car *entity.Car,
	company *entity.Company,
	client *entity.User,
	payments []*entity.Payment,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Contrato de Renta de Vehículo", true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(booking, company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(arrendadorRow(company))
	m.AddRows(arrendatarioRow(client))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(vehicleRow(car))
	m.AddRows(periodRow(booking, car))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	if len(payments) > 0 {
		m.AddRows(paymentsHeaderRow())
		for _, r := range paymentRows(payments) {
			m.AddRows(r)
		}
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	}

	for _, r := range footerRows() {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar contrato: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: razón social + NIT (izq) y N° contrato + fecha (der).
func headerRow(booking *entity.Booking, company *entity.Company) core.Row {
	fecha := booking.CreatedAt.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("NIT: "+company.NIT, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("CONTRATO DE RENTA DE VEHÍCULO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("N° "+booking.ID, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// arrendadorRow: datos de la empresa arrendadora.
func arrendadorRow(company *entity.Company) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("ARRENDADOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Dirección: %s   |   Tel: %s   |   Email: %s",
				nonEmpty(company.Address, "—"),
				nonEmpty(company.Phone, "—"),
				nonEmpty(company.Email, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// arrendatarioRow: datos del cliente.
func arrendatarioRow(client *entity.User) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("ARRENDATARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(client.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Email: %s   |   Tel: %s",
				nonEmpty(client.Email, "—"),
				nonEmpty(client.Phone, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// vehicleRow: ficha del vehículo rentado.
func vehicleRow(car *entity.Car) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("VEHÍCULO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Placa: %s   |   Modelo: %s (%d)   |   Color: %s",
				car.Plate, car.Model, car.Year, nonEmpty(car.Color, "—"),
			), props.Text{Style: fontstyle.Bold, Size: 9, Top: 7}),
		),
	)
}

// periodRow: periodo de renta y total.
func periodRow(booking *entity.Booking, car *entity.Car) core.Row {
	periodo := fmt.Sprintf("Desde %s hasta %s (%d días)",
		booking.StartDate.Format("02/01/2006"),
		booking.EndDate.Format("02/01/2006"),
		booking.Days(),
	)
	return row.New(16).Add(
		col.New(7).Add(
			text.New("PERIODO DE RENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(periodo, props.Text{Size: 9, Top: 7}),
			text.New("Tarifa diaria: $"+formatMoney(car.DailyRate), props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("TOTAL", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("$"+formatMoney(booking.TotalPrice), props.Text{
				Style: fontstyle.Bold, Size: 13, Align: align.Right,
				Color: colorPrimary, Top: 7,
			}),
		),
	)
}

// paymentsHeaderRow: cabecera de la tabla de pagos.
func paymentsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 3, align.Left),
		h("Método", 3, align.Left),
		h("Estado", 3, align.Center),
		h("Monto", 3, align.Right),
	)
}

// paymentRows: una fila por pago registrado.
func paymentRows(payments []*entity.Payment) []core.Row {
	result := make([]core.Row, 0, len(payments))
	for _, p := range payments {
		fecha := "—"
		if p.PaidAt != nil {
			fecha = p.PaidAt.Format("02/01/2006")
		}
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(fecha, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(3).Add(text.New(p.Method, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(3).Add(text.New(p.Status, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New("$"+formatMoney(p.Amount), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// footerRows: leyenda legal + espacio de firmas.
func footerRows() []core.Row {
	return []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New(
				"El arrendatario declara recibir el vehículo en las condiciones descritas y se "+
					"obliga a devolverlo en la fecha pactada. Este documento constituye soporte del "+
					"contrato de renta entre las partes.",
				props.Text{Size: 6.5, Color: colorGray, Top: 2},
			),
		)),
		row.New(20),
		row.New(10).Add(
			col.New(5).Add(
				text.New("_______________________________", props.Text{Size: 8, Align: align.Center}),
				text.New("Firma Arrendador", props.Text{Size: 7, Align: align.Center, Top: 5, Color: colorGray}),
			),
			col.New(2),
			col.New(5).Add(
				text.New("_______________________________", props.Text{Size: 8, Align: align.Center}),
				text.New("Firma Arrendatario", props.Text{Size: 7, Align: align.Center, Top: 5, Color: colorGray}),
			),
		),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

var _ usecase.ContractPDFGenerator = (*MarotoContractGenerator)(nil)

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney formatea el monto con separador de miles es-CO, sin decimales.
// Ej: 25000 → "25.000", 1000000 → "1.000.000"
func formatMoney(d decimal.Decimal) string {
	return moneyPrinter.Sprintf("%d", d.Round(0).IntPart())
}
