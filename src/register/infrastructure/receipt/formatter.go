package receipt

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"register/src/register/domain/entity"
)

// Ancho estándar en caracteres para térmicas tipo Epson TM-T88V.
const lineWidth = 48

// Formatter arma el texto plano del recibo para impresión térmica.
// Formato fijo: 48 caracteres por línea, montos alineados a la derecha.
type Formatter struct {
	storeName    string
	storeTagline string
}

// NewFormatter crea un formateador de recibos.
func NewFormatter(storeName, storeTagline string) *Formatter {
	if storeName == "" {
		storeName = "KASSENSYSTEM"
	}
	if storeTagline == "" {
		storeTagline = "Ihr Geschäft"
	}
	return &Formatter{storeName: storeName, storeTagline: storeTagline}
}

// Format genera el recibo completo de una venta confirmada.
// received y change solo se imprimen para pago en efectivo.
func (f *Formatter) Format(saleID int64, sale *entity.Sale, received, change decimal.Decimal, at time.Time) string {
	var lines []string

	sep := strings.Repeat("=", lineWidth)
	dash := strings.Repeat("-", lineWidth)

	lines = append(lines,
		sep,
		center(f.storeName),
		center(f.storeTagline),
		sep,
		"",
		fmt.Sprintf("Datum: %s", at.Format("02.01.2006 15:04:05")),
		fmt.Sprintf("Beleg-Nr: %d", saleID),
		fmt.Sprintf("Kassierer: %s", sale.Cashier),
		dash,
		"ARTIKEL",
		dash,
	)

	for _, item := range sale.Items {
		name := item.Name
		if runes := []rune(name); len(runes) > 30 {
			name = string(runes[:30])
		}
		lines = append(lines,
			name,
			fmt.Sprintf("  %d x %s = %s",
				item.Quantity,
				entity.FormatEUR(item.UnitPrice),
				rightAlign(entity.FormatEUR(item.TotalPrice), 12)),
		)
	}

	lines = append(lines,
		dash,
		fmt.Sprintf("%s %s", rightAlign("GESAMT:", 36), rightAlign(entity.FormatEUR(sale.TotalAmount), 10)),
		"",
		fmt.Sprintf("Zahlungsart: %s", sale.PaymentMethod),
	)

	if sale.PaymentMethod.IsCash() {
		lines = append(lines, fmt.Sprintf("Erhalten:    %s", rightAlign(entity.FormatEUR(received), 10)))
		if change.GreaterThan(decimal.Zero) {
			lines = append(lines, fmt.Sprintf("Rückgeld:    %s", rightAlign(entity.FormatEUR(change), 10)))
		}
	}

	lines = append(lines,
		"",
		center("Vielen Dank für Ihren Einkauf!"),
		center("Beleg bitte aufbewahren"),
		"",
		center("Alle Preise inkl. 19% MwSt"),
		"",
		sep,
	)

	return strings.Join(lines, "\n")
}

func center(s string) string {
	// El padding se calcula en runas, los recibos llevan umlauts
	n := len([]rune(s))
	if n >= lineWidth {
		return s
	}
	pad := (lineWidth - n) / 2
	return strings.Repeat(" ", pad) + s
}

func rightAlign(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return strings.Repeat(" ", width-n) + s
}
