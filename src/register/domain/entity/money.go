package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatEUR formatea un monto decimal como moneda en locale alemán:
// punto como separador de miles, coma decimal, símbolo al final.
// Ej: 1234.5 → "1.234,50 €". Función pura, separada de la aritmética.
func FormatEUR(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2) // "-1234.50"

	neg := strings.HasPrefix(fixed, "-")
	if neg {
		fixed = fixed[1:]
	}

	intPart := fixed[:len(fixed)-3]
	decPart := fixed[len(fixed)-2:]

	// Agrupar miles con punto
	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	out := b.String() + "," + decPart + " €"
	if neg {
		out = "-" + out
	}
	return out
}
