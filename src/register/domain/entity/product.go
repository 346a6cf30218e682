package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo tal como lo entrega el backend.
// El terminal lo trata como solo-lectura: el stock lo descuenta el backend
// al confirmar la venta, nunca el terminal.
type Product struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Category  string          `json:"category,omitempty"`
	Barcode   string          `json:"barcode,omitempty"`
	Stock     int             `json:"stock"`
	CreatedAt *time.Time      `json:"created_at,omitempty"`
}

// InStock indica si queda al menos una unidad disponible.
func (p *Product) InStock() bool {
	return p.Stock > 0
}
