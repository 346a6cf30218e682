package entity

import (
	"github.com/shopspring/decimal"
)

// CartLine representa la entrada de un producto en la venta en curso.
// Invariante: TotalPrice == UnitPrice * Quantity, siempre.
type CartLine struct {
	ProductID  int64           `json:"product_id"`
	Name       string          `json:"name"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// NewCartLine crea una línea de carrito con cantidad inicial 1.
func NewCartLine(product *Product) (*CartLine, error) {
	if product.Name == "" {
		return nil, ErrProductNameRequired
	}
	if product.Price.LessThan(decimal.Zero) {
		return nil, ErrInvalidPrice
	}

	return &CartLine{
		ProductID:  product.ID,
		Name:       product.Name,
		UnitPrice:  product.Price,
		Quantity:   1,
		TotalPrice: product.Price,
	}, nil
}

// setQuantity fija la cantidad y recalcula el subtotal.
func (l *CartLine) setQuantity(qty int) {
	l.Quantity = qty
	l.TotalPrice = l.UnitPrice.Mul(decimal.NewFromInt(int64(qty)))
}
