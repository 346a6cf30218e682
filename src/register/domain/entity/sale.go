package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale representa el payload de venta que el terminal envía al backend.
// El backend persiste, descuenta stock y devuelve el identificador.
type Sale struct {
	Reference     string          `json:"reference"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Cashier       string          `json:"cashier"`
	Items         []CartLine      `json:"items"`
}

// NewSale valida y construye el payload de venta.
func NewSale(total decimal.Decimal, method PaymentMethod, cashier string, items []CartLine) (*Sale, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	if cashier == "" {
		cashier = "System"
	}

	// Reference única por venta, generada del lado del terminal
	reference := "POS-" + uuid.New().String()

	return &Sale{
		Reference:     reference,
		TotalAmount:   total,
		PaymentMethod: method,
		Cashier:       cashier,
		Items:         items,
	}, nil
}

// TotalItems retorna el número total de líneas de la venta.
func (s *Sale) TotalItems() int {
	return len(s.Items)
}

// SaleSummary representa una venta ya persistida tal como la lista el backend.
type SaleSummary struct {
	ID            int64           `json:"id"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentMethod string          `json:"payment_method"`
	Cashier       string          `json:"cashier"`
	ItemCount     int             `json:"item_count"`
	CreatedAt     time.Time       `json:"created_at"`
}

// SaleDetail representa una venta persistida con sus líneas.
type SaleDetail struct {
	ID            int64           `json:"id"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentMethod string          `json:"payment_method"`
	Cashier       string          `json:"cashier"`
	CreatedAt     time.Time       `json:"created_at"`
	Items         []SaleDetailItem `json:"items"`
}

// SaleDetailItem es una línea de una venta persistida.
type SaleDetailItem struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Category    string          `json:"category,omitempty"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}
