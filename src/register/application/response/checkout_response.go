package response

import "github.com/shopspring/decimal"

// CheckoutResponse es la respuesta de una venta completada:
// identificador del backend más el recibo listo para imprimir.
type CheckoutResponse struct {
	SaleID        int64           `json:"sale_id"`
	Reference     string          `json:"reference"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentMethod string          `json:"payment_method"`
	Change        decimal.Decimal `json:"change"`
	Receipt       string          `json:"receipt"`
	Cart          *CartView       `json:"cart"`
}
