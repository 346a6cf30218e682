package response

import "github.com/shopspring/decimal"

// CartLineView es una línea del carrito lista para renderizar:
// montos decimales crudos más su versión formateada en EUR.
type CartLineView struct {
	ProductID          int64           `json:"product_id"`
	Name               string          `json:"name"`
	Quantity           int             `json:"quantity"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	UnitPriceDisplay   string          `json:"unit_price_display"`
	TotalPrice         decimal.Decimal `json:"total_price"`
	TotalPriceDisplay  string          `json:"total_price_display"`
}

// CartView es el estado completo del carrito para el front del terminal.
// Se reconstruye tras cada mutación exitosa.
type CartView struct {
	Lines           []CartLineView  `json:"lines"`
	Empty           bool            `json:"empty"`
	Total           decimal.Decimal `json:"total"`
	TotalDisplay    string          `json:"total_display"`
	PaymentMethod   string          `json:"payment_method"`
	CashPayment     bool            `json:"cash_payment"`
	ReceivedAmount  decimal.Decimal `json:"received_amount"`
	Change          decimal.Decimal `json:"change"`
	ChangeDisplay   string          `json:"change_display"`
	CanCheckout     bool            `json:"can_checkout"`
}
