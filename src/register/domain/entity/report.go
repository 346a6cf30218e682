package entity

import "github.com/shopspring/decimal"

// DailyReport representa el reporte diario agregado por el backend.
// El terminal no agrega nada: consume el reporte tal cual.
type DailyReport struct {
	Date              string           `json:"date"`
	TotalRevenue      decimal.Decimal  `json:"total_revenue"`
	TotalTransactions int              `json:"total_transactions"`
	AvgTransaction    decimal.Decimal  `json:"avg_transaction"`
	PaymentSummary    []PaymentSummary `json:"payment_summary"`
	TopProducts       []TopProduct     `json:"top_products"`
}

// PaymentSummary agrupa las ventas del día por método de pago.
type PaymentSummary struct {
	PaymentMethod string          `json:"payment_method"`
	Count         int             `json:"count"`
	Amount        decimal.Decimal `json:"amount"`
}

// TopProduct es un producto del ranking de más vendidos del día.
type TopProduct struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}
