package port

import (
	"register/src/register/domain/entity"

	"github.com/shopspring/decimal"
)

// CartSnapshot es la vista de solo lectura del carrito que recibe el
// presentador después de cada mutación. Nunca referencias mutables.
type CartSnapshot struct {
	Lines          []entity.CartLine
	Total          decimal.Decimal
	Change         decimal.Decimal
	ReceivedAmount decimal.Decimal
	PaymentMethod  entity.PaymentMethod
	CanCheckout    bool
}

// Presenter define el contrato de renderizado: se invoca tras cada
// mutación exitosa del carrito con un snapshot de solo lectura.
// El presentador nunca muta el estado del engine.
type Presenter interface {
	RenderCart(snapshot CartSnapshot)
}

// Severity clasifica las notificaciones visibles al usuario.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Notifier define el contrato de notificaciones tipo toast.
// Fire-and-forget: no se consume valor de retorno.
type Notifier interface {
	Notify(message string, severity Severity)
}
