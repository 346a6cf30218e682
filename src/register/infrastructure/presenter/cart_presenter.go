package presenter

import (
	"sync"

	"register/src/register/application/response"
	"register/src/register/domain/entity"
	"register/src/register/domain/port"
)

// CartPresenter implementa el puerto de presentación: recibe snapshots
// de solo lectura tras cada mutación y mantiene la última vista
// renderizada para cualquier display conectado al terminal.
type CartPresenter struct {
	mu   sync.RWMutex
	last response.CartView
}

// NewCartPresenter crea un presentador con el carrito vacío renderizado.
func NewCartPresenter() *CartPresenter {
	p := &CartPresenter{}
	p.last = BuildCartView(port.CartSnapshot{
		PaymentMethod: entity.PaymentCash,
	})
	return p
}

// RenderCart materializa la vista a partir del snapshot.
// Nunca muta el estado del engine.
func (p *CartPresenter) RenderCart(snapshot port.CartSnapshot) {
	view := BuildCartView(snapshot)

	p.mu.Lock()
	p.last = view
	p.mu.Unlock()
}

// LastView retorna la última vista renderizada.
func (p *CartPresenter) LastView() response.CartView {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.last
}

// BuildCartView construye la vista del carrito: montos crudos más su
// formato en EUR. Función pura, el formateo vive separado del cálculo.
func BuildCartView(snapshot port.CartSnapshot) response.CartView {
	lines := make([]response.CartLineView, 0, len(snapshot.Lines))
	for _, l := range snapshot.Lines {
		lines = append(lines, response.CartLineView{
			ProductID:         l.ProductID,
			Name:              l.Name,
			Quantity:          l.Quantity,
			UnitPrice:         l.UnitPrice,
			UnitPriceDisplay:  entity.FormatEUR(l.UnitPrice),
			TotalPrice:        l.TotalPrice,
			TotalPriceDisplay: entity.FormatEUR(l.TotalPrice),
		})
	}

	return response.CartView{
		Lines:          lines,
		Empty:          len(lines) == 0,
		Total:          snapshot.Total,
		TotalDisplay:   entity.FormatEUR(snapshot.Total),
		PaymentMethod:  string(snapshot.PaymentMethod),
		CashPayment:    snapshot.PaymentMethod.IsCash(),
		ReceivedAmount: snapshot.ReceivedAmount,
		Change:         snapshot.Change,
		ChangeDisplay:  entity.FormatEUR(snapshot.Change),
		CanCheckout:    snapshot.CanCheckout,
	}
}
