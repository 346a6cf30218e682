package usecase

import (
	"sync"

	"register/src/register/domain/entity"
	"register/src/register/domain/port"
)

// RegisterSession es la sesión de caja del terminal: un carrito, el
// cajero asignado y el método de pago/monto recibido vigentes.
// La mutación del carrito es lógicamente secuencial, pero la superficie
// HTTP es concurrente, así que la sesión serializa el acceso con un mutex.
type RegisterSession struct {
	mu      sync.Mutex
	cart    *entity.Cart
	cashier string
}

// NewRegisterSession crea una sesión con carrito vacío.
func NewRegisterSession(cashier string) *RegisterSession {
	if cashier == "" {
		cashier = "System"
	}
	return &RegisterSession{
		cart:    entity.NewCart(),
		cashier: cashier,
	}
}

// Cashier retorna el nombre del cajero de la sesión.
func (s *RegisterSession) Cashier() string {
	return s.cashier
}

// WithCart ejecuta fn con acceso exclusivo al carrito.
func (s *RegisterSession) WithCart(fn func(cart *entity.Cart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.cart)
}

// Snapshot toma una vista de solo lectura del estado actual del carrito.
func (s *RegisterSession) Snapshot() port.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshotLocked(s.cart)
}

func snapshotLocked(cart *entity.Cart) port.CartSnapshot {
	return port.CartSnapshot{
		Lines:          cart.Lines(),
		Total:          cart.Total(),
		Change:         cart.Change(),
		ReceivedAmount: cart.ReceivedAmount(),
		PaymentMethod:  cart.PaymentMethod(),
		CanCheckout:    cart.CanCheckout(),
	}
}
