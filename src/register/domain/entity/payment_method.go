package entity

// PaymentMethod representa el método de pago seleccionado en el terminal.
// Valor único global por sesión de caja, default Cash.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "Bargeld"
	PaymentCard PaymentMethod = "Karte"
)

// ParsePaymentMethod valida un método de pago recibido por HTTP.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentCash, PaymentCard:
		return PaymentMethod(s), nil
	}
	return "", ErrUnknownPaymentMethod
}

// IsCash indica si el método requiere cálculo de vuelto.
func (m PaymentMethod) IsCash() bool {
	return m == PaymentCash
}
