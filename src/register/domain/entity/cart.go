package entity

import (
	"github.com/shopspring/decimal"
)

// Cart representa la venta en curso del terminal (Aggregate Root).
// Secuencia ordenada de CartLine, a lo sumo una línea por producto.
// Toda la aritmética monetaria es decimal exacta, nunca float binario.
type Cart struct {
	lines          []CartLine
	paymentMethod  PaymentMethod
	receivedAmount decimal.Decimal
}

// NewCart crea un carrito vacío con método de pago Cash por defecto.
func NewCart() *Cart {
	return &Cart{
		lines:          make([]CartLine, 0),
		paymentMethod:  PaymentCash,
		receivedAmount: decimal.Zero,
	}
}

// AddItem agrega una unidad del producto al carrito.
// Si ya existe una línea para el producto incrementa la cantidad en 1,
// siempre que no supere el stock disponible. Si no existe crea la línea
// con cantidad 1. Devuelve ErrOutOfStock cuando el stock no alcanza;
// el estado del carrito queda sin cambios.
func (c *Cart) AddItem(product *Product) error {
	if product.Stock <= 0 {
		return ErrOutOfStock
	}

	for i := range c.lines {
		if c.lines[i].ProductID == product.ID {
			if c.lines[i].Quantity+1 > product.Stock {
				return ErrOutOfStock
			}
			c.lines[i].setQuantity(c.lines[i].Quantity + 1)
			return nil
		}
	}

	line, err := NewCartLine(product)
	if err != nil {
		return err
	}
	c.lines = append(c.lines, *line)
	return nil
}

// ChangeQuantity aplica un delta a la cantidad de la línea indicada.
// Si la nueva cantidad queda en 0 o menos la línea se elimina.
// Si supera el stock disponible devuelve ErrOutOfStock sin modificar nada.
func (c *Cart) ChangeQuantity(index, delta, stock int) error {
	if index < 0 || index >= len(c.lines) {
		return ErrIndexOutOfRange
	}

	newQty := c.lines[index].Quantity + delta
	if newQty <= 0 {
		return c.RemoveItem(index)
	}
	if newQty > stock {
		return ErrOutOfStock
	}

	c.lines[index].setQuantity(newQty)
	return nil
}

// RemoveItem elimina la línea indicada incondicionalmente.
func (c *Cart) RemoveItem(index int) error {
	if index < 0 || index >= len(c.lines) {
		return ErrIndexOutOfRange
	}
	c.lines = append(c.lines[:index], c.lines[index+1:]...)
	return nil
}

// Clear vacía el carrito y resetea el monto recibido.
// El método de pago se conserva; el caller decide si lo resetea.
func (c *Cart) Clear() {
	c.lines = c.lines[:0]
	c.receivedAmount = decimal.Zero
}

// SelectPaymentMethod fija el método de pago. Al salir de Cash el
// monto recibido deja de tener sentido y se resetea a 0.
func (c *Cart) SelectPaymentMethod(method PaymentMethod) {
	c.paymentMethod = method
	if !method.IsCash() {
		c.receivedAmount = decimal.Zero
	}
}

// SetReceivedAmount fija el monto recibido del cliente.
// Valores negativos se coercen a 0, nunca falla.
func (c *Cart) SetReceivedAmount(amount decimal.Decimal) {
	if amount.LessThan(decimal.Zero) {
		amount = decimal.Zero
	}
	c.receivedAmount = amount
}

// Total suma los subtotales de todas las líneas. Pura, sin efectos.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for i := range c.lines {
		total = total.Add(c.lines[i].TotalPrice)
	}
	return total
}

// Change calcula el vuelto para pago en efectivo: max(0, recibido - total).
// Para métodos no-Cash devuelve siempre 0.
func (c *Cart) Change() decimal.Decimal {
	if !c.paymentMethod.IsCash() {
		return decimal.Zero
	}
	change := c.receivedAmount.Sub(c.Total())
	if change.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return change
}

// CanCheckout indica si la venta puede finalizarse: carrito no vacío y,
// pagando en efectivo, monto recibido >= total.
func (c *Cart) CanCheckout() bool {
	if len(c.lines) == 0 {
		return false
	}
	if c.paymentMethod.IsCash() {
		return c.receivedAmount.GreaterThanOrEqual(c.Total())
	}
	return true
}

// BuildSalePayload arma el payload de venta para enviar al backend.
// Las líneas se copian: mutaciones posteriores del carrito no afectan
// un envío ya en vuelo.
func (c *Cart) BuildSalePayload(cashier string) (*Sale, error) {
	if len(c.lines) == 0 {
		return nil, ErrEmptyCart
	}

	items := make([]CartLine, len(c.lines))
	copy(items, c.lines)

	return NewSale(c.Total(), c.paymentMethod, cashier, items)
}

// Lines devuelve una copia de las líneas para renderizado.
// El presentador recibe snapshots, nunca referencias mutables.
func (c *Cart) Lines() []CartLine {
	snapshot := make([]CartLine, len(c.lines))
	copy(snapshot, c.lines)
	return snapshot
}

// Len devuelve la cantidad de líneas del carrito.
func (c *Cart) Len() int {
	return len(c.lines)
}

// PaymentMethod devuelve el método de pago seleccionado.
func (c *Cart) PaymentMethod() PaymentMethod {
	return c.paymentMethod
}

// ReceivedAmount devuelve el monto recibido del cliente.
func (c *Cart) ReceivedAmount() decimal.Decimal {
	return c.receivedAmount
}
