package request

// AddItemRequest agrega una unidad de un producto al carrito por ID.
type AddItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
}

// ScanRequest agrega un producto al carrito por código de barras.
type ScanRequest struct {
	Barcode string `json:"barcode" binding:"required"`
}

// ChangeQuantityRequest aplica un delta a la cantidad de una línea.
// delta negativo decrementa; si la cantidad llega a 0 la línea se elimina.
type ChangeQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// SelectPaymentMethodRequest cambia el método de pago del terminal.
type SelectPaymentMethodRequest struct {
	Method string `json:"method" binding:"required"`
}

// SetReceivedAmountRequest fija el monto recibido del cliente.
// Se acepta string para tolerar input no numérico del front (coerce a 0).
type SetReceivedAmountRequest struct {
	Amount string `json:"amount"`
}
