package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"register/src/register/application/request"
	"register/src/register/application/usecase"
	"register/src/register/domain/entity"
	"register/src/register/domain/port"
	"register/src/register/infrastructure/presenter"
)

// RegisterController maneja las peticiones HTTP del carrito y checkout.
// Cada mutación exitosa responde con la vista actualizada del carrito.
type RegisterController struct {
	session          *usecase.RegisterSession
	addItemUC        *usecase.AddItemUseCase
	scanUC           *usecase.ScanBarcodeUseCase
	changeQtyUC      *usecase.ChangeQuantityUseCase
	removeItemUC     *usecase.RemoveItemUseCase
	clearCartUC      *usecase.ClearCartUseCase
	selectPaymentUC  *usecase.SelectPaymentMethodUseCase
	setReceivedUC    *usecase.SetReceivedAmountUseCase
	completeSaleUC   *usecase.CompleteSaleUseCase
}

// NewRegisterController crea una nueva instancia del controlador.
func NewRegisterController(
	session *usecase.RegisterSession,
	addItemUC *usecase.AddItemUseCase,
	scanUC *usecase.ScanBarcodeUseCase,
	changeQtyUC *usecase.ChangeQuantityUseCase,
	removeItemUC *usecase.RemoveItemUseCase,
	clearCartUC *usecase.ClearCartUseCase,
	selectPaymentUC *usecase.SelectPaymentMethodUseCase,
	setReceivedUC *usecase.SetReceivedAmountUseCase,
	completeSaleUC *usecase.CompleteSaleUseCase,
) *RegisterController {
	return &RegisterController{
		session:         session,
		addItemUC:       addItemUC,
		scanUC:          scanUC,
		changeQtyUC:     changeQtyUC,
		removeItemUC:    removeItemUC,
		clearCartUC:     clearCartUC,
		selectPaymentUC: selectPaymentUC,
		setReceivedUC:   setReceivedUC,
		completeSaleUC:  completeSaleUC,
	}
}

// RegisterRoutes registra las rutas del controlador.
func (c *RegisterController) RegisterRoutes(router *gin.RouterGroup) {
	cart := router.Group("/cart")
	{
		cart.GET("", c.GetCart)
		cart.POST("/items", c.AddItem)
		cart.POST("/scan", c.Scan)
		cart.PATCH("/items/:index/quantity", c.ChangeQuantity)
		cart.DELETE("/items/:index", c.RemoveItem)
		cart.POST("/clear", c.ClearCart)
		cart.POST("/payment-method", c.SelectPaymentMethod)
		cart.POST("/received-amount", c.SetReceivedAmount)
		cart.POST("/checkout", c.Checkout)
	}

	log.Println("Rutas Register disponibles:")
	log.Println("  GET    /api/v1/cart")
	log.Println("  POST   /api/v1/cart/items")
	log.Println("  POST   /api/v1/cart/scan")
	log.Println("  PATCH  /api/v1/cart/items/:index/quantity")
	log.Println("  DELETE /api/v1/cart/items/:index")
	log.Println("  POST   /api/v1/cart/clear")
	log.Println("  POST   /api/v1/cart/payment-method")
	log.Println("  POST   /api/v1/cart/received-amount")
	log.Println("  POST   /api/v1/cart/checkout  ⭐ (Complete Sale)")
}

// GetCart retorna la vista actual del carrito.
func (c *RegisterController) GetCart(ctx *gin.Context) {
	view := presenter.BuildCartView(c.session.Snapshot())
	ctx.JSON(http.StatusOK, view)
}

// AddItem agrega una unidad de un producto al carrito.
func (c *RegisterController) AddItem(ctx *gin.Context) {
	var req request.AddItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snapshot, err := c.addItemUC.Execute(req.ProductID)
	if err != nil {
		respondCartError(ctx, snapshot, err)
		return
	}

	ctx.JSON(http.StatusOK, presenter.BuildCartView(snapshot))
}

// Scan agrega un producto al carrito por código de barras.
func (c *RegisterController) Scan(ctx *gin.Context) {
	var req request.ScanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snapshot, err := c.scanUC.Execute(ctx.Request.Context(), req.Barcode)
	if err != nil {
		respondCartError(ctx, snapshot, err)
		return
	}

	ctx.JSON(http.StatusOK, presenter.BuildCartView(snapshot))
}

// ChangeQuantity aplica un delta a la cantidad de una línea.
func (c *RegisterController) ChangeQuantity(ctx *gin.Context) {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid line index"})
		return
	}

	var req request.ChangeQuantityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snapshot, err := c.changeQtyUC.Execute(index, req.Delta)
	if err != nil {
		respondCartError(ctx, snapshot, err)
		return
	}

	ctx.JSON(http.StatusOK, presenter.BuildCartView(snapshot))
}

// RemoveItem elimina una línea del carrito.
func (c *RegisterController) RemoveItem(ctx *gin.Context) {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid line index"})
		return
	}

	snapshot, err := c.removeItemUC.Execute(index)
	if err != nil {
		respondCartError(ctx, snapshot, err)
		return
	}

	ctx.JSON(http.StatusOK, presenter.BuildCartView(snapshot))
}

// ClearCart vacía el carrito.
func (c *RegisterController) ClearCart(ctx *gin.Context) {
	snapshot := c.clearCartUC.Execute()
	ctx.JSON(http.StatusOK, presenter.BuildCartView(snapshot))
}

// SelectPaymentMethod cambia el método de pago.
func (c *RegisterController) SelectPaymentMethod(ctx *gin.Context) {
	var req request.SelectPaymentMethodRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snapshot, err := c.selectPaymentUC.Execute(req.Method)
	if err != nil {
		respondCartError(ctx, snapshot, err)
		return
	}

	ctx.JSON(http.StatusOK, presenter.BuildCartView(snapshot))
}

// SetReceivedAmount fija el monto recibido del cliente.
func (c *RegisterController) SetReceivedAmount(ctx *gin.Context) {
	var req request.SetReceivedAmountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snapshot := c.setReceivedUC.Execute(req.Amount)
	ctx.JSON(http.StatusOK, presenter.BuildCartView(snapshot))
}

// Checkout finaliza la venta en curso.
func (c *RegisterController) Checkout(ctx *gin.Context) {
	result, err := c.completeSaleUC.Execute(ctx.Request.Context())
	if err != nil {
		log.Printf("Error completing sale: %v", err)
		switch {
		case errors.Is(err, entity.ErrEmptyCart), errors.Is(err, entity.ErrInsufficientPayment):
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		}
		return
	}

	view := presenter.BuildCartView(c.session.Snapshot())
	ctx.JSON(http.StatusOK, gin.H{
		"sale_id":        result.SaleID,
		"reference":      result.Sale.Reference,
		"total_amount":   result.Sale.TotalAmount,
		"payment_method": result.Sale.PaymentMethod,
		"change":         result.Change,
		"receipt":        result.Receipt,
		"cart":           view,
	})
}

// respondCartError mapea errores de dominio a status HTTP.
// La vista del carrito viaja igual: el estado no cambió y el front
// debe seguir mostrándolo.
func respondCartError(ctx *gin.Context, snapshot port.CartSnapshot, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, entity.ErrOutOfStock):
		status = http.StatusConflict
	case errors.Is(err, entity.ErrIndexOutOfRange):
		status = http.StatusNotFound
	case errors.Is(err, entity.ErrProductNotFound):
		status = http.StatusNotFound
	case errors.Is(err, entity.ErrUnknownPaymentMethod):
		status = http.StatusBadRequest
	}

	ctx.JSON(status, gin.H{
		"error": err.Error(),
		"cart":  presenter.BuildCartView(snapshot),
	})
}
