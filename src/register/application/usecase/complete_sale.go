package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"register/src/register/domain/entity"
	"register/src/register/domain/port"
	"register/src/register/infrastructure/receipt"
	"register/src/shared/infrastructure/metrics"
)

// CatalogRefresher recarga el catálogo local tras una venta (el backend
// descontó stock, el cache quedó viejo).
type CatalogRefresher interface {
	Refresh(ctx context.Context) error
}

// CompleteSaleResult es el resultado de una venta confirmada.
type CompleteSaleResult struct {
	SaleID      int64
	Sale        *entity.Sale
	Change      decimal.Decimal
	Receipt     string
	CompletedAt time.Time
}

// CompleteSaleUseCase finaliza la venta en curso:
// 1. Snapshot del carrito bajo lock (payload inmune a mutaciones posteriores)
// 2. Envío al backend fuera del lock
// 3. Si falla → notificar, carrito intacto para reintento manual
// 4. Si ok → recibo, notificar, vaciar carrito, resetear a Cash, recargar catálogo
type CompleteSaleUseCase struct {
	session   *RegisterSession
	submitter port.SaleSubmitter
	refresher CatalogRefresher
	presenter port.Presenter
	notifier  port.Notifier
	receipts  *receipt.Formatter
}

// NewCompleteSaleUseCase crea una nueva instancia del caso de uso.
func NewCompleteSaleUseCase(
	session *RegisterSession,
	submitter port.SaleSubmitter,
	refresher CatalogRefresher,
	presenter port.Presenter,
	notifier port.Notifier,
	receipts *receipt.Formatter,
) *CompleteSaleUseCase {
	return &CompleteSaleUseCase{
		session:   session,
		submitter: submitter,
		refresher: refresher,
		presenter: presenter,
		notifier:  notifier,
		receipts:  receipts,
	}
}

// Execute finaliza la venta en curso.
func (uc *CompleteSaleUseCase) Execute(ctx context.Context) (*CompleteSaleResult, error) {
	// Payload y montos se capturan bajo lock; lo que pase con el
	// carrito después de este punto no afecta el envío en vuelo.
	var sale *entity.Sale
	var change, received decimal.Decimal

	err := uc.session.WithCart(func(cart *entity.Cart) error {
		if !cart.CanCheckout() {
			if cart.Len() == 0 {
				return entity.ErrEmptyCart
			}
			return entity.ErrInsufficientPayment
		}

		payload, err := cart.BuildSalePayload(uc.session.Cashier())
		if err != nil {
			return err
		}
		sale = payload
		change = cart.Change()
		received = cart.ReceivedAmount()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("checkout not available: %w", err)
	}

	log.Printf("💰 Submitting sale %s - items: %d, total: %s", sale.Reference, sale.TotalItems(), sale.TotalAmount)

	saleID, err := uc.submitter.Submit(ctx, sale)
	if err != nil {
		// El carrito queda intacto: el usuario puede reintentar
		metrics.SalesFailed.Inc()
		uc.notifier.Notify("Fehler beim Abschließen des Verkaufs", port.SeverityError)
		return nil, fmt.Errorf("error submitting sale %s: %w", sale.Reference, err)
	}

	completedAt := time.Now()
	receiptText := uc.receipts.Format(saleID, sale, received, change, completedAt)

	metrics.SalesCompleted.Inc()
	uc.notifier.Notify(fmt.Sprintf("Verkauf erfolgreich abgeschlossen! Verkaufs-ID: %d", saleID), port.SeveritySuccess)
	log.Printf("✅ Sale completed: ID=%d, Reference=%s, Total=%s", saleID, sale.Reference, sale.TotalAmount)

	// Venta cerrada: carrito limpio y método de pago de vuelta a Cash
	_ = uc.session.WithCart(func(cart *entity.Cart) error {
		cart.Clear()
		cart.SelectPaymentMethod(entity.PaymentCash)
		return nil
	})

	// El backend descontó stock; recargar el catálogo local.
	// Una falla acá no invalida la venta ya confirmada.
	if err := uc.refresher.Refresh(ctx); err != nil {
		log.Printf("⚠️  Warning: could not refresh catalog after sale: %v", err)
	}

	uc.presenter.RenderCart(uc.session.Snapshot())

	return &CompleteSaleResult{
		SaleID:      saleID,
		Sale:        sale,
		Change:      change,
		Receipt:     receiptText,
		CompletedAt: completedAt,
	}, nil
}
