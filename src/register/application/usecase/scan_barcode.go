package usecase

import (
	"context"
	"errors"
	"fmt"

	"register/src/register/domain/entity"
	"register/src/register/domain/port"
	"register/src/shared/infrastructure/metrics"
)

// ScanBarcodeUseCase resuelve un código de barras contra el backend
// y agrega el producto al carrito.
type ScanBarcodeUseCase struct {
	session   *RegisterSession
	catalog   port.ProductCatalog
	presenter port.Presenter
	notifier  port.Notifier
}

// NewScanBarcodeUseCase crea una nueva instancia del caso de uso.
func NewScanBarcodeUseCase(
	session *RegisterSession,
	catalog port.ProductCatalog,
	presenter port.Presenter,
	notifier port.Notifier,
) *ScanBarcodeUseCase {
	return &ScanBarcodeUseCase{
		session:   session,
		catalog:   catalog,
		presenter: presenter,
		notifier:  notifier,
	}
}

// Execute busca el producto por barcode y lo agrega al carrito.
func (uc *ScanBarcodeUseCase) Execute(ctx context.Context, barcode string) (port.CartSnapshot, error) {
	product, found, err := uc.catalog.FindByBarcode(ctx, barcode)
	if err != nil {
		uc.notifier.Notify("Fehler bei der Produktsuche", port.SeverityError)
		return uc.session.Snapshot(), fmt.Errorf("error searching barcode %s: %w", barcode, err)
	}
	if !found {
		uc.notifier.Notify("Produkt nicht gefunden", port.SeverityError)
		return uc.session.Snapshot(), entity.ErrProductNotFound
	}

	err = uc.session.WithCart(func(cart *entity.Cart) error {
		return cart.AddItem(product)
	})
	if err != nil {
		if errors.Is(err, entity.ErrOutOfStock) {
			uc.notifier.Notify("Nicht genügend Lagerbestand", port.SeverityError)
		}
		return uc.session.Snapshot(), fmt.Errorf("error adding scanned product %s: %w", barcode, err)
	}

	metrics.CartMutations.WithLabelValues("scan").Inc()

	snapshot := uc.session.Snapshot()
	uc.presenter.RenderCart(snapshot)
	return snapshot, nil
}
