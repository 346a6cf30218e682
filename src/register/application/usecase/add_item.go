package usecase

import (
	"errors"
	"fmt"
	"log"

	"register/src/register/domain/entity"
	"register/src/register/domain/port"
	"register/src/shared/infrastructure/metrics"
)

// ProductFinder es la consulta local de productos que usan las
// mutaciones del carrito (servida por el cache del catálogo).
type ProductFinder interface {
	GetByID(id int64) (*entity.Product, bool)
}

// AddItemUseCase agrega una unidad de un producto al carrito.
type AddItemUseCase struct {
	session   *RegisterSession
	products  ProductFinder
	presenter port.Presenter
	notifier  port.Notifier
}

// NewAddItemUseCase crea una nueva instancia del caso de uso.
func NewAddItemUseCase(
	session *RegisterSession,
	products ProductFinder,
	presenter port.Presenter,
	notifier port.Notifier,
) *AddItemUseCase {
	return &AddItemUseCase{
		session:   session,
		products:  products,
		presenter: presenter,
		notifier:  notifier,
	}
}

// Execute busca el producto en el catálogo y lo agrega al carrito.
// Stock insuficiente se rechaza con ErrOutOfStock y notificación al
// usuario; el estado del carrito queda sin cambios.
func (uc *AddItemUseCase) Execute(productID int64) (port.CartSnapshot, error) {
	product, ok := uc.products.GetByID(productID)
	if !ok {
		uc.notifier.Notify("Produkt nicht gefunden", port.SeverityError)
		return uc.session.Snapshot(), entity.ErrProductNotFound
	}

	err := uc.session.WithCart(func(cart *entity.Cart) error {
		return cart.AddItem(product)
	})
	if err != nil {
		if errors.Is(err, entity.ErrOutOfStock) {
			uc.notifier.Notify("Nicht genügend Lagerbestand", port.SeverityError)
		}
		return uc.session.Snapshot(), fmt.Errorf("error adding product %d to cart: %w", productID, err)
	}

	metrics.CartMutations.WithLabelValues("add_item").Inc()
	log.Printf("🛒 Added product %d (%s) to cart", product.ID, product.Name)

	snapshot := uc.session.Snapshot()
	uc.presenter.RenderCart(snapshot)
	return snapshot, nil
}
