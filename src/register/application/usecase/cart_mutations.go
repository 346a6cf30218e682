package usecase

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"register/src/register/domain/entity"
	"register/src/register/domain/port"
	"register/src/shared/infrastructure/metrics"
)

// ChangeQuantityUseCase aplica un delta a la cantidad de una línea,
// validando contra el stock actual del catálogo.
type ChangeQuantityUseCase struct {
	session   *RegisterSession
	products  ProductFinder
	presenter port.Presenter
	notifier  port.Notifier
}

// NewChangeQuantityUseCase crea una nueva instancia del caso de uso.
func NewChangeQuantityUseCase(
	session *RegisterSession,
	products ProductFinder,
	presenter port.Presenter,
	notifier port.Notifier,
) *ChangeQuantityUseCase {
	return &ChangeQuantityUseCase{
		session:   session,
		products:  products,
		presenter: presenter,
		notifier:  notifier,
	}
}

// Execute aplica el delta. Si la cantidad llega a 0 la línea se elimina.
func (uc *ChangeQuantityUseCase) Execute(index, delta int) (port.CartSnapshot, error) {
	err := uc.session.WithCart(func(cart *entity.Cart) error {
		lines := cart.Lines()
		if index < 0 || index >= len(lines) {
			return entity.ErrIndexOutOfRange
		}

		// Si el producto desapareció del catálogo solo se permite
		// decrementar o eliminar, nunca incrementar.
		stock := lines[index].Quantity
		if product, ok := uc.products.GetByID(lines[index].ProductID); ok {
			stock = product.Stock
		}

		return cart.ChangeQuantity(index, delta, stock)
	})
	if err != nil {
		if errors.Is(err, entity.ErrOutOfStock) {
			uc.notifier.Notify("Nicht genügend Lagerbestand", port.SeverityError)
		}
		return uc.session.Snapshot(), fmt.Errorf("error changing quantity of line %d: %w", index, err)
	}

	metrics.CartMutations.WithLabelValues("change_quantity").Inc()

	snapshot := uc.session.Snapshot()
	uc.presenter.RenderCart(snapshot)
	return snapshot, nil
}

// RemoveItemUseCase elimina una línea del carrito incondicionalmente.
type RemoveItemUseCase struct {
	session   *RegisterSession
	presenter port.Presenter
}

// NewRemoveItemUseCase crea una nueva instancia del caso de uso.
func NewRemoveItemUseCase(session *RegisterSession, presenter port.Presenter) *RemoveItemUseCase {
	return &RemoveItemUseCase{session: session, presenter: presenter}
}

// Execute elimina la línea indicada.
func (uc *RemoveItemUseCase) Execute(index int) (port.CartSnapshot, error) {
	err := uc.session.WithCart(func(cart *entity.Cart) error {
		return cart.RemoveItem(index)
	})
	if err != nil {
		return uc.session.Snapshot(), fmt.Errorf("error removing line %d: %w", index, err)
	}

	metrics.CartMutations.WithLabelValues("remove_item").Inc()

	snapshot := uc.session.Snapshot()
	uc.presenter.RenderCart(snapshot)
	return snapshot, nil
}

// ClearCartUseCase vacía el carrito y resetea el monto recibido.
type ClearCartUseCase struct {
	session   *RegisterSession
	presenter port.Presenter
}

// NewClearCartUseCase crea una nueva instancia del caso de uso.
func NewClearCartUseCase(session *RegisterSession, presenter port.Presenter) *ClearCartUseCase {
	return &ClearCartUseCase{session: session, presenter: presenter}
}

// Execute vacía el carrito. El método de pago se conserva.
func (uc *ClearCartUseCase) Execute() port.CartSnapshot {
	_ = uc.session.WithCart(func(cart *entity.Cart) error {
		cart.Clear()
		return nil
	})

	metrics.CartMutations.WithLabelValues("clear").Inc()

	snapshot := uc.session.Snapshot()
	uc.presenter.RenderCart(snapshot)
	return snapshot
}

// SelectPaymentMethodUseCase cambia el método de pago del terminal.
type SelectPaymentMethodUseCase struct {
	session   *RegisterSession
	presenter port.Presenter
}

// NewSelectPaymentMethodUseCase crea una nueva instancia del caso de uso.
func NewSelectPaymentMethodUseCase(session *RegisterSession, presenter port.Presenter) *SelectPaymentMethodUseCase {
	return &SelectPaymentMethodUseCase{session: session, presenter: presenter}
}

// Execute valida y fija el método de pago. Al salir de Cash el monto
// recibido se resetea a 0.
func (uc *SelectPaymentMethodUseCase) Execute(method string) (port.CartSnapshot, error) {
	parsed, err := entity.ParsePaymentMethod(method)
	if err != nil {
		return uc.session.Snapshot(), fmt.Errorf("error selecting payment method %q: %w", method, err)
	}

	_ = uc.session.WithCart(func(cart *entity.Cart) error {
		cart.SelectPaymentMethod(parsed)
		return nil
	})

	snapshot := uc.session.Snapshot()
	uc.presenter.RenderCart(snapshot)
	return snapshot, nil
}

// SetReceivedAmountUseCase fija el monto recibido del cliente.
type SetReceivedAmountUseCase struct {
	session   *RegisterSession
	presenter port.Presenter
}

// NewSetReceivedAmountUseCase crea una nueva instancia del caso de uso.
func NewSetReceivedAmountUseCase(session *RegisterSession, presenter port.Presenter) *SetReceivedAmountUseCase {
	return &SetReceivedAmountUseCase{session: session, presenter: presenter}
}

// Execute parsea y fija el monto recibido. Input no numérico o negativo
// se coerce a 0, nunca falla.
func (uc *SetReceivedAmountUseCase) Execute(raw string) port.CartSnapshot {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		amount = decimal.Zero
	}

	_ = uc.session.WithCart(func(cart *entity.Cart) error {
		cart.SetReceivedAmount(amount)
		return nil
	})

	snapshot := uc.session.Snapshot()
	uc.presenter.RenderCart(snapshot)
	return snapshot
}
