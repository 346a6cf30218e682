package usecase

import (
	"context"
	"fmt"

	"register/src/register/domain/entity"
	"register/src/register/domain/port"
)

// ListSalesUseCase lista las ventas recientes desde el backend.
type ListSalesUseCase struct {
	history port.SaleHistory
}

// NewListSalesUseCase crea una nueva instancia del caso de uso.
func NewListSalesUseCase(history port.SaleHistory) *ListSalesUseCase {
	return &ListSalesUseCase{history: history}
}

// Execute retorna las ventas más recientes, nuevas primero.
func (uc *ListSalesUseCase) Execute(ctx context.Context) ([]entity.SaleSummary, error) {
	sales, err := uc.history.ListRecent(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing recent sales: %w", err)
	}
	return sales, nil
}

// GetSaleUseCase obtiene el detalle de una venta persistida.
type GetSaleUseCase struct {
	history port.SaleHistory
}

// NewGetSaleUseCase crea una nueva instancia del caso de uso.
func NewGetSaleUseCase(history port.SaleHistory) *GetSaleUseCase {
	return &GetSaleUseCase{history: history}
}

// Execute retorna la venta con sus líneas.
func (uc *GetSaleUseCase) Execute(ctx context.Context, saleID int64) (*entity.SaleDetail, error) {
	sale, err := uc.history.Get(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("error fetching sale %d: %w", saleID, err)
	}
	return sale, nil
}
