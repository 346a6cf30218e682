package port

import (
	"context"

	"register/src/register/domain/entity"
)

// SaleSubmitter define el contrato para persistir una venta en el backend.
// Un solo intento por invocación: sin retries automáticos, el caller
// decide si reintenta tras una falla.
type SaleSubmitter interface {
	// Submit envía la venta y retorna el identificador asignado por el backend.
	Submit(ctx context.Context, sale *entity.Sale) (saleID int64, err error)
}

// SaleHistory define el contrato de consulta de ventas ya persistidas.
type SaleHistory interface {
	// ListRecent retorna las ventas más recientes, nuevas primero.
	ListRecent(ctx context.Context) ([]entity.SaleSummary, error)

	// Get retorna el detalle de una venta con sus líneas.
	Get(ctx context.Context, saleID int64) (*entity.SaleDetail, error)
}
