package port

import (
	"context"

	"register/src/register/domain/entity"
)

// ProductCatalog define el contrato para consultar el catálogo de productos.
// El terminal nunca escribe productos; altas y bajas van directo al backend.
type ProductCatalog interface {
	// List retorna el catálogo completo ordenado por nombre.
	List(ctx context.Context) ([]entity.Product, error)

	// FindByBarcode busca un producto por código de barras.
	// found=false sin error cuando el código no existe.
	FindByBarcode(ctx context.Context, barcode string) (product *entity.Product, found bool, err error)
}
