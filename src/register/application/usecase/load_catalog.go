package usecase

import (
	"context"
	"fmt"

	"register/src/register/domain/entity"
)

// CatalogLister lista el catálogo local cacheado.
type CatalogLister interface {
	Refresh(ctx context.Context) error
	All() []entity.Product
}

// LoadCatalogUseCase recarga el catálogo desde el backend y lo retorna.
type LoadCatalogUseCase struct {
	cache CatalogLister
}

// NewLoadCatalogUseCase crea una nueva instancia del caso de uso.
func NewLoadCatalogUseCase(cache CatalogLister) *LoadCatalogUseCase {
	return &LoadCatalogUseCase{cache: cache}
}

// Execute recarga y retorna el catálogo completo.
func (uc *LoadCatalogUseCase) Execute(ctx context.Context) ([]entity.Product, error) {
	if err := uc.cache.Refresh(ctx); err != nil {
		return nil, fmt.Errorf("error loading catalog: %w", err)
	}
	return uc.cache.All(), nil
}
