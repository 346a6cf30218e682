package cache

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"

	"register/src/register/domain/entity"
	"register/src/register/domain/port"
)

// ProductCache cache en memoria del catálogo de productos.
// Las mutaciones del carrito validan stock contra este cache; se
// recarga desde el backend al iniciar y después de cada venta.
type ProductCache struct {
	catalog   port.ProductCatalog
	mu        sync.RWMutex
	byID      map[int64]entity.Product
	byBarcode map[string]int64
}

// NewProductCache crea un cache vacío sobre el catálogo remoto.
func NewProductCache(catalog port.ProductCatalog) *ProductCache {
	return &ProductCache{
		catalog:   catalog,
		byID:      make(map[int64]entity.Product),
		byBarcode: make(map[string]int64),
	}
}

// Refresh recarga el catálogo completo desde el backend.
// En caso de error el contenido anterior se conserva.
func (c *ProductCache) Refresh(ctx context.Context) error {
	products, err := c.catalog.List(ctx)
	if err != nil {
		return fmt.Errorf("error refreshing product cache: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.byID = make(map[int64]entity.Product, len(products))
	c.byBarcode = make(map[string]int64, len(products))
	for _, p := range products {
		c.byID[p.ID] = p
		if p.Barcode != "" {
			c.byBarcode[p.Barcode] = p.ID
		}
	}

	log.Printf("✅ Loaded %d products into cache", len(products))
	return nil
}

// GetByID obtiene un producto por identificador.
func (c *ProductCache) GetByID(id int64) (*entity.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return &p, true
}

// GetByBarcode obtiene un producto por código de barras.
func (c *ProductCache) GetByBarcode(barcode string) (*entity.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	id, ok := c.byBarcode[barcode]
	if !ok {
		return nil, false
	}
	p := c.byID[id]
	return &p, true
}

// All retorna el catálogo cacheado ordenado por nombre.
func (c *ProductCache) All() []entity.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	products := make([]entity.Product, 0, len(c.byID))
	for _, p := range c.byID {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].Name < products[j].Name
	})
	return products
}

// Len retorna la cantidad de productos cacheados.
func (c *ProductCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byID)
}
