package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"register/src/register/domain/entity"
)

type stubCatalog struct {
	products []entity.Product
	err      error
}

func (s *stubCatalog) List(_ context.Context) ([]entity.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.products, nil
}

func (s *stubCatalog) FindByBarcode(_ context.Context, barcode string) (*entity.Product, bool, error) {
	for i := range s.products {
		if s.products[i].Barcode == barcode {
			return &s.products[i], true, nil
		}
	}
	return nil, false, nil
}

func sampleProducts() []entity.Product {
	return []entity.Product{
		{ID: 2, Name: "Milch", Price: decimal.RequireFromString("1.20"), Barcode: "126", Stock: 30},
		{ID: 1, Name: "Apfel", Price: decimal.RequireFromString("0.50"), Barcode: "123", Stock: 100},
		{ID: 3, Name: "Brot", Price: decimal.RequireFromString("2.50"), Stock: 20},
	}
}

func TestRefreshAndLookup(t *testing.T) {
	c := NewProductCache(&stubCatalog{products: sampleProducts()})
	require.NoError(t, c.Refresh(context.Background()))

	assert.Equal(t, 3, c.Len())

	p, ok := c.GetByID(1)
	require.True(t, ok)
	assert.Equal(t, "Apfel", p.Name)

	p, ok = c.GetByBarcode("126")
	require.True(t, ok)
	assert.Equal(t, "Milch", p.Name)

	_, ok = c.GetByID(99)
	assert.False(t, ok)
	_, ok = c.GetByBarcode("000")
	assert.False(t, ok)
}

func TestAll_SortedByName(t *testing.T) {
	c := NewProductCache(&stubCatalog{products: sampleProducts()})
	require.NoError(t, c.Refresh(context.Background()))

	all := c.All()
	require.Len(t, all, 3)
	assert.Equal(t, "Apfel", all[0].Name)
	assert.Equal(t, "Brot", all[1].Name)
	assert.Equal(t, "Milch", all[2].Name)
}

func TestRefresh_FailureKeepsPreviousContent(t *testing.T) {
	catalog := &stubCatalog{products: sampleProducts()}
	c := NewProductCache(catalog)
	require.NoError(t, c.Refresh(context.Background()))

	catalog.err = errors.New("backend down")
	err := c.Refresh(context.Background())
	require.Error(t, err)

	assert.Equal(t, 3, c.Len(), "stale catalog is better than no catalog")
}

func TestRefresh_ReplacesRemovedProducts(t *testing.T) {
	catalog := &stubCatalog{products: sampleProducts()}
	c := NewProductCache(catalog)
	require.NoError(t, c.Refresh(context.Background()))

	catalog.products = catalog.products[:1]
	require.NoError(t, c.Refresh(context.Background()))

	assert.Equal(t, 1, c.Len())
	_, ok := c.GetByBarcode("123")
	assert.False(t, ok, "stale barcode index entries must be dropped")
}

func TestGetByID_ReturnsCopy(t *testing.T) {
	c := NewProductCache(&stubCatalog{products: sampleProducts()})
	require.NoError(t, c.Refresh(context.Background()))

	p, ok := c.GetByID(1)
	require.True(t, ok)
	p.Stock = 0

	again, ok := c.GetByID(1)
	require.True(t, ok)
	assert.Equal(t, 100, again.Stock, "callers must not be able to mutate the cache")
}
