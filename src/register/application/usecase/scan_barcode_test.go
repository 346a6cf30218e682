package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"register/src/register/domain/entity"
)

type fakeCatalog struct {
	byBarcode map[string]*entity.Product
	err       error
}

func (f *fakeCatalog) List(_ context.Context) ([]entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	products := make([]entity.Product, 0, len(f.byBarcode))
	for _, p := range f.byBarcode {
		products = append(products, *p)
	}
	return products, nil
}

func (f *fakeCatalog) FindByBarcode(_ context.Context, barcode string) (*entity.Product, bool, error) {
	if f.err != nil {
		return nil, false, f.err
	}
	p, ok := f.byBarcode[barcode]
	return p, ok, nil
}

func TestScanBarcodeUseCase_AddsScannedProduct(t *testing.T) {
	session := NewRegisterSession("Kassierer")
	catalog := &fakeCatalog{byBarcode: map[string]*entity.Product{
		"1234567890125": newTestProduct(3, "Brot", "2.50", 20),
	}}
	presenter := &fakePresenter{}
	uc := NewScanBarcodeUseCase(session, catalog, presenter, &fakeNotifier{})

	snapshot, err := uc.Execute(context.Background(), "1234567890125")
	require.NoError(t, err)

	require.Len(t, snapshot.Lines, 1)
	assert.Equal(t, "Brot", snapshot.Lines[0].Name)
	assert.Len(t, presenter.rendered, 1)
}

func TestScanBarcodeUseCase_UnknownBarcode(t *testing.T) {
	session := NewRegisterSession("Kassierer")
	notifier := &fakeNotifier{}
	uc := NewScanBarcodeUseCase(session, &fakeCatalog{byBarcode: map[string]*entity.Product{}}, &fakePresenter{}, notifier)

	_, err := uc.Execute(context.Background(), "000")
	assert.ErrorIs(t, err, entity.ErrProductNotFound)
	assert.Contains(t, notifier.messages, "Produkt nicht gefunden")
}

func TestScanBarcodeUseCase_BackendFailure(t *testing.T) {
	session := NewRegisterSession("Kassierer")
	notifier := &fakeNotifier{}
	uc := NewScanBarcodeUseCase(session, &fakeCatalog{err: errors.New("timeout")}, &fakePresenter{}, notifier)

	snapshot, err := uc.Execute(context.Background(), "123")
	require.Error(t, err)
	assert.Empty(t, snapshot.Lines, "cart unchanged on lookup failure")
	assert.Contains(t, notifier.messages, "Fehler bei der Produktsuche")
}
