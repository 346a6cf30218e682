package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"register/src/register/domain/entity"
)

func TestList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id": 1, "name": "Apfel", "price": 0.50, "category": "Obst", "barcode": "111", "stock": 100},
			{"id": 2, "name": "Brot", "price": 2.50, "category": "Backwaren", "barcode": "222", "stock": 20}
		]`))
	}))
	defer server.Close()

	c := NewBackendClientWithURL(server.URL)

	products, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Apfel", products[0].Name)
	assert.True(t, products[0].Price.Equal(decimal.RequireFromString("0.5")))
	assert.Equal(t, 20, products[1].Stock)
}

func TestFindByBarcode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/api/products/search/111" {
			w.Write([]byte(`{"success": true, "product": {"id": 1, "name": "Apfel", "price": 0.50, "stock": 100}}`))
			return
		}
		w.Write([]byte(`{"success": false, "error": "Produkt nicht gefunden"}`))
	}))
	defer server.Close()

	c := NewBackendClientWithURL(server.URL)

	product, found, err := c.FindByBarcode(context.Background(), "111")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Apfel", product.Name)

	_, found, err = c.FindByBarcode(context.Background(), "999")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSubmit(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/sales", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true, "sale_id": 17}`))
	}))
	defer server.Close()

	c := NewBackendClientWithURL(server.URL)

	sale, err := entity.NewSale(
		decimal.RequireFromString("5.00"),
		entity.PaymentCash,
		"Kassierer",
		[]entity.CartLine{{
			ProductID:  1,
			Name:       "Brot",
			UnitPrice:  decimal.RequireFromString("2.50"),
			Quantity:   2,
			TotalPrice: decimal.RequireFromString("5.00"),
		}},
	)
	require.NoError(t, err)

	saleID, err := c.Submit(context.Background(), sale)
	require.NoError(t, err)
	assert.Equal(t, int64(17), saleID)

	assert.Equal(t, "5", received["total_amount"])
	assert.Equal(t, "Bargeld", received["payment_method"])
	assert.Equal(t, "Kassierer", received["cashier"])
}

func TestSubmit_BackendRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": false, "error": "insufficient stock"}`))
	}))
	defer server.Close()

	c := NewBackendClientWithURL(server.URL)

	sale, err := entity.NewSale(
		decimal.RequireFromString("2.50"),
		entity.PaymentCash,
		"Kassierer",
		[]entity.CartLine{{ProductID: 1, Name: "Brot", UnitPrice: decimal.RequireFromString("2.50"), Quantity: 1, TotalPrice: decimal.RequireFromString("2.50")}},
	)
	require.NoError(t, err)

	_, err = c.Submit(context.Background(), sale)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient stock")
}

func TestSubmit_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewBackendClientWithURL(server.URL)

	sale, err := entity.NewSale(
		decimal.RequireFromString("2.50"),
		entity.PaymentCash,
		"Kassierer",
		[]entity.CartLine{{ProductID: 1, Name: "Brot", UnitPrice: decimal.RequireFromString("2.50"), Quantity: 1, TotalPrice: decimal.RequireFromString("2.50")}},
	)
	require.NoError(t, err)

	_, err = c.Submit(context.Background(), sale)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestDailyReport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/reports/daily", r.URL.Path)
		require.Equal(t, "2026-08-28", r.URL.Query().Get("date"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"date": "2026-08-28",
			"total_revenue": 123.45,
			"total_transactions": 7,
			"avg_transaction": 17.64,
			"payment_summary": [{"payment_method": "Bargeld", "count": 5, "amount": 80.00}],
			"top_products": [{"name": "Kaffee", "quantity": 10, "revenue": 49.90}]
		}`))
	}))
	defer server.Close()

	c := NewBackendClientWithURL(server.URL)

	report, err := c.DailyReport(context.Background(), "2026-08-28")
	require.NoError(t, err)
	assert.Equal(t, 7, report.TotalTransactions)
	assert.True(t, report.TotalRevenue.Equal(decimal.RequireFromString("123.45")))
	require.Len(t, report.TopProducts, 1)
	assert.Equal(t, "Kaffee", report.TopProducts[0].Name)
}
