package receipt

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"register/src/register/domain/entity"
)

func sampleSale(t *testing.T, method entity.PaymentMethod) *entity.Sale {
	t.Helper()
	sale, err := entity.NewSale(
		decimal.RequireFromString("7.49"),
		method,
		"Kassierer",
		[]entity.CartLine{
			{ProductID: 1, Name: "Brot", UnitPrice: decimal.RequireFromString("2.50"), Quantity: 1, TotalPrice: decimal.RequireFromString("2.50")},
			{ProductID: 2, Name: "Kaffee", UnitPrice: decimal.RequireFromString("4.99"), Quantity: 1, TotalPrice: decimal.RequireFromString("4.99")},
		},
	)
	require.NoError(t, err)
	return sale
}

func TestFormat_CashReceipt(t *testing.T) {
	f := NewFormatter("", "")
	at := time.Date(2026, 8, 28, 14, 30, 0, 0, time.Local)

	text := f.Format(12, sampleSale(t, entity.PaymentCash),
		decimal.RequireFromString("10.00"), decimal.RequireFromString("2.51"), at)

	assert.Contains(t, text, "KASSENSYSTEM")
	assert.Contains(t, text, "Beleg-Nr: 12")
	assert.Contains(t, text, "Datum: 28.08.2026 14:30:00")
	assert.Contains(t, text, "Kassierer: Kassierer")
	assert.Contains(t, text, "Brot")
	assert.Contains(t, text, "1 x 2,50 €")
	assert.Contains(t, text, "GESAMT:")
	assert.Contains(t, text, "7,49 €")
	assert.Contains(t, text, "Zahlungsart: Bargeld")
	assert.Contains(t, text, "Erhalten:")
	assert.Contains(t, text, "10,00 €")
	assert.Contains(t, text, "Rückgeld:")
	assert.Contains(t, text, "2,51 €")
	assert.Contains(t, text, "Vielen Dank für Ihren Einkauf!")
}

func TestFormat_CardReceiptOmitsCashLines(t *testing.T) {
	f := NewFormatter("", "")

	text := f.Format(13, sampleSale(t, entity.PaymentCard), decimal.Zero, decimal.Zero, time.Now())

	assert.Contains(t, text, "Zahlungsart: Karte")
	assert.NotContains(t, text, "Erhalten:")
	assert.NotContains(t, text, "Rückgeld:")
}

func TestFormat_ExactCashOmitsChangeLine(t *testing.T) {
	f := NewFormatter("", "")

	text := f.Format(14, sampleSale(t, entity.PaymentCash),
		decimal.RequireFromString("7.49"), decimal.Zero, time.Now())

	assert.Contains(t, text, "Erhalten:")
	assert.NotContains(t, text, "Rückgeld:")
}

func TestFormat_LinesNeverExceedWidth(t *testing.T) {
	f := NewFormatter("Mein Laden", "Hauptstraße 1")

	text := f.Format(15, sampleSale(t, entity.PaymentCash),
		decimal.RequireFromString("10.00"), decimal.RequireFromString("2.51"), time.Now())

	for _, line := range strings.Split(text, "\n") {
		assert.LessOrEqual(t, len([]rune(line)), 48, "line too wide: %q", line)
	}
}

func TestFormat_CustomStoreName(t *testing.T) {
	f := NewFormatter("Mein Laden", "Hauptstraße 1")

	text := f.Format(16, sampleSale(t, entity.PaymentCard), decimal.Zero, decimal.Zero, time.Now())

	assert.Contains(t, text, "Mein Laden")
	assert.Contains(t, text, "Hauptstraße 1")
	assert.NotContains(t, text, "KASSENSYSTEM")
}

func TestFormat_TruncatesLongProductNames(t *testing.T) {
	f := NewFormatter("", "")
	longName := strings.Repeat("X", 60)

	sale, err := entity.NewSale(
		decimal.RequireFromString("1.00"),
		entity.PaymentCard,
		"Kassierer",
		[]entity.CartLine{{ProductID: 1, Name: longName, UnitPrice: decimal.RequireFromString("1.00"), Quantity: 1, TotalPrice: decimal.RequireFromString("1.00")}},
	)
	require.NoError(t, err)

	text := f.Format(17, sale, decimal.Zero, decimal.Zero, time.Now())
	assert.NotContains(t, text, longName)
	assert.Contains(t, text, strings.Repeat("X", 30))
}
