package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatEUR(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0,00 €"},
		{"2.5", "2,50 €"},
		{"10", "10,00 €"},
		{"1234.56", "1.234,56 €"},
		{"1234.5", "1.234,50 €"},
		{"1000000", "1.000.000,00 €"},
		{"999.99", "999,99 €"},
		{"-12.30", "-12,30 €"},
		{"0.005", "0,01 €"}, // redondeo a 2 decimales
	}

	for _, tc := range cases {
		got := FormatEUR(decimal.RequireFromString(tc.in))
		assert.Equal(t, tc.want, got, "input %s", tc.in)
	}
}
