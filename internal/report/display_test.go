package report_test

import (
	"testing"

	"github.com/financewise/backend/internal/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount  string
		display string
	}{
		{"0", "₹0.00"},
		{"1234.5", "₹1,234.50"},
		{"1234567.89", "₹12,34,567.89"},
		{"-500", "₹-500.00"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.display, report.FormatAmount(decimal.RequireFromString(tt.amount)))
		})
	}
}
