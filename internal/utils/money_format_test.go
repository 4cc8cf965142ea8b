package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12.3", "12.30"},
		{"0", "0.00"},
		{"33.335", "33.34"},
		{"-45", "-45.00"},
		{"1000000.005", "1000000.01"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "16.00", FormatPercentage(decimal.NewFromInt(16)))
	assert.Equal(t, "33.33", FormatPercentage(decimal.RequireFromString("33.3333")))
}
