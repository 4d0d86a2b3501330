package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCost(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "$0"},
		{3.65, "$3.65"},
		{4, "$4.00"},
		{73, "$73.00"},
		{146, "$146"},
		{999.4, "$999"},
		{2944, "$2,944"},
		{1234567, "$1,234,567"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCost(tt.amount))
		})
	}
}

func TestCostEstimateDisplay(t *testing.T) {
	assert.Equal(t, "$6.40", CostEstimate{Monthly: 6.40, Currency: "USD/month"}.Display())
}
