package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNGN(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{0, "₦0"},
		{950, "₦950"},
		{1650, "₦1,650"},
		{12250000, "₦12,250,000"},
		{1652.30, "₦1,652"},
		{1652.70, "₦1,653"},
		{-45000, "₦-45,000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatNGN(tt.value), "value %v", tt.value)
	}
}

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$35,400", FormatUSD(35400))
	assert.Equal(t, "$996", FormatUSD(996.43))
	assert.Equal(t, "$1,000,000", FormatUSD(1000000))
}
