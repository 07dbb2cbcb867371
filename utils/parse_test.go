package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFloatSafe(t *testing.T) {
	assert.Equal(t, 1525.5, ParseFloatSafe("1525.5"))
	assert.Equal(t, 1525.5, ParseFloatSafe("  1525.5  "))
	assert.Equal(t, 0.0, ParseFloatSafe(""))
	assert.Equal(t, 0.0, ParseFloatSafe("abc"))
}

func TestParseIntSafe(t *testing.T) {
	assert.Equal(t, 2019, ParseIntSafe("2019"))
	assert.Equal(t, 0, ParseIntSafe(""))
	assert.Equal(t, 0, ParseIntSafe("12.5"))
}

func TestParseInt64Safe(t *testing.T) {
	assert.Equal(t, int64(85000), ParseInt64Safe("85000"))
	assert.Equal(t, int64(0), ParseInt64Safe("not a number"))
}

func TestExtractFirstFloat(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"1,525.50 NGN", 1525.50},
		{"= ₦1,580 today", 1580},
		{"rate: 1610.00", 1610},
		{"1 652,30", 165230}, // separators stripped, digits collapse
		{"no numbers", 0},
		{"", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, ExtractFirstFloat(tt.input), "input %q", tt.input)
	}
}
