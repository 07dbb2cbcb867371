package utils

import (
	"fmt"
	"math"
	"strings"
)

// FormatNGN formats an amount as naira for display, e.g. "₦12,250,000".
// Display values carry no decimal places; the underlying numbers keep full
// precision.
func FormatNGN(value float64) string {
	return "₦" + groupThousands(math.Round(value))
}

// FormatUSD formats an amount as dollars for display, e.g. "$35,400".
func FormatUSD(value float64) string {
	return "$" + groupThousands(math.Round(value))
}

func groupThousands(value float64) string {
	neg := value < 0
	intPart := fmt.Sprintf("%.0f", math.Abs(value))

	var b strings.Builder
	cnt := 0
	for i := len(intPart) - 1; i >= 0; i-- {
		b.WriteByte(intPart[i])
		cnt++
		if cnt%3 == 0 && i != 0 {
			b.WriteByte(',')
		}
	}
	runes := []rune(b.String())
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	if neg {
		return "-" + string(runes)
	}
	return string(runes)
}
