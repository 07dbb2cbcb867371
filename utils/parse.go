package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var reNum = regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?)`)

func ParseFloatSafe(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func ParseIntSafe(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, _ := strconv.Atoi(s)
	return v
}

func ParseInt64Safe(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, _ := strconv.ParseInt(s, 10, 64)
	return v
}

// ExtractFirstFloat pulls the first number out of scraped text like
// "1 USD = 1,525.50 NGN". Thousands separators and non-breaking spaces are
// stripped first.
func ExtractFirstFloat(s string) float64 {
	clean := strings.ReplaceAll(s, " ", " ")
	clean = strings.ReplaceAll(clean, ",", "")
	clean = strings.ReplaceAll(clean, " ", "")
	m := reNum.FindStringSubmatch(clean)
	if len(m) > 1 {
		v, _ := strconv.ParseFloat(m[1], 64)
		return v
	}
	return 0
}
