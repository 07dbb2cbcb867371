package services

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docFromHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestParseUSDRateFromTable(t *testing.T) {
	html := `
	<html><body>
	<table>
		<tr><td>GBP</td><td>2,105.50</td></tr>
		<tr><td>USD</td><td>1,652.30</td></tr>
		<tr><td>EUR</td><td>1,790.00</td></tr>
	</table>
	</body></html>`

	rate, err := ParseUSDRate(docFromHTML(t, html))
	require.NoError(t, err)
	assert.InDelta(t, 1652.30, rate, 0.001)
}

func TestParseUSDRateFromText(t *testing.T) {
	html := `<html><body>
	<div>Today 1 Dollar = ₦1,580 in the parallel market</div>
	</body></html>`

	rate, err := ParseUSDRate(docFromHTML(t, html))
	require.NoError(t, err)
	assert.InDelta(t, 1580.0, rate, 0.001)
}

func TestParseUSDRateIgnoresNavigation(t *testing.T) {
	html := `<html><body>
	<nav><a href="/usd">USD 9999</a></nav>
	<table><tr><td>USD</td><td>1,471.25</td></tr></table>
	</body></html>`

	rate, err := ParseUSDRate(docFromHTML(t, html))
	require.NoError(t, err)
	assert.InDelta(t, 1471.25, rate, 0.001)
}

func TestParseUSDRateSkipsSmallNumbers(t *testing.T) {
	// percentages and unit counts below the sanity floor are not rates
	html := `<html><body>
	<div>USD strengthened 2.5 today</div>
	<div>USD buy rate 1,610.00</div>
	</body></html>`

	rate, err := ParseUSDRate(docFromHTML(t, html))
	require.NoError(t, err)
	assert.InDelta(t, 1610.0, rate, 0.001)
}

func TestParseUSDRateMissing(t *testing.T) {
	html := `<html><body><div>No rates here</div></body></html>`

	_, err := ParseUSDRate(docFromHTML(t, html))
	assert.Error(t, err)
}

func TestStripCurrencyWords(t *testing.T) {
	assert.Equal(t, " = 1,650", stripCurrencyWords("1 USD = 1,650"))
	assert.Equal(t, " rate 1,580", stripCurrencyWords("Dollar rate 1,580"))
	assert.Equal(t, "plain text", stripCurrencyWords("plain text"))
}
