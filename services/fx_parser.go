package services

import (
	"fmt"
	"net/http"
	"strings"

	"driveport/utils"

	"github.com/PuerkitoBio/goquery"
)

// FxParser scrapes a reference USD→NGN rate from a public rates page.
type FxParser struct {
	sourceURL string
	client    *http.Client
}

func NewFxParser(sourceURL string) *FxParser {
	return &FxParser{
		sourceURL: sourceURL,
		client:    &http.Client{},
	}
}

// FetchUSDRate downloads the source page and extracts the rate.
func (fp *FxParser) FetchUSDRate() (float64, error) {
	req, err := http.NewRequest("GET", fp.sourceURL, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36")

	resp, err := fp.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return 0, err
	}
	return ParseUSDRate(doc)
}

// ParseUSDRate extracts the NGN-per-USD rate from a parsed document. It
// looks for table rows or blocks mentioning USD and takes the first number
// above a sanity floor (rates are quoted in hundreds of naira, so anything
// below 100 is a stray cell index or percentage).
func ParseUSDRate(doc *goquery.Document) (float64, error) {
	doc.Find("nav, header, footer, script, style").Remove()

	var rate float64
	doc.Find("tr, li, div").EachWithBreak(func(i int, s *goquery.Selection) bool {
		txt := s.Text()
		lower := strings.ToLower(txt)
		if !strings.Contains(lower, "usd") && !strings.Contains(lower, "dollar") {
			return true
		}
		if v := utils.ExtractFirstFloat(stripCurrencyWords(txt)); v >= 100 {
			rate = v
			return false
		}
		return true
	})

	if rate == 0 {
		return 0, fmt.Errorf("no USD rate found on page")
	}
	return rate, nil
}

// stripCurrencyWords drops the "1 USD" style prefix so ExtractFirstFloat
// does not pick up the unit quantity.
func stripCurrencyWords(s string) string {
	lower := strings.ToLower(s)
	for _, marker := range []string{"usd", "dollar"} {
		if idx := strings.Index(lower, marker); idx >= 0 {
			return s[idx+len(marker):]
		}
	}
	return s
}
