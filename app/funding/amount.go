package funding

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	numberPattern    = `(?P<num>\d{1,3}(?:,\d{3})+(?:\.\d+)?|\d+(?:\.\d+)?)`
	magnitudePattern = `(?:\s*(?P<mag>[KMB])\b)?`
	symbolPattern    = `[$€£]`
	codePattern      = `\b(?:USD|EUR|GBP)\b`
)

var (
	magnitudeWords = []struct {
		re     *regexp.Regexp
		letter string
	}{
		{regexp.MustCompile(`(?i)\bmillions?\b`), "M"},
		{regexp.MustCompile(`(?i)\bbillions?\b`), "B"},
		{regexp.MustCompile(`(?i)\bthousands?\b`), "K"},
	}

	// Tried in order; the first shape found anywhere in the title wins.
	amountShapes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)` + symbolPattern + `\s*` + numberPattern + magnitudePattern),
		regexp.MustCompile(`(?i)` + numberPattern + magnitudePattern + `\s*` + symbolPattern),
		regexp.MustCompile(`(?i)` + codePattern + `\s*` + numberPattern + magnitudePattern),
		regexp.MustCompile(`(?i)` + numberPattern + magnitudePattern + `\s*` + codePattern),
	}

	symbolRe = regexp.MustCompile(symbolPattern)
	codeRe   = regexp.MustCompile(`(?i)` + codePattern)

	symbolCurrencies = map[string]Currency{
		"$": CurrencyUSD,
		"€": CurrencyEUR,
		"£": CurrencyGBP,
	}

	magnitudeFactors = map[string]float64{
		"K": 1_000,
		"M": 1_000_000,
		"B": 1_000_000_000,
	}
)

// ExtractAmount recovers a money amount and its currency from a title such as
// "$5M", "€3.2 million", "GBP 500k" or "£750,000". The value is rounded to cents.
// A nil value with a non-empty currency means the currency was seen but the
// number could not be read.
func ExtractAmount(title string) (*float64, Currency) {
	text := title
	for _, w := range magnitudeWords {
		text = w.re.ReplaceAllString(text, w.letter)
	}

	for _, shape := range amountShapes {
		m := shape.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		currency := spanCurrency(m[0])
		num := m[shape.SubexpIndex("num")]
		if num == "" {
			return nil, ""
		}

		value, err := strconv.ParseFloat(strings.ReplaceAll(num, ",", ""), 64)
		if err != nil {
			return nil, currency
		}
		if factor, ok := magnitudeFactors[strings.ToUpper(m[shape.SubexpIndex("mag")])]; ok {
			value *= factor
		}

		value = math.Round(value*100) / 100
		if math.IsInf(value, 0) || math.IsNaN(value) {
			return nil, currency
		}
		return &value, currency
	}

	return nil, ""
}

// spanCurrency prefers an ISO code over a symbol when both appear in span.
func spanCurrency(span string) Currency {
	if code := codeRe.FindString(span); code != "" {
		return Currency(strings.ToUpper(code))
	}
	if sym := symbolRe.FindString(span); sym != "" {
		return symbolCurrencies[sym]
	}
	return ""
}
