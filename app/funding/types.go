package funding

import (
	"time"
)

type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

// Record is one funding-related feed entry with the fields recovered from its title.
// Empty strings and nil pointers mean the field could not be determined.
type Record struct {
	Title          string
	Link           string // natural key
	PublishedAt    *time.Time
	Source         string
	Company        string
	AmountValue    *float64
	AmountCurrency Currency // only set together with AmountValue
	Stage          string
	InsertedAt     time.Time
}

// TimestampLayout is the persisted form of record timestamps (UTC, whole seconds).
const TimestampLayout = "2006-01-02T15:04:05-07:00"

func FormatTimestamp(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(TimestampLayout)
}
