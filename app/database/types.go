package database

import (
	"time"
)

// NewsItem is a stored news row as exposed to readers.
type NewsItem struct {
	Title          string   `json:"title"`
	Link           string   `json:"link"`
	PublishedUTC   *string  `json:"published_utc"`
	Source         string   `json:"source"`
	Company        *string  `json:"company"`
	AmountValue    *float64 `json:"amount_value"`
	AmountCurrency *string  `json:"amount_currency"`
	Stage          *string  `json:"stage"`
}

type NewsFilter struct {
	Source string    // empty = all sources
	Since  time.Time // zero = no date filter; undated rows always match
	Limit  int
}
