package funding

import (
	"log/slog"
	"strings"
	"time"

	"github.com/lysyi3m/funding-radar/app/feed"
	"golang.org/x/text/unicode/norm"
)

// Normalizer turns feed entries into funding records.
type Normalizer struct {
	relevance  *RelevanceFilter
	companies  *CompanyExtractor
	windowDays int
	now        func() time.Time
}

// NewNormalizer builds a normalizer keeping items at most windowDays old.
// A nil clock means time.Now.
func NewNormalizer(vocab Vocabulary, windowDays int, now func() time.Time) *Normalizer {
	if now == nil {
		now = time.Now
	}
	return &Normalizer{
		relevance:  NewRelevanceFilter(vocab.Keywords),
		companies:  NewCompanyExtractor(vocab),
		windowDays: windowDays,
		now:        now,
	}
}

// Normalize returns the record for entry, or false when the entry is not a recent
// funding item. Fields that cannot be extracted are left empty.
func (n *Normalizer) Normalize(entry feed.Entry, source string) (Record, bool) {
	title := norm.NFC.String(strings.TrimSpace(entry.Title))
	link := strings.TrimSpace(entry.Link)
	if title == "" || link == "" {
		return Record{}, false
	}

	if !n.relevance.IsFundingRelated(title) {
		return Record{}, false
	}

	now := n.now().UTC()
	published := guard("published_utc", link, func() *time.Time { return ResolvePublished(entry) })
	if !IsWithinWindow(published, n.windowDays, now) {
		return Record{}, false
	}

	amt := guard("amount", link, func() money {
		value, currency := ExtractAmount(title)
		return money{value: value, currency: currency}
	})
	if amt.value == nil {
		amt.currency = ""
	}

	return Record{
		Title:          title,
		Link:           link,
		PublishedAt:    published,
		Source:         source,
		Company:        guard("company", link, func() string { return n.companies.Extract(title) }),
		AmountValue:    amt.value,
		AmountCurrency: amt.currency,
		Stage:          guard("stage", link, func() string { return ExtractStage(title) }),
		InsertedAt:     now.Truncate(time.Second),
	}, true
}

type money struct {
	value    *float64
	currency Currency
}

// guard runs one field extractor; a panic leaves the field absent.
func guard[T any](field, link string, extract func() T) (v T) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Field extraction failed", "field", field, "link", link, "panic", r)
			var zero T
			v = zero
		}
	}()
	return extract()
}
