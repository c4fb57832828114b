package funding

import (
	"testing"
	"time"

	"github.com/lysyi3m/funding-radar/app/feed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2023, 7, 10, 12, 0, 0, 750_000_000, time.UTC)

func newTestNormalizer() *Normalizer {
	return NewNormalizer(DefaultVocabulary(), 90, func() time.Time { return fixedNow })
}

func TestNormalizerNormalize(t *testing.T) {
	normalizer := newTestNormalizer()
	published := time.Date(2023, 7, 3, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		title    string
		company  string
		value    float64
		currency Currency
		stage    string
	}{
		{"Acme Robotics raises $5M Seed round", "Acme Robotics", 5_000_000, CurrencyUSD, "Seed"},
		{"Nimbus Health secures €3.2 million Series A", "Nimbus Health", 3_200_000, CurrencyEUR, "Series A"},
		{"Fiona & Co: Pre-Seed funding of £750,000", "Fiona & Co", 750_000, CurrencyGBP, "Pre-Seed"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			entry := feed.Entry{
				Title:           "  " + tt.title + "\n",
				Link:            " https://example.com/item ",
				PublishedParsed: &published,
			}

			record, ok := normalizer.Normalize(entry, "techcrunch")
			require.True(t, ok)

			assert.Equal(t, tt.title, record.Title)
			assert.Equal(t, "https://example.com/item", record.Link)
			assert.Equal(t, "techcrunch", record.Source)
			assert.Equal(t, tt.company, record.Company)
			require.NotNil(t, record.AmountValue)
			assert.InDelta(t, tt.value, *record.AmountValue, 0.001)
			assert.Equal(t, tt.currency, record.AmountCurrency)
			assert.Equal(t, tt.stage, record.Stage)
			require.NotNil(t, record.PublishedAt)
			assert.Equal(t, published, *record.PublishedAt)
			assert.Equal(t, time.Date(2023, 7, 10, 12, 0, 0, 0, time.UTC), record.InsertedAt)
		})
	}
}

func TestNormalizerRejectsIrrelevant(t *testing.T) {
	_, ok := newTestNormalizer().Normalize(feed.Entry{
		Title: "Random blog post about markets",
		Link:  "https://example.com/random",
	}, "techcrunch")
	assert.False(t, ok)
}

func TestNormalizerRejectsMissingFields(t *testing.T) {
	normalizer := newTestNormalizer()

	_, ok := normalizer.Normalize(feed.Entry{Title: "   ", Link: "https://example.com/a"}, "s")
	assert.False(t, ok)

	_, ok = normalizer.Normalize(feed.Entry{Title: "Acme raises seed", Link: ""}, "s")
	assert.False(t, ok)
}

func TestNormalizerRejectsStale(t *testing.T) {
	old := fixedNow.AddDate(0, 0, -91)

	_, ok := newTestNormalizer().Normalize(feed.Entry{
		Title:           "Acme raises $5M",
		Link:            "https://example.com/old",
		PublishedParsed: &old,
	}, "s")
	assert.False(t, ok)
}

func TestNormalizerKeepsUndated(t *testing.T) {
	record, ok := newTestNormalizer().Normalize(feed.Entry{
		Title: "why founders keep chasing funding",
		Link:  "https://example.com/undated",
	}, "s")
	require.True(t, ok)

	assert.Nil(t, record.PublishedAt)
	assert.Empty(t, record.Company)
	assert.Nil(t, record.AmountValue)
	assert.Empty(t, record.AmountCurrency)
	assert.Empty(t, record.Stage)
}

func TestNormalizerComposesUnicode(t *testing.T) {
	record, ok := newTestNormalizer().Normalize(feed.Entry{
		Title: "Cafe\u0301 Labs raises seed",
		Link:  "https://example.com/cafe",
	}, "s")
	require.True(t, ok)
	assert.Equal(t, "Caf\u00e9 Labs raises seed", record.Title)
}

func TestGuardRecoversPanic(t *testing.T) {
	got := guard("company", "https://example.com", func() string { panic("boom") })
	assert.Equal(t, "", got)

	assert.Equal(t, 7, guard("stage", "https://example.com", func() int { return 7 }))
}
