package funding

import (
	"log/slog"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/lysyi3m/funding-radar/app/feed"
)

// ResolvePublished picks the publication instant of an entry: structured published,
// structured updated, then the free-text published and updated fields.
// Returns nil when none of them yields a date.
func ResolvePublished(entry feed.Entry) *time.Time {
	for _, ts := range []*time.Time{entry.PublishedParsed, entry.UpdatedParsed} {
		if ts != nil && !ts.IsZero() {
			return normalizeInstant(*ts)
		}
	}

	for _, text := range []string{entry.Published, entry.Updated} {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		ts, err := dateparse.ParseIn(text, time.UTC)
		if err != nil {
			slog.Debug("Unparseable entry date", "value", text, "link", entry.Link, "error", err)
			continue
		}
		return normalizeInstant(ts)
	}

	return nil
}

func normalizeInstant(t time.Time) *time.Time {
	utc := t.UTC().Truncate(time.Second)
	return &utc
}
