package funding

import (
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"
)

// RelevanceFilter decides whether a title talks about a funding event.
type RelevanceFilter struct {
	matcher *ahocorasick.Matcher
}

func NewRelevanceFilter(keywords []string) *RelevanceFilter {
	normalized := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			normalized = append(normalized, kw)
		}
	}

	f := &RelevanceFilter{}
	if len(normalized) > 0 {
		f.matcher = ahocorasick.NewStringMatcher(normalized)
	}
	return f
}

// IsFundingRelated reports whether any keyword occurs in title, ignoring case.
// Safe for concurrent use.
func (f *RelevanceFilter) IsFundingRelated(title string) bool {
	if f.matcher == nil || title == "" {
		return false
	}
	return len(f.matcher.MatchThreadSafe([]byte(strings.ToLower(title)))) > 0
}
