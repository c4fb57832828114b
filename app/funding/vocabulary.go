package funding

import (
	"slices"
	"strings"
)

// Vocabulary holds the word lists the heuristics are driven by.
// Values are treated as immutable once handed to a component.
type Vocabulary struct {
	Keywords      []string // funding keywords, matched case-insensitively as substrings
	ExcludeTokens []string // tokens that disqualify a company candidate
	SourceNames   []string // lowercase names that are never a company
}

func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Keywords: []string{
			"raises",
			"funding",
			"series",
			"seed",
			"round",
			"secures",
			"secured",
			"closes",
			"closing",
			"invests",
			"investment",
			"backs",
			"backed",
		},
		ExcludeTokens: []string{
			"Raises", "Raise", "Raising", "Raised",
			"Funding", "Funded",
			"Series", "Seed", "Round",
			"Pre-Seed", "Pre", "SeedRound",
			"A", "B", "C", "D", "E",
		},
		SourceNames: []string{"techcrunch", "eu-startups", "eu startups"},
	}
}

// WithSourceNames returns a copy of v that also treats names as source names.
func (v Vocabulary) WithSourceNames(names ...string) Vocabulary {
	out := Vocabulary{
		Keywords:      slices.Clone(v.Keywords),
		ExcludeTokens: slices.Clone(v.ExcludeTokens),
		SourceNames:   slices.Clone(v.SourceNames),
	}
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" && !slices.Contains(out.SourceNames, name) {
			out.SourceNames = append(out.SourceNames, name)
		}
	}
	return out
}
