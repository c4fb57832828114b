package funding

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Funding titles conventionally put the company before one of these.
var titleSeparators = []string{":", " - ", " – ", " — ", "–", "—", " | "}

// A run of capitalized tokens; a bare "&" may join two of them ("Fiona & Co").
// The run must not follow a letter, digit or underscore in any script.
var capitalizedRunRe = regexp.MustCompile(`(?:^|[^\p{L}\p{N}_])([A-Z][A-Za-z0-9&-]*(?:\s+(?:&\s+)?[A-Z][A-Za-z0-9&-]*)*)`)

type CompanyExtractor struct {
	excluded map[string]struct{}
	sources  map[string]struct{}
}

func NewCompanyExtractor(v Vocabulary) *CompanyExtractor {
	e := &CompanyExtractor{
		excluded: make(map[string]struct{}, len(v.ExcludeTokens)),
		sources:  make(map[string]struct{}, len(v.SourceNames)),
	}
	for _, tok := range v.ExcludeTokens {
		e.excluded[tok] = struct{}{}
	}
	for _, name := range v.SourceNames {
		e.sources[strings.ToLower(name)] = struct{}{}
	}
	return e
}

// Extract returns the first capitalized word run of the title's leading segment
// that is not funding vocabulary or a source name, or "" if there is none.
func (e *CompanyExtractor) Extract(title string) string {
	segment := leadingSegment(title)

	for _, match := range capitalizedRunRe.FindAllStringSubmatch(segment, -1) {
		tokens := strings.Fields(match[1])
		if e.hasExcludedToken(tokens) {
			continue
		}
		candidate := strings.Join(tokens, " ")
		if _, ok := e.sources[strings.ToLower(candidate)]; ok {
			continue
		}
		if utf8.RuneCountInString(candidate) >= 2 {
			return candidate
		}
	}

	return ""
}

func (e *CompanyExtractor) hasExcludedToken(tokens []string) bool {
	for _, tok := range tokens {
		if _, ok := e.excluded[tok]; ok {
			return true
		}
	}
	return false
}

// leadingSegment cuts title at the first separator, in titleSeparators order,
// that it contains.
func leadingSegment(title string) string {
	for _, sep := range titleSeparators {
		if before, _, found := strings.Cut(title, sep); found {
			return before
		}
	}
	return title
}
