package funding

import (
	"regexp"
	"strings"
)

var (
	preSeedRe = regexp.MustCompile(`(?i)\bpre[\s-]?seed\b`)
	seedRe    = regexp.MustCompile(`(?i)\bseed\b`)
	seriesRe  = regexp.MustCompile(`(?i)\bseries\s+([A-Z])\b`)
)

// ExtractStage returns "Pre-Seed", "Seed" or "Series X" for the first stage
// mentioned in priority order, or "" when the title names none.
func ExtractStage(title string) string {
	if preSeedRe.MatchString(title) {
		return "Pre-Seed"
	}
	if seedRe.MatchString(title) {
		return "Seed"
	}
	if m := seriesRe.FindStringSubmatch(title); m != nil {
		return "Series " + strings.ToUpper(m[1])
	}
	return ""
}
