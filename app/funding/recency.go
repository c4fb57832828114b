package funding

import (
	"time"
)

// IsWithinWindow keeps undated items and items published no earlier than
// windowDays before now. A non-positive window keeps everything.
func IsWithinWindow(published *time.Time, windowDays int, now time.Time) bool {
	if published == nil || windowDays <= 0 {
		return true
	}
	cutoff := now.UTC().AddDate(0, 0, -windowDays)
	return !published.Before(cutoff)
}
