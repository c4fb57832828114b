package funding

// Dedupe drops records whose link was already seen earlier in records.
// Order is preserved and the first occurrence wins.
func Dedupe(records []Record) []Record {
	seen := make(map[string]struct{}, len(records))
	unique := make([]Record, 0, len(records))
	for _, r := range records {
		if _, ok := seen[r.Link]; ok {
			continue
		}
		seen[r.Link] = struct{}{}
		unique = append(unique, r)
	}
	return unique
}
