package domain

// EntryFilter holds optional filter criteria for listing entries.
// Zero-value fields mean "no filter" for that dimension.
type EntryFilter struct {
	Status Status
	Tag    string
}

// Matches reports whether the entry satisfies every set criterion.
func (f EntryFilter) Matches(e Entry) bool {
	if f.Status != "" && e.Status != f.Status {
		return false
	}
	if f.Tag != "" && !hasTag(e.Tags, f.Tag) {
		return false
	}
	return true
}

func hasTag(tags []string, want string) bool {
	for _, tag := range tags {
		if tag == want {
			return true
		}
	}
	return false
}
