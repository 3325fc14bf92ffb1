package model

import "sort"

// Tally is a frequency count over the values of one categorical field.
// Keys are the observed category values (including the empty string for
// missing fields), values are non-negative occurrence counts.
type Tally map[string]int

// NewTally returns an empty Tally.
func NewTally() Tally {
	return make(Tally)
}

// Add increments the count for the given category value.
func (t Tally) Add(value string) {
	t[value]++
}

// Total returns the sum of all counts in the tally.
func (t Tally) Total() int {
	total := 0
	for _, count := range t {
		total += count
	}
	return total
}

// TallyEntry is one (category, count) pair of a sorted tally.
type TallyEntry struct {
	// Value is the category string (may be empty for missing fields).
	Value string

	// Count is the number of occurrences.
	Count int
}

// Entries returns the tally as a slice sorted most-frequent-first.
// Ties are broken by ascending category string so that output is
// byte-stable across runs regardless of map iteration order.
func (t Tally) Entries() []TallyEntry {
	entries := make([]TallyEntry, 0, len(t))
	for value, count := range t {
		entries = append(entries, TallyEntry{Value: value, Count: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Value < entries[j].Value
	})

	return entries
}
