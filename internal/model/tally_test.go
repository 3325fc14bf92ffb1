package model

import (
	"reflect"
	"testing"
)

// TestTallyAdd tests basic counting.
func TestTallyAdd(t *testing.T) {
	t.Parallel()

	tally := NewTally()
	tally.Add("Flu")
	tally.Add("Flu")
	tally.Add("Measles")
	tally.Add("")

	if tally["Flu"] != 2 {
		t.Errorf("expected Flu count 2, got %d", tally["Flu"])
	}
	if tally["Measles"] != 1 {
		t.Errorf("expected Measles count 1, got %d", tally["Measles"])
	}
	if tally[""] != 1 {
		t.Errorf("expected empty-string count 1, got %d", tally[""])
	}
	if tally.Total() != 4 {
		t.Errorf("expected total 4, got %d", tally.Total())
	}
}

// TestTallyEntries tests most-frequent-first ordering with the
// deterministic tie-break.
func TestTallyEntries(t *testing.T) {
	t.Parallel()

	t.Run("sorts by descending count", func(t *testing.T) {
		t.Parallel()

		tally := Tally{"a": 1, "b": 3, "c": 2}

		got := tally.Entries()
		want := []TallyEntry{
			{Value: "b", Count: 3},
			{Value: "c", Count: 2},
			{Value: "a", Count: 1},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("breaks ties by ascending value", func(t *testing.T) {
		t.Parallel()

		tally := Tally{"zeta": 2, "alpha": 2, "mid": 2}

		got := tally.Entries()
		want := []TallyEntry{
			{Value: "alpha", Count: 2},
			{Value: "mid", Count: 2},
			{Value: "zeta", Count: 2},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("empty tally yields empty slice", func(t *testing.T) {
		t.Parallel()

		if got := NewTally().Entries(); len(got) != 0 {
			t.Errorf("expected no entries, got %v", got)
		}
	})
}
