package analytics

import (
	"testing"
	"time"
)

type rec struct {
	store string
	at    time.Time
}

func day(d int) time.Time {
	return time.Date(2025, 5, d, 12, 0, 0, 0, time.UTC)
}

var sample = []rec{
	{"Downtown Mart", day(1)},
	{"Riverside Convenience", day(2)},
	{"Downtown Mart", day(3)},
	{"Oakwood Express", day(10)},
}

func applySample(f Filter) []rec {
	return Apply(f, sample,
		func(r rec) string { return r.store },
		func(r rec) time.Time { return r.at })
}

func TestFilterIdentity(t *testing.T) {
	// Full store set and widest interval returns the input unchanged.
	f := Filter{
		Stores: []string{"Downtown Mart", "Riverside Convenience", "Oakwood Express"},
		Start:  day(1),
		End:    day(10),
	}
	got := applySample(f)
	if len(got) != len(sample) {
		t.Fatalf("expected %d records, got %d", len(sample), len(got))
	}
	for i := range got {
		if got[i] != sample[i] {
			t.Fatalf("record %d reordered: got %v want %v", i, got[i], sample[i])
		}
	}
}

func TestFilterEmptyStoreSetMeansAll(t *testing.T) {
	// The documented policy: an empty store set is "no filter", not "none".
	got := applySample(Filter{Start: day(1), End: day(10)})
	if len(got) != len(sample) {
		t.Fatalf("empty store set should select all: got %d of %d", len(got), len(sample))
	}
}

func TestFilterStoreSubset(t *testing.T) {
	got := applySample(Filter{Stores: []string{"Downtown Mart"}})
	if len(got) != 2 {
		t.Fatalf("expected 2 Downtown records, got %d", len(got))
	}
	for _, r := range got {
		if r.store != "Downtown Mart" {
			t.Fatalf("unexpected store %q", r.store)
		}
	}
}

func TestFilterDateBoundsInclusive(t *testing.T) {
	got := applySample(Filter{Start: day(2), End: day(3)})
	if len(got) != 2 {
		t.Fatalf("inclusive bounds should keep both endpoint records, got %d", len(got))
	}
	if !got[0].at.Equal(day(2)) || !got[1].at.Equal(day(3)) {
		t.Fatalf("wrong records survived: %v", got)
	}
}

func TestFilterNilTimeAccessorSkipsDateCheck(t *testing.T) {
	f := Filter{Start: day(5), End: day(6)}
	got := Apply(f, sample, func(r rec) string { return r.store }, nil)
	if len(got) != len(sample) {
		t.Fatalf("nil accessor should skip the time check, got %d records", len(got))
	}
}

func TestFilterEmptyInput(t *testing.T) {
	got := Apply(Filter{}, []rec{}, func(r rec) string { return r.store }, nil)
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}
