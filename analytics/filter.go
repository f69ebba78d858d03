package analytics

import "time"

// Filter narrows a record set to a store-name set and an inclusive date
// interval. An empty Stores set means "no store filter": every store
// matches. A zero Start or End leaves that side of the interval open.
type Filter struct {
	Stores []string
	Start  time.Time
	End    time.Time
}

// MatchStore reports whether the store name passes the store filter.
func (f Filter) MatchStore(store string) bool {
	if len(f.Stores) == 0 {
		return true
	}
	for _, s := range f.Stores {
		if s == store {
			return true
		}
	}
	return false
}

// MatchTime reports whether t falls inside the inclusive [Start, End]
// interval.
func (f Filter) MatchTime(t time.Time) bool {
	if !f.Start.IsZero() && t.Before(f.Start) {
		return false
	}
	if !f.End.IsZero() && t.After(f.End) {
		return false
	}
	return true
}

// Match combines MatchStore and MatchTime.
func (f Filter) Match(store string, t time.Time) bool {
	return f.MatchStore(store) && f.MatchTime(t)
}

// Apply returns the subsequence of records satisfying the filter, preserving
// the original relative order. The accessors pull the store name and record
// time out of each record; a nil at accessor skips the time check, for
// record kinds with no date axis (traffic and usage patterns).
func Apply[T any](f Filter, records []T, store func(T) string, at func(T) time.Time) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if !f.MatchStore(store(r)) {
			continue
		}
		if at != nil && !f.MatchTime(at(r)) {
			continue
		}
		out = append(out, r)
	}
	return out
}
