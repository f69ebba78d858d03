package utils

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// DeriveDayHour extracts the weekday name and hour from a timestamp. Derived
// columns always come from this one helper so they can never disagree with
// the timestamp they were derived from.
func DeriveDayHour(t time.Time) (string, int) {
	return t.Weekday().String(), t.Hour()
}

// ParseDateRange parses optional YYYY-MM-DD bounds. An empty value leaves
// that bound open (zero time). The end bound is pushed to the last instant
// of its day so the interval is inclusive on both sides.
func ParseDateRange(startRaw, endRaw string) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error

	if startRaw != "" {
		start, err = time.Parse(dateLayout, startRaw)
		if err != nil {
			return start, end, err
		}
	}
	if endRaw != "" {
		end, err = time.Parse(dateLayout, endRaw)
		if err != nil {
			return start, end, err
		}
		end = end.Add(24*time.Hour - time.Nanosecond)
	}
	return start, end, nil
}

// ParseStoreList splits a comma-separated store-name parameter. Blanks are
// dropped; an empty parameter yields an empty list, which downstream means
// "all stores".
func ParseStoreList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			out = append(out, name)
		}
	}
	return out
}
