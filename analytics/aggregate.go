package analytics

import (
	"sort"
	"time"
)

// WeekDays is the canonical day-of-week axis. Heatmaps and day-of-week
// groupings always use this order, whatever days appear in the data.
var WeekDays = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// DayIndex maps a day name to its position on the canonical axis.
func DayIndex(day string) (int, bool) {
	for i, d := range WeekDays {
		if d == day {
			return i, true
		}
	}
	return 0, false
}

// DayName returns the canonical name for a timestamp's weekday.
func DayName(t time.Time) string {
	return t.Weekday().String()
}

// Aggregator reduces a group of values to a single number.
type Aggregator int

const (
	Sum Aggregator = iota
	Mean
	Count
	Max
)

// Reduce applies the aggregator to values. An empty group reduces to 0.
func (a Aggregator) Reduce(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	switch a {
	case Count:
		return float64(len(values))
	case Max:
		max := values[0]
		for _, v := range values[1:] {
			if v > max {
				max = v
			}
		}
		return max
	case Mean:
		return Sum.Reduce(values) / float64(len(values))
	default:
		var sum float64
		for _, v := range values {
			sum += v
		}
		return sum
	}
}

// GroupBy buckets records by an arbitrary key.
func GroupBy[T any, K comparable](records []T, key func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, r := range records {
		k := key(r)
		groups[k] = append(groups[k], r)
	}
	return groups
}

// AggregateBy buckets records by key and reduces each bucket's values.
func AggregateBy[T any, K comparable](records []T, key func(T) K, value func(T) float64, agg Aggregator) map[K]float64 {
	out := make(map[K]float64)
	for k, group := range GroupBy(records, key) {
		values := make([]float64, len(group))
		for i, r := range group {
			values[i] = value(r)
		}
		out[k] = agg.Reduce(values)
	}
	return out
}

// DatePoint is one calendar-day bucket of a time series.
type DatePoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// DailySeries buckets records by calendar date (UTC), reduces each bucket,
// and returns the points in ascending date order.
func DailySeries[T any](records []T, at func(T) time.Time, value func(T) float64, agg Aggregator) []DatePoint {
	byDate := AggregateBy(records, func(r T) time.Time {
		y, m, d := at(r).Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}, value, agg)

	points := make([]DatePoint, 0, len(byDate))
	for date, v := range byDate {
		points = append(points, DatePoint{Date: date, Value: v})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points
}

// DayOfWeekSeries reduces records into the seven canonical day buckets, in
// canonical order. Days absent from the input report 0. Records with an
// unknown day name are dropped.
func DayOfWeekSeries[T any](records []T, day func(T) string, value func(T) float64, agg Aggregator) [7]float64 {
	buckets := make(map[int][]float64)
	for _, r := range records {
		if i, ok := DayIndex(day(r)); ok {
			buckets[i] = append(buckets[i], value(r))
		}
	}
	var out [7]float64
	for i := range out {
		out[i] = agg.Reduce(buckets[i])
	}
	return out
}

// HourSeries reduces records into the 24 hour-of-day buckets. Hours outside
// 0..23 are dropped; hours absent from the input report 0.
func HourSeries[T any](records []T, hour func(T) int, value func(T) float64, agg Aggregator) [24]float64 {
	buckets := make(map[int][]float64)
	for _, r := range records {
		if h := hour(r); h >= 0 && h < 24 {
			buckets[h] = append(buckets[h], value(r))
		}
	}
	var out [24]float64
	for h := range out {
		out[h] = agg.Reduce(buckets[h])
	}
	return out
}

// Heatmap is a complete day-of-week x hour-of-day matrix. Rows always cover
// Monday..Sunday in that order and columns always cover hours 0..23, with
// combinations absent from the input filled with 0 so renderers never see a
// ragged matrix.
type Heatmap struct {
	Days   []string    `json:"days"`
	Hours  []int       `json:"hours"`
	Values [][]float64 `json:"values"`
}

// BuildHeatmap cross-tabulates records into a complete 7x24 matrix, reducing
// each day/hour cell with the aggregator.
func BuildHeatmap[T any](records []T, day func(T) string, hour func(T) int, value func(T) float64, agg Aggregator) Heatmap {
	type cell struct{ day, hour int }
	buckets := make(map[cell][]float64)
	for _, r := range records {
		d, ok := DayIndex(day(r))
		if !ok {
			continue
		}
		h := hour(r)
		if h < 0 || h > 23 {
			continue
		}
		buckets[cell{d, h}] = append(buckets[cell{d, h}], value(r))
	}

	hm := Heatmap{
		Days:   WeekDays[:],
		Hours:  make([]int, 24),
		Values: make([][]float64, 7),
	}
	for h := 0; h < 24; h++ {
		hm.Hours[h] = h
	}
	for d := 0; d < 7; d++ {
		row := make([]float64, 24)
		for h := 0; h < 24; h++ {
			row[h] = agg.Reduce(buckets[cell{d, h}])
		}
		hm.Values[d] = row
	}
	return hm
}

// Flatten returns the matrix row-major, one value per day/hour cell. Two
// heatmaps flatten into aligned series because the axes are fixed, which is
// what the correlation utilities consume.
func (h Heatmap) Flatten() []float64 {
	flat := make([]float64, 0, 7*24)
	for _, row := range h.Values {
		flat = append(flat, row...)
	}
	return flat
}
