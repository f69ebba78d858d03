package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type bucketRec struct {
	day   string
	hour  int
	value float64
}

func TestAggregatorReduce(t *testing.T) {
	values := []float64{3, 1, 4}

	assert.Equal(t, 8.0, Sum.Reduce(values))
	assert.InDelta(t, 8.0/3.0, Mean.Reduce(values), 1e-9)
	assert.Equal(t, 3.0, Count.Reduce(values))
	assert.Equal(t, 4.0, Max.Reduce(values))
}

func TestAggregatorReduceEmpty(t *testing.T) {
	for _, agg := range []Aggregator{Sum, Mean, Count, Max} {
		assert.Equal(t, 0.0, agg.Reduce(nil))
	}
}

func TestHeatmapAlwaysComplete(t *testing.T) {
	// A single observation still yields a full 7x24 matrix with zeros
	// everywhere else.
	records := []bucketRec{{"Wednesday", 14, 5}}
	hm := BuildHeatmap(records,
		func(r bucketRec) string { return r.day },
		func(r bucketRec) int { return r.hour },
		func(r bucketRec) float64 { return r.value },
		Sum)

	assert.Equal(t, WeekDays[:], hm.Days)
	assert.Len(t, hm.Hours, 24)
	assert.Len(t, hm.Values, 7)
	for d, row := range hm.Values {
		assert.Len(t, row, 24)
		for h, v := range row {
			if hm.Days[d] == "Wednesday" && h == 14 {
				assert.Equal(t, 5.0, v)
			} else {
				assert.Equal(t, 0.0, v, "day %s hour %d should be zero-filled", hm.Days[d], h)
			}
		}
	}
}

func TestHeatmapCanonicalDayOrder(t *testing.T) {
	// Input arrives Sunday-first; rows still come out Monday..Sunday.
	records := []bucketRec{
		{"Sunday", 0, 1},
		{"Monday", 0, 2},
	}
	hm := BuildHeatmap(records,
		func(r bucketRec) string { return r.day },
		func(r bucketRec) int { return r.hour },
		func(r bucketRec) float64 { return r.value },
		Sum)

	assert.Equal(t, "Monday", hm.Days[0])
	assert.Equal(t, "Sunday", hm.Days[6])
	assert.Equal(t, 2.0, hm.Values[0][0])
	assert.Equal(t, 1.0, hm.Values[6][0])
}

func TestHeatmapMeanAggregation(t *testing.T) {
	records := []bucketRec{
		{"Friday", 18, 10},
		{"Friday", 18, 20},
	}
	hm := BuildHeatmap(records,
		func(r bucketRec) string { return r.day },
		func(r bucketRec) int { return r.hour },
		func(r bucketRec) float64 { return r.value },
		Mean)

	i, _ := DayIndex("Friday")
	assert.Equal(t, 15.0, hm.Values[i][18])
}

func TestHeatmapDropsInvalidBuckets(t *testing.T) {
	records := []bucketRec{
		{"Funday", 3, 7},
		{"Monday", 25, 7},
		{"Monday", -1, 7},
	}
	hm := BuildHeatmap(records,
		func(r bucketRec) string { return r.day },
		func(r bucketRec) int { return r.hour },
		func(r bucketRec) float64 { return r.value },
		Sum)

	for _, row := range hm.Values {
		for _, v := range row {
			assert.Equal(t, 0.0, v)
		}
	}
}

func TestHeatmapFlattenAligned(t *testing.T) {
	hm := BuildHeatmap([]bucketRec{{"Monday", 0, 9}},
		func(r bucketRec) string { return r.day },
		func(r bucketRec) int { return r.hour },
		func(r bucketRec) float64 { return r.value },
		Sum)

	flat := hm.Flatten()
	assert.Len(t, flat, 7*24)
	assert.Equal(t, 9.0, flat[0])
}

func TestDailySeriesSortedAndBucketed(t *testing.T) {
	type tr struct {
		at time.Time
		v  float64
	}
	mk := func(d, h int, v float64) tr {
		return tr{time.Date(2025, 5, d, h, 0, 0, 0, time.UTC), v}
	}
	// Out of order on purpose; two records share May 2nd.
	records := []tr{mk(3, 9, 1), mk(2, 8, 2), mk(2, 20, 3)}

	series := DailySeries(records,
		func(r tr) time.Time { return r.at },
		func(r tr) float64 { return r.v },
		Sum)

	assert.Len(t, series, 2)
	assert.Equal(t, 2, series[0].Date.Day())
	assert.Equal(t, 5.0, series[0].Value)
	assert.Equal(t, 3, series[1].Date.Day())
	assert.Equal(t, 1.0, series[1].Value)
}

func TestDayOfWeekSeriesCanonicalOrder(t *testing.T) {
	records := []bucketRec{
		{"Sunday", 0, 4},
		{"Tuesday", 0, 2},
		{"Tuesday", 0, 6},
	}
	out := DayOfWeekSeries(records,
		func(r bucketRec) string { return r.day },
		func(r bucketRec) float64 { return r.value },
		Mean)

	assert.Equal(t, 0.0, out[0])  // Monday absent
	assert.Equal(t, 4.0, out[1])  // Tuesday mean
	assert.Equal(t, 4.0, out[6])  // Sunday
}

func TestHourSeriesFullRange(t *testing.T) {
	records := []bucketRec{{"Monday", 23, 7}}
	out := HourSeries(records,
		func(r bucketRec) int { return r.hour },
		func(r bucketRec) float64 { return r.value },
		Sum)

	assert.Equal(t, 7.0, out[23])
	for h := 0; h < 23; h++ {
		assert.Equal(t, 0.0, out[h])
	}
}
