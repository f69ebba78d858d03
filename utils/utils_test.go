package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeriveDayHour(t *testing.T) {
	// 2025-05-05 was a Monday.
	day, hour := DeriveDayHour(time.Date(2025, 5, 5, 18, 30, 0, 0, time.UTC))
	assert.Equal(t, "Monday", day)
	assert.Equal(t, 18, hour)

	day, hour = DeriveDayHour(time.Date(2025, 5, 11, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "Sunday", day)
	assert.Equal(t, 0, hour)
}

func TestParseDateRangeInclusiveEnd(t *testing.T) {
	start, end, err := ParseDateRange("2025-05-01", "2025-05-31")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), start)

	// A record stamped at any point on the end date stays inside the range.
	lastMoment := time.Date(2025, 5, 31, 23, 59, 59, 0, time.UTC)
	assert.False(t, end.Before(lastMoment))
	assert.True(t, end.Before(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
}

func TestParseDateRangeOpenBounds(t *testing.T) {
	start, end, err := ParseDateRange("", "")
	assert.NoError(t, err)
	assert.True(t, start.IsZero())
	assert.True(t, end.IsZero())
}

func TestParseDateRangeInvalid(t *testing.T) {
	_, _, err := ParseDateRange("05/01/2025", "")
	assert.Error(t, err)
}

func TestParseStoreList(t *testing.T) {
	assert.Nil(t, ParseStoreList(""))
	assert.Equal(t, []string{"Downtown Mart"}, ParseStoreList("Downtown Mart"))
	assert.Equal(t,
		[]string{"Downtown Mart", "Oakwood Express"},
		ParseStoreList("Downtown Mart, Oakwood Express"))
	assert.Equal(t, []string{"A"}, ParseStoreList("A,,  ,"))
}

func TestCreatePagination(t *testing.T) {
	p := CreatePagination(42, -3, 0)
	assert.Equal(t, 42, p.TotalItems)
	assert.Equal(t, 0, p.Skip)
	assert.Equal(t, 100, p.Limit)
}

func TestWindow(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	assert.Equal(t, []int{3, 4}, Window(items, 2, 2))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, Window(items, 0, 10))
	assert.Empty(t, Window(items, 9, 2))
}
