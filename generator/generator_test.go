package generator

import (
	"testing"
	"time"

	"app/analytics"
	"app/models"

	"github.com/stretchr/testify/assert"
)

func generate(t *testing.T, seed int64) *Dataset {
	t.Helper()
	g := New(seed, analytics.DefaultWeights, analytics.DefaultThresholds)
	return g.Generate(time.Date(2025, 6, 30, 15, 0, 0, 0, time.UTC), 60)
}

func TestGenerateIsDeterministic(t *testing.T) {
	a := generate(t, 42)
	b := generate(t, 42)
	assert.Equal(t, a, b)
}

func TestGenerateStores(t *testing.T) {
	ds := generate(t, 1)
	assert.Len(t, ds.Stores, len(DemoStores))
	for i, s := range ds.Stores {
		assert.Equal(t, i+1, s.ID)
		assert.Equal(t, DemoStores[i].Name, s.Name)
		assert.NotNil(t, s.Manager)
		assert.NotNil(t, s.OpeningDate)
	}
}

func TestTheftIncidentsAreConsistent(t *testing.T) {
	ds := generate(t, 2)
	assert.NotEmpty(t, ds.Theft)

	for _, inc := range ds.Theft {
		assert.True(t, models.ValidSeverity(inc.Severity), inc.Severity)
		assert.GreaterOrEqual(t, inc.Value, 5.0)
		assert.Less(t, inc.Value, 100.0)
		// Derived fields always agree with the timestamp.
		assert.Equal(t, inc.Timestamp.Weekday().String(), inc.DayOfWeek)
		assert.Equal(t, inc.Timestamp.Hour(), inc.Hour)
	}
}

func TestRewardsMembershipNeverShrinks(t *testing.T) {
	ds := generate(t, 3)
	last := make(map[string]int)
	for _, r := range ds.Rewards {
		if prev, ok := last[r.StoreName]; ok {
			assert.GreaterOrEqual(t, r.TotalMembers, prev, r.StoreName)
		}
		last[r.StoreName] = r.TotalMembers
		assert.GreaterOrEqual(t, r.NewMembers, 0)
	}
}

func TestTrafficPatternsCoverFullWeek(t *testing.T) {
	ds := generate(t, 4)
	// One cell per store per day/hour combination.
	assert.Len(t, ds.TrafficPatterns, len(DemoStores)*7*24)
	for _, p := range ds.TrafficPatterns {
		assert.GreaterOrEqual(t, p.VisitorCount, 0)
		_, ok := analytics.DayIndex(p.DayOfWeek)
		assert.True(t, ok, p.DayOfWeek)
		assert.GreaterOrEqual(t, p.Hour, 0)
		assert.Less(t, p.Hour, 24)
	}
}

func TestDailyTrafficNonNegative(t *testing.T) {
	ds := generate(t, 5)
	assert.Len(t, ds.Traffic, len(DemoStores)*60)
	for _, r := range ds.Traffic {
		assert.GreaterOrEqual(t, r.TotalVisitors, 0)
	}
}

func TestShiftUsageTotalsMatch(t *testing.T) {
	ds := generate(t, 6)
	assert.Len(t, ds.Shifts, len(DemoStores)*60*3)
	for _, s := range ds.Shifts {
		assert.GreaterOrEqual(t, s.MobileUsageIncidents, 0)
		assert.GreaterOrEqual(t, s.AvgDurationMinutes, 0.5)
		// Total minutes is the truncated product of count and duration.
		expected := int(float64(s.MobileUsageIncidents) * s.AvgDurationMinutes)
		assert.Equal(t, expected, s.TotalUsageMinutes)
	}
}

func TestHealthRecordsScoredThroughSharedPath(t *testing.T) {
	ds := generate(t, 7)
	assert.Len(t, ds.Health, len(DemoStores)*60)

	for _, h := range ds.Health {
		for _, score := range []float64{h.OverallHealth, h.TheftScore, h.RewardsScore, h.TrafficScore, h.EmployeeScore} {
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 100.0)
		}
		// The overall score is the fixed weighted combination of the
		// sub-scores (clamping never fires here because all inputs are
		// already in range).
		expected := analytics.DefaultWeights.Combine(analytics.SubScores{
			Theft:    h.TheftScore,
			Rewards:  h.RewardsScore,
			Traffic:  h.TrafficScore,
			Employee: h.EmployeeScore,
		})
		assert.InDelta(t, expected, h.OverallHealth, 1e-9)
		assert.NotNil(t, h.Alerts)
	}
}

func TestCampaignRedemptionNeverExceedsParticipation(t *testing.T) {
	ds := generate(t, 8)
	assert.Len(t, ds.Campaigns, len(DemoStores)*4)
	for _, c := range ds.Campaigns {
		assert.LessOrEqual(t, c.RedemptionRate, c.ParticipationRate)
		assert.Greater(t, c.ROI, 1.0)
	}
}
