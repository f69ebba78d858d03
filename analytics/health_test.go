package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultWeightsSumToOne(t *testing.T) {
	w := DefaultWeights
	assert.InDelta(t, 1.0, w.Theft+w.Rewards+w.Traffic+w.Employee, 1e-9)
}

func TestCombineIsFixedWeightedSum(t *testing.T) {
	s := SubScores{Theft: 80, Rewards: 60, Traffic: 70, Employee: 90}
	want := 0.25*80 + 0.25*60 + 0.30*70 + 0.20*90
	assert.InDelta(t, want, DefaultWeights.Combine(s), 1e-9)
}

func TestScoreClampsToRange(t *testing.T) {
	cases := []SubScores{
		{Theft: -40, Rewards: 150, Traffic: 55, Employee: 20},
		{Theft: 0, Rewards: 0, Traffic: 0, Employee: 0},
		{Theft: 100, Rewards: 100, Traffic: 100, Employee: 100},
		{Theft: 1000, Rewards: -1000, Traffic: 3.5, Employee: 99.9},
	}
	for _, s := range cases {
		h := Score(DefaultWeights, DefaultThresholds, s)
		for name, v := range map[string]float64{
			"overall":  h.Overall,
			"theft":    h.SubScores.Theft,
			"rewards":  h.SubScores.Rewards,
			"traffic":  h.SubScores.Traffic,
			"employee": h.SubScores.Employee,
		} {
			assert.GreaterOrEqual(t, v, 0.0, "%s below range for %+v", name, s)
			assert.LessOrEqual(t, v, 100.0, "%s above range for %+v", name, s)
		}
	}
}

func TestAlertThresholds(t *testing.T) {
	cases := []struct {
		name string
		in   SubScores
		want []string
	}{
		{"healthy", SubScores{60, 60, 60, 60}, []string{}},
		{"theft only", SubScores{49, 60, 60, 60}, []string{AlertHighTheft}},
		{"rewards only", SubScores{60, 49, 60, 60}, []string{AlertLowRewards}},
		{"traffic uses 40 not 50", SubScores{60, 60, 45, 60}, []string{}},
		{"traffic below 40", SubScores{60, 60, 39, 60}, []string{AlertTrafficDrop}},
		{"employee below 45", SubScores{60, 60, 60, 44}, []string{AlertExcessiveUsage}},
		{"boundary raises nothing", SubScores{50, 50, 40, 45}, []string{}},
		{"all at once", SubScores{10, 10, 10, 10}, []string{
			AlertHighTheft, AlertLowRewards, AlertTrafficDrop, AlertExcessiveUsage,
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, DefaultThresholds.Alerts(c.in))
		})
	}
}

func TestScoreAccumulatesIndependentAlerts(t *testing.T) {
	h := Score(DefaultWeights, DefaultThresholds, SubScores{Theft: 30, Rewards: 80, Traffic: 20, Employee: 80})
	assert.Equal(t, []string{AlertHighTheft, AlertTrafficDrop}, h.Alerts)
}

func TestDeriveSubScoresRange(t *testing.T) {
	cases := []DimensionInputs{
		{},
		{Theft: SeverityCounts{Low: 50, Medium: 50, High: 50}},
		{CampaignEngagement: 2.5, NewMembers: 500, TotalMembers: 1000},
		{Visitors: 5000, BaselineVisitors: 100},
		{UsageIncidents: 200, AvgUsageMinutes: 60},
	}
	for _, in := range cases {
		s := DeriveSubScores(in)
		for _, v := range []float64{s.Theft, s.Rewards, s.Traffic, s.Employee} {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 100.0)
		}
	}
}

func TestDeriveSubScoresDirections(t *testing.T) {
	quiet := DeriveSubScores(DimensionInputs{Theft: SeverityCounts{Low: 1}})
	rough := DeriveSubScores(DimensionInputs{Theft: SeverityCounts{High: 5}})
	assert.Greater(t, quiet.Theft, rough.Theft)

	busy := DeriveSubScores(DimensionInputs{Visitors: 120, BaselineVisitors: 100})
	slow := DeriveSubScores(DimensionInputs{Visitors: 50, BaselineVisitors: 100})
	assert.Greater(t, busy.Traffic, slow.Traffic)

	compliant := DeriveSubScores(DimensionInputs{UsageIncidents: 2, AvgUsageMinutes: 1})
	distracted := DeriveSubScores(DimensionInputs{UsageIncidents: 20, AvgUsageMinutes: 5})
	assert.Greater(t, compliant.Employee, distracted.Employee)
}

func TestDeriveSubScoresZeroBaseline(t *testing.T) {
	// No baseline means no traffic signal, not a division by zero.
	s := DeriveSubScores(DimensionInputs{Visitors: 100})
	assert.Equal(t, 0.0, s.Traffic)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-5))
	assert.Equal(t, 100.0, Clamp(250))
	assert.Equal(t, 42.5, Clamp(42.5))
}
