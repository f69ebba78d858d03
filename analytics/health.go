package analytics

// Weights are the sub-score weights for the overall health combination.
// They must sum to 1.
type Weights struct {
	Theft    float64 `json:"theft"`
	Rewards  float64 `json:"rewards"`
	Traffic  float64 `json:"traffic"`
	Employee float64 `json:"employee"`
}

// DefaultWeights are the demo constants.
var DefaultWeights = Weights{Theft: 0.25, Rewards: 0.25, Traffic: 0.30, Employee: 0.20}

// Thresholds are the alert cutoffs: a sub-score strictly below its
// threshold raises the matching alert.
type Thresholds struct {
	Theft    float64 `json:"theft"`
	Rewards  float64 `json:"rewards"`
	Traffic  float64 `json:"traffic"`
	Employee float64 `json:"employee"`
}

// DefaultThresholds are the demo constants.
var DefaultThresholds = Thresholds{Theft: 50, Rewards: 50, Traffic: 40, Employee: 45}

// Alert texts. These are part of the persisted record, not display strings.
const (
	AlertHighTheft      = "High theft incidents"
	AlertLowRewards     = "Low rewards program performance"
	AlertTrafficDrop    = "Concerning drop in store traffic"
	AlertExcessiveUsage = "Excessive employee mobile usage"
)

// SubScores are the four 0..100 dimension scores feeding overall health.
type SubScores struct {
	Theft    float64 `json:"theft_score"`
	Rewards  float64 `json:"rewards_score"`
	Traffic  float64 `json:"traffic_score"`
	Employee float64 `json:"employee_score"`
}

// HealthScore is a fully derived health record for one store/date: clamped
// sub-scores, their weighted combination, and any alerts raised.
type HealthScore struct {
	SubScores
	Overall float64  `json:"overall_health"`
	Alerts  []string `json:"alerts"`
}

// Clamp pins a score to [0,100]. Scores are clamped, never wrapped, and
// out-of-range inputs are not an error.
func Clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Combine returns the weighted combination of the sub-scores, unclamped.
func (w Weights) Combine(s SubScores) float64 {
	return w.Theft*s.Theft + w.Rewards*s.Rewards + w.Traffic*s.Traffic + w.Employee*s.Employee
}

// Alerts evaluates each sub-score against its threshold. A record can
// accumulate any number of alerts; the checks are independent.
func (t Thresholds) Alerts(s SubScores) []string {
	alerts := []string{}
	if s.Theft < t.Theft {
		alerts = append(alerts, AlertHighTheft)
	}
	if s.Rewards < t.Rewards {
		alerts = append(alerts, AlertLowRewards)
	}
	if s.Traffic < t.Traffic {
		alerts = append(alerts, AlertTrafficDrop)
	}
	if s.Employee < t.Employee {
		alerts = append(alerts, AlertExcessiveUsage)
	}
	return alerts
}

// Score combines raw sub-scores into a health record: the overall score is
// the weighted combination, and every score is clamped to [0,100] after
// combination. Alerts are evaluated on the unclamped sub-scores, matching
// how the record's alert list is persisted.
func Score(w Weights, t Thresholds, s SubScores) HealthScore {
	overall := w.Combine(s)
	return HealthScore{
		SubScores: SubScores{
			Theft:    Clamp(s.Theft),
			Rewards:  Clamp(s.Rewards),
			Traffic:  Clamp(s.Traffic),
			Employee: Clamp(s.Employee),
		},
		Overall: Clamp(overall),
		Alerts:  t.Alerts(s),
	}
}

// SeverityCounts is a theft severity distribution for one store/date.
type SeverityCounts struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

// DimensionInputs are the raw per-store/per-date metrics the sub-scores are
// derived from.
type DimensionInputs struct {
	Theft              SeverityCounts
	CampaignEngagement float64 // 0..1 fraction
	NewMembers         int
	TotalMembers       int
	Visitors           int
	BaselineVisitors   int // expected daily visitors for the store
	UsageIncidents     int
	AvgUsageMinutes    float64
}

// Severity penalties and usage penalties for the derivation below.
const (
	penaltyLow      = 2.0
	penaltyMedium   = 5.0
	penaltyHigh     = 10.0
	penaltyIncident = 1.5
	penaltyMinute   = 4.0
	fullMarksGrowth = 0.01 // 1% daily member growth scores 100 on that half
)

// DeriveSubScores turns raw dimension inputs into the four 0..100
// sub-scores.
//
//   - theft starts at 100 and loses a severity-weighted penalty per incident
//   - rewards blends campaign engagement with daily member growth
//   - traffic is the day's visitors relative to the store baseline
//   - employee starts at 100 and loses per incident and per usage minute
func DeriveSubScores(in DimensionInputs) SubScores {
	theft := 100 - penaltyLow*float64(in.Theft.Low) - penaltyMedium*float64(in.Theft.Medium) - penaltyHigh*float64(in.Theft.High)

	growth := 0.0
	if in.TotalMembers > 0 {
		growth = float64(in.NewMembers) / float64(in.TotalMembers)
	}
	engagement := in.CampaignEngagement
	if engagement > 1 {
		engagement = 1
	}
	growthPart := growth / fullMarksGrowth
	if growthPart > 1 {
		growthPart = 1
	}
	rewards := 100 * (0.5*engagement + 0.5*growthPart)

	traffic := 0.0
	if in.BaselineVisitors > 0 {
		traffic = 100 * float64(in.Visitors) / float64(in.BaselineVisitors)
	}

	employee := 100 - penaltyIncident*float64(in.UsageIncidents) - penaltyMinute*in.AvgUsageMinutes

	return SubScores{
		Theft:    Clamp(theft),
		Rewards:  Clamp(rewards),
		Traffic:  Clamp(traffic),
		Employee: Clamp(employee),
	}
}
