package analytics

import "sort"

// StoreUsage is the aggregated mobile-usage input for one store in a
// compliance comparison.
type StoreUsage struct {
	Store         string  `json:"store"`
	MeanIncidents float64 `json:"mean_incidents"`
	MeanDuration  float64 `json:"mean_duration"`
}

// ComplianceScore ranks a store by inverse mobile-usage badness, 0..100.
type ComplianceScore struct {
	Store string  `json:"store"`
	Score float64 `json:"score"`
}

// Weight of incident-goodness vs duration-goodness.
const (
	incidentWeight = 0.6
	durationWeight = 0.4
)

// ComplianceScores normalizes each store's incident count and duration by
// the maximum across the compared set, inverts the fractions into goodness
// scores, and combines them 0.6/0.4 scaled to a percentage. Stores are
// returned best first.
//
// When the maximum incident count or maximum duration across the set is 0
// the normalization is undefined; the function returns nil rather than
// divide by zero.
func ComplianceScores(usage []StoreUsage) []ComplianceScore {
	if len(usage) == 0 {
		return nil
	}

	var maxIncidents, maxDuration float64
	for _, u := range usage {
		if u.MeanIncidents > maxIncidents {
			maxIncidents = u.MeanIncidents
		}
		if u.MeanDuration > maxDuration {
			maxDuration = u.MeanDuration
		}
	}
	if maxIncidents == 0 || maxDuration == 0 {
		return nil
	}

	scores := make([]ComplianceScore, len(usage))
	for i, u := range usage {
		incidentGoodness := 1 - u.MeanIncidents/maxIncidents
		durationGoodness := 1 - u.MeanDuration/maxDuration
		scores[i] = ComplianceScore{
			Store: u.Store,
			Score: (incidentGoodness*incidentWeight + durationGoodness*durationWeight) * 100,
		}
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].Score > scores[j].Score })
	return scores
}
