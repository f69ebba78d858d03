package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComplianceScoresRanking(t *testing.T) {
	// Lower usage on both axes must rank strictly higher.
	usage := []StoreUsage{
		{Store: "A", MeanIncidents: 10, MeanDuration: 2.0},
		{Store: "B", MeanIncidents: 20, MeanDuration: 4.0},
	}
	scores := ComplianceScores(usage)

	assert.Len(t, scores, 2)
	assert.Equal(t, "A", scores[0].Store)
	assert.Equal(t, "B", scores[1].Store)
	assert.Greater(t, scores[0].Score, scores[1].Score)

	// A is half the worst on both axes: (0.5*0.6 + 0.5*0.4) * 100.
	assert.InDelta(t, 50.0, scores[0].Score, 1e-9)
	// B is the worst on both axes.
	assert.InDelta(t, 0.0, scores[1].Score, 1e-9)
}

func TestComplianceScoresAllZeroShortCircuits(t *testing.T) {
	// All-zero usage leaves the normalization undefined: no result, no NaN.
	usage := []StoreUsage{
		{Store: "A"},
		{Store: "B"},
	}
	assert.Nil(t, ComplianceScores(usage))
}

func TestComplianceScoresZeroDurationShortCircuits(t *testing.T) {
	usage := []StoreUsage{
		{Store: "A", MeanIncidents: 5, MeanDuration: 0},
		{Store: "B", MeanIncidents: 3, MeanDuration: 0},
	}
	assert.Nil(t, ComplianceScores(usage))
}

func TestComplianceScoresEmptyInput(t *testing.T) {
	assert.Nil(t, ComplianceScores(nil))
}

func TestComplianceScoresBounds(t *testing.T) {
	usage := []StoreUsage{
		{Store: "A", MeanIncidents: 1, MeanDuration: 0.5},
		{Store: "B", MeanIncidents: 7, MeanDuration: 3.2},
		{Store: "C", MeanIncidents: 4, MeanDuration: 1.1},
	}
	for _, s := range ComplianceScores(usage) {
		assert.GreaterOrEqual(t, s.Score, 0.0)
		assert.LessOrEqual(t, s.Score, 100.0)
	}
}
