package models

import "time"

// --- Core Models ---

// Store represents a single retail location. Every other record in the
// system belongs to exactly one store.
type Store struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Address     *string    `json:"address,omitempty"`
	City        *string    `json:"city,omitempty"`
	State       *string    `json:"state,omitempty"`
	ZipCode     *string    `json:"zip_code,omitempty"`
	Phone       *string    `json:"phone,omitempty"`
	Manager     *string    `json:"manager,omitempty"`
	OpeningDate *time.Time `json:"opening_date,omitempty"`
}

// TheftIncident is a single recorded theft event. DayOfWeek and Hour are
// derived from Timestamp once at ingestion and must stay consistent with it.
type TheftIncident struct {
	ID           int       `json:"id"`
	StoreID      int       `json:"store_id"`
	StoreName    string    `json:"store_name,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
	DayOfWeek    string    `json:"day_of_week"`
	Hour         int       `json:"hour"`
	Severity     string    `json:"severity"`
	Value        float64   `json:"value"`
	Resolved     bool      `json:"resolved"`
	VideoClipURL *string   `json:"video_clip_url,omitempty"`
}

// Severity levels for theft incidents.
const (
	SeverityLow    = "Low"
	SeverityMedium = "Medium"
	SeverityHigh   = "High"
)

// ValidSeverity reports whether s is one of the three severity levels.
func ValidSeverity(s string) bool {
	return s == SeverityLow || s == SeverityMedium || s == SeverityHigh
}

// RewardsRecord is one day of rewards-program state for a store.
// TotalMembers never decreases across increasing dates for a fixed store;
// NewMembers is the day-over-day delta.
type RewardsRecord struct {
	ID                 int       `json:"id"`
	StoreID            int       `json:"store_id"`
	StoreName          string    `json:"store_name,omitempty"`
	Date               time.Time `json:"date"`
	TotalMembers       int       `json:"total_members"`
	NewMembers         int       `json:"new_members"`
	CampaignEngagement float64   `json:"campaign_engagement"`
	ActiveCampaigns    int       `json:"active_campaigns"`
}

// CampaignPerformance summarizes one campaign at one store.
// RedemptionRate never exceeds ParticipationRate.
type CampaignPerformance struct {
	ID                int     `json:"id"`
	StoreID           int     `json:"store_id"`
	StoreName         string  `json:"store_name,omitempty"`
	Campaign          string  `json:"campaign"`
	ParticipationRate float64 `json:"participation_rate"`
	RedemptionRate    float64 `json:"redemption_rate"`
	ROI               float64 `json:"roi"`
}

// TrafficRecord is the daily visitor total for a store.
type TrafficRecord struct {
	ID            int       `json:"id"`
	StoreID       int       `json:"store_id"`
	StoreName     string    `json:"store_name,omitempty"`
	Date          time.Time `json:"date"`
	TotalVisitors int       `json:"total_visitors"`
}

// TrafficPattern is the typical visitor count for one day-of-week/hour
// bucket at a store, used for heatmaps.
type TrafficPattern struct {
	ID           int    `json:"id"`
	StoreID      int    `json:"store_id"`
	StoreName    string `json:"store_name,omitempty"`
	DayOfWeek    string `json:"day_of_week"`
	Hour         int    `json:"hour"`
	VisitorCount int    `json:"visitor_count"`
}

// EmployeeShiftRecord is one shift of mobile-usage observations at a store.
// TotalUsageMinutes approximates MobileUsageIncidents * AvgDurationMinutes.
type EmployeeShiftRecord struct {
	ID                   int       `json:"id"`
	StoreID              int       `json:"store_id"`
	StoreName            string    `json:"store_name,omitempty"`
	Date                 time.Time `json:"date"`
	Shift                string    `json:"shift"`
	MobileUsageIncidents int       `json:"mobile_usage_incidents"`
	AvgDurationMinutes   float64   `json:"avg_duration_minutes"`
	TotalUsageMinutes    int       `json:"total_usage_minutes"`
}

// Shift names.
const (
	ShiftMorning   = "Morning (6AM-2PM)"
	ShiftAfternoon = "Afternoon (2PM-10PM)"
	ShiftNight     = "Night (10PM-6AM)"
)

// MobileUsagePattern is the typical mobile-usage incident count for one
// day-of-week/hour bucket at a store, used for heatmaps.
type MobileUsagePattern struct {
	ID                   int    `json:"id"`
	StoreID              int    `json:"store_id"`
	StoreName            string `json:"store_name,omitempty"`
	DayOfWeek            string `json:"day_of_week"`
	Hour                 int    `json:"hour"`
	MobileUsageIncidents int    `json:"mobile_usage_incidents"`
}

// BusinessHealthRecord carries the per-store daily health scores and any
// alerts raised when they were computed. All scores are clamped to [0,100];
// OverallHealth is the weighted combination of the four sub-scores.
type BusinessHealthRecord struct {
	ID            int       `json:"id"`
	StoreID       int       `json:"store_id"`
	StoreName     string    `json:"store_name,omitempty"`
	Date          time.Time `json:"date"`
	OverallHealth float64   `json:"overall_health"`
	TheftScore    float64   `json:"theft_score"`
	RewardsScore  float64   `json:"rewards_score"`
	TrafficScore  float64   `json:"traffic_score"`
	EmployeeScore float64   `json:"employee_score"`
	Alerts        []string  `json:"alerts"`
}
