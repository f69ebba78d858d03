package models

import "time"

// --- Request Payloads ---

type CreateStoreRequest struct {
	Name        string     `json:"name"`
	Address     *string    `json:"address,omitempty"`
	City        *string    `json:"city,omitempty"`
	State       *string    `json:"state,omitempty"`
	ZipCode     *string    `json:"zip_code,omitempty"`
	Phone       *string    `json:"phone,omitempty"`
	Manager     *string    `json:"manager,omitempty"`
	OpeningDate *time.Time `json:"opening_date,omitempty"`
}

// CreateTheftIncidentRequest omits day_of_week and hour: both are derived
// from the timestamp server-side so they can never disagree with it.
type CreateTheftIncidentRequest struct {
	StoreID      int       `json:"store_id"`
	Timestamp    time.Time `json:"timestamp"`
	Severity     string    `json:"severity"`
	Value        float64   `json:"value"`
	Resolved     bool      `json:"resolved"`
	VideoClipURL *string   `json:"video_clip_url,omitempty"`
}

type CreateRewardsRequest struct {
	StoreID            int       `json:"store_id"`
	Date               time.Time `json:"date"`
	TotalMembers       int       `json:"total_members"`
	NewMembers         int       `json:"new_members"`
	CampaignEngagement float64   `json:"campaign_engagement"`
	ActiveCampaigns    int       `json:"active_campaigns"`
}

type CreateCampaignRequest struct {
	StoreID           int     `json:"store_id"`
	Campaign          string  `json:"campaign"`
	ParticipationRate float64 `json:"participation_rate"`
	RedemptionRate    float64 `json:"redemption_rate"`
	ROI               float64 `json:"roi"`
}

type CreateTrafficRequest struct {
	StoreID       int       `json:"store_id"`
	Date          time.Time `json:"date"`
	TotalVisitors int       `json:"total_visitors"`
}

type CreateEmployeeShiftRequest struct {
	StoreID              int       `json:"store_id"`
	Date                 time.Time `json:"date"`
	Shift                string    `json:"shift"`
	MobileUsageIncidents int       `json:"mobile_usage_incidents"`
	AvgDurationMinutes   float64   `json:"avg_duration_minutes"`
	TotalUsageMinutes    int       `json:"total_usage_minutes"`
}

// CreateBusinessHealthRequest carries the raw sub-scores only. The overall
// score and alert list are always computed server-side from them.
type CreateBusinessHealthRequest struct {
	StoreID       int       `json:"store_id"`
	Date          time.Time `json:"date"`
	TheftScore    float64   `json:"theft_score"`
	RewardsScore  float64   `json:"rewards_score"`
	TrafficScore  float64   `json:"traffic_score"`
	EmployeeScore float64   `json:"employee_score"`
}
