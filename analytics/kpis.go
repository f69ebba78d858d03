package analytics

import (
	"sort"
	"time"

	"app/models"
)

// TheftKPIs summarizes a filtered theft incident set.
type TheftKPIs struct {
	TotalIncidents    int     `json:"total_incidents"`
	TotalValue        float64 `json:"total_value"`
	ResolvedIncidents int     `json:"resolved_incidents"`
	ResolutionRate    float64 `json:"resolution_rate"`
	DailyRate         float64 `json:"daily_rate"`
}

// ComputeTheftKPIs totals a theft incident set. The daily rate divides the
// incident count by the spanned days; a span of zero days reports 0.
func ComputeTheftKPIs(incidents []models.TheftIncident) TheftKPIs {
	k := TheftKPIs{TotalIncidents: len(incidents)}
	if len(incidents) == 0 {
		return k
	}

	first, last := incidents[0].Timestamp, incidents[0].Timestamp
	for _, inc := range incidents {
		k.TotalValue += inc.Value
		if inc.Resolved {
			k.ResolvedIncidents++
		}
		if inc.Timestamp.Before(first) {
			first = inc.Timestamp
		}
		if inc.Timestamp.After(last) {
			last = inc.Timestamp
		}
	}
	k.ResolutionRate = float64(k.ResolvedIncidents) / float64(k.TotalIncidents) * 100

	if days := int(last.Sub(first).Hours() / 24); days > 0 {
		k.DailyRate = float64(k.TotalIncidents) / float64(days)
	}
	return k
}

// SeverityBreakdown counts incidents per severity level.
func SeverityBreakdown(incidents []models.TheftIncident) SeverityCounts {
	var c SeverityCounts
	for _, inc := range incidents {
		switch inc.Severity {
		case models.SeverityLow:
			c.Low++
		case models.SeverityMedium:
			c.Medium++
		case models.SeverityHigh:
			c.High++
		}
	}
	return c
}

// TheftStoreSummary compares theft impact for one store.
type TheftStoreSummary struct {
	Store      string  `json:"store"`
	Incidents  int     `json:"incidents"`
	AvgValue   float64 `json:"avg_value"`
	TotalValue float64 `json:"total_value"`
}

// TheftByStore aggregates incidents per store, ordered by incident count
// descending.
func TheftByStore(incidents []models.TheftIncident) []TheftStoreSummary {
	groups := GroupBy(incidents, func(i models.TheftIncident) string { return i.StoreName })
	out := make([]TheftStoreSummary, 0, len(groups))
	for store, group := range groups {
		s := TheftStoreSummary{Store: store, Incidents: len(group)}
		for _, inc := range group {
			s.TotalValue += inc.Value
		}
		s.AvgValue = s.TotalValue / float64(len(group))
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Incidents > out[j].Incidents })
	return out
}

// RewardsKPIs summarizes a filtered rewards record set.
type RewardsKPIs struct {
	TotalMembers  int     `json:"total_members"`
	NewMembers    int     `json:"new_members"`
	GrowthRate    float64 `json:"growth_rate"`
	DailyGrowth   float64 `json:"daily_growth"`
	AvgEngagement float64 `json:"avg_engagement"`
}

// ComputeRewardsKPIs reads membership growth out of a rewards record set.
// Totals are the sum of each store's latest record; new members are the
// first-to-last delta per store; the growth rate is that delta as a
// percentage of the starting total.
func ComputeRewardsKPIs(records []models.RewardsRecord) RewardsKPIs {
	var k RewardsKPIs
	if len(records) == 0 {
		return k
	}

	type endpoints struct{ first, last models.RewardsRecord }
	byStore := make(map[string]*endpoints)
	minDate, maxDate := records[0].Date, records[0].Date
	var engagement float64

	for _, r := range records {
		ep, ok := byStore[r.StoreName]
		if !ok {
			byStore[r.StoreName] = &endpoints{first: r, last: r}
		} else {
			if r.Date.Before(ep.first.Date) {
				ep.first = r
			}
			if !r.Date.Before(ep.last.Date) {
				ep.last = r
			}
		}
		if r.Date.Before(minDate) {
			minDate = r.Date
		}
		if r.Date.After(maxDate) {
			maxDate = r.Date
		}
		engagement += r.CampaignEngagement
	}

	var firstTotal int
	for _, ep := range byStore {
		k.TotalMembers += ep.last.TotalMembers
		firstTotal += ep.first.TotalMembers
	}
	k.NewMembers = k.TotalMembers - firstTotal
	if firstTotal > 0 {
		k.GrowthRate = float64(k.NewMembers) / float64(firstTotal) * 100
	}
	if days := int(maxDate.Sub(minDate).Hours() / 24); days > 0 {
		k.DailyGrowth = float64(k.NewMembers) / float64(days)
	}
	k.AvgEngagement = engagement / float64(len(records)) * 100
	return k
}

// RewardsStoreSummary compares rewards growth for one store.
type RewardsStoreSummary struct {
	Store        string `json:"store"`
	TotalMembers int    `json:"total_members"`
	NewMembers   int    `json:"new_members"`
}

// RewardsByStore reports each store's latest member total and first-to-last
// growth, ordered by member count descending.
func RewardsByStore(records []models.RewardsRecord) []RewardsStoreSummary {
	groups := GroupBy(records, func(r models.RewardsRecord) string { return r.StoreName })
	out := make([]RewardsStoreSummary, 0, len(groups))
	for store, group := range groups {
		first, last := group[0], group[0]
		for _, r := range group {
			if r.Date.Before(first.Date) {
				first = r
			}
			if !r.Date.Before(last.Date) {
				last = r
			}
		}
		out = append(out, RewardsStoreSummary{
			Store:        store,
			TotalMembers: last.TotalMembers,
			NewMembers:   last.TotalMembers - first.TotalMembers,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalMembers > out[j].TotalMembers })
	return out
}

// CampaignSummary averages one campaign's metrics across stores.
type CampaignSummary struct {
	Campaign          string  `json:"campaign"`
	ParticipationRate float64 `json:"participation_rate"`
	RedemptionRate    float64 `json:"redemption_rate"`
	ROI               float64 `json:"roi"`
}

// SummarizeCampaigns averages campaign performance per campaign name,
// ordered by participation descending.
func SummarizeCampaigns(records []models.CampaignPerformance) []CampaignSummary {
	groups := GroupBy(records, func(c models.CampaignPerformance) string { return c.Campaign })
	out := make([]CampaignSummary, 0, len(groups))
	for name, group := range groups {
		s := CampaignSummary{Campaign: name}
		for _, c := range group {
			s.ParticipationRate += c.ParticipationRate
			s.RedemptionRate += c.RedemptionRate
			s.ROI += c.ROI
		}
		n := float64(len(group))
		s.ParticipationRate /= n
		s.RedemptionRate /= n
		s.ROI /= n
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ParticipationRate > out[j].ParticipationRate })
	return out
}

// TrafficKPIs summarizes a filtered daily traffic set.
type TrafficKPIs struct {
	TotalVisitors    int       `json:"total_visitors"`
	AvgDailyVisitors float64   `json:"avg_daily_visitors"`
	BusiestDate      time.Time `json:"busiest_date"`
	BusiestVisitors  int       `json:"busiest_visitors"`
	GrowthRate       float64   `json:"growth_rate"`
}

// ComputeTrafficKPIs totals a daily traffic set. The growth rate compares
// the mean daily total of the first and last seven days of the interval.
func ComputeTrafficKPIs(records []models.TrafficRecord) TrafficKPIs {
	var k TrafficKPIs
	if len(records) == 0 {
		return k
	}

	daily := DailySeries(records,
		func(r models.TrafficRecord) time.Time { return r.Date },
		func(r models.TrafficRecord) float64 { return float64(r.TotalVisitors) },
		Sum)

	var total float64
	for _, p := range daily {
		total += p.Value
		if int(p.Value) > k.BusiestVisitors {
			k.BusiestVisitors = int(p.Value)
			k.BusiestDate = p.Date
		}
	}
	k.TotalVisitors = int(total)
	k.AvgDailyVisitors = total / float64(len(daily))

	firstStart := daily[0].Date
	lastEnd := daily[len(daily)-1].Date
	var firstSum, lastSum float64
	var firstN, lastN int
	for _, p := range daily {
		if !p.Date.After(firstStart.AddDate(0, 0, 7)) {
			firstSum += p.Value
			firstN++
		}
		if !p.Date.Before(lastEnd.AddDate(0, 0, -7)) {
			lastSum += p.Value
			lastN++
		}
	}
	if firstN > 0 && lastN > 0 && firstSum > 0 {
		firstAvg := firstSum / float64(firstN)
		lastAvg := lastSum / float64(lastN)
		k.GrowthRate = (lastAvg - firstAvg) / firstAvg * 100
	}
	return k
}

// EmployeeKPIs summarizes a filtered shift record set.
type EmployeeKPIs struct {
	TotalIncidents    int     `json:"total_incidents"`
	AvgDailyIncidents float64 `json:"avg_daily_incidents"`
	AvgDuration       float64 `json:"avg_duration"`
	TotalUsageMinutes int     `json:"total_usage_minutes"`
}

// ComputeEmployeeKPIs totals mobile usage across a shift record set.
func ComputeEmployeeKPIs(records []models.EmployeeShiftRecord) EmployeeKPIs {
	var k EmployeeKPIs
	if len(records) == 0 {
		return k
	}

	var duration float64
	for _, r := range records {
		k.TotalIncidents += r.MobileUsageIncidents
		k.TotalUsageMinutes += r.TotalUsageMinutes
		duration += r.AvgDurationMinutes
	}
	k.AvgDuration = duration / float64(len(records))

	daily := DailySeries(records,
		func(r models.EmployeeShiftRecord) time.Time { return r.Date },
		func(r models.EmployeeShiftRecord) float64 { return float64(r.MobileUsageIncidents) },
		Sum)
	var sum float64
	for _, p := range daily {
		sum += p.Value
	}
	k.AvgDailyIncidents = sum / float64(len(daily))
	return k
}

// ShiftSummary aggregates usage for one shift.
type ShiftSummary struct {
	Shift       string  `json:"shift"`
	Incidents   int     `json:"incidents"`
	AvgDuration float64 `json:"avg_duration"`
}

// UsageByShift totals incidents per shift, ordered by incident count
// descending.
func UsageByShift(records []models.EmployeeShiftRecord) []ShiftSummary {
	groups := GroupBy(records, func(r models.EmployeeShiftRecord) string { return r.Shift })
	out := make([]ShiftSummary, 0, len(groups))
	for shift, group := range groups {
		s := ShiftSummary{Shift: shift}
		var duration float64
		for _, r := range group {
			s.Incidents += r.MobileUsageIncidents
			duration += r.AvgDurationMinutes
		}
		s.AvgDuration = duration / float64(len(group))
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Incidents > out[j].Incidents })
	return out
}

// UsageByStore aggregates the per-store means that feed the compliance
// comparison.
func UsageByStore(records []models.EmployeeShiftRecord) []StoreUsage {
	groups := GroupBy(records, func(r models.EmployeeShiftRecord) string { return r.StoreName })
	stores := make([]string, 0, len(groups))
	for store := range groups {
		stores = append(stores, store)
	}
	sort.Strings(stores)

	out := make([]StoreUsage, 0, len(stores))
	for _, store := range stores {
		group := groups[store]
		u := StoreUsage{Store: store}
		for _, r := range group {
			u.MeanIncidents += float64(r.MobileUsageIncidents)
			u.MeanDuration += r.AvgDurationMinutes
		}
		n := float64(len(group))
		u.MeanIncidents /= n
		u.MeanDuration /= n
		out = append(out, u)
	}
	return out
}

// LatestHealthByStore picks each store's most recent health record, ordered
// by store name.
func LatestHealthByStore(records []models.BusinessHealthRecord) []models.BusinessHealthRecord {
	latest := make(map[string]models.BusinessHealthRecord)
	for _, r := range records {
		if cur, ok := latest[r.StoreName]; !ok || r.Date.After(cur.Date) {
			latest[r.StoreName] = r
		}
	}
	out := make([]models.BusinessHealthRecord, 0, len(latest))
	for _, r := range latest {
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StoreName < out[j].StoreName })
	return out
}
