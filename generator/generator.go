// Package generator produces the synthetic demo dataset the dashboard runs
// on. The data is random but shaped: theft clusters in the evening, rewards
// membership only grows, traffic has rush-hour and weekend peaks, and the
// business-health records are scored through the same analytics code the
// API uses at request time.
package generator

import (
	"math"
	"math/rand"
	"time"

	"app/analytics"
	"app/models"
	"app/utils"
)

// Profile describes one demo store's character. The factors drive how much
// theft, traffic, and phone usage the store generates.
type Profile struct {
	Name           string
	Address        string
	City           string
	State          string
	ZipCode        string
	Phone          string
	Manager        string
	Opened         string // YYYY-MM-DD
	TheftFactor    float64
	BusyStore      bool
	HighCompliance bool
	BaseMembers    int
	BaseVisitors   int
}

// DemoStores are the five demo locations.
var DemoStores = []Profile{
	{
		Name: "Downtown Mart", Address: "101 Main St", City: "Springfield", State: "IL",
		ZipCode: "62701", Phone: "217-555-0101", Manager: "Alice Nguyen", Opened: "2017-03-15",
		TheftFactor: 0.5, BusyStore: true, BaseMembers: 2500, BaseVisitors: 650,
	},
	{
		Name: "Riverside Convenience", Address: "22 River Rd", City: "Springfield", State: "IL",
		ZipCode: "62702", Phone: "217-555-0102", Manager: "Marcus Webb", Opened: "2018-09-22",
		TheftFactor: 0.3, BusyStore: true, BaseMembers: 1800, BaseVisitors: 650,
	},
	{
		Name: "Oakwood Express", Address: "340 Oakwood Ave", City: "Chatham", State: "IL",
		ZipCode: "62629", Phone: "217-555-0103", Manager: "Priya Shah", Opened: "2019-05-10",
		TheftFactor: 0.2, HighCompliance: true, BaseMembers: 1500, BaseVisitors: 350,
	},
	{
		Name: "Sunset Shop & Go", Address: "88 Sunset Blvd", City: "Rochester", State: "IL",
		ZipCode: "62563", Phone: "217-555-0104", Manager: "Dan Kowalski", Opened: "2020-11-05",
		TheftFactor: 0.2, HighCompliance: true, BaseMembers: 900, BaseVisitors: 350,
	},
	{
		Name: "Hillside Corner Store", Address: "7 Hillcrest Dr", City: "Sherman", State: "IL",
		ZipCode: "62684", Phone: "217-555-0105", Manager: "Rosa Delgado", Opened: "2021-07-30",
		TheftFactor: 0.2, BaseMembers: 600, BaseVisitors: 350,
	},
}

// Dataset is one complete generated demo dataset. StoreID on every record
// is the 1-based index into Stores; the persistence layer remaps those to
// real keys on insert.
type Dataset struct {
	Stores          []models.Store
	Theft           []models.TheftIncident
	Rewards         []models.RewardsRecord
	Campaigns       []models.CampaignPerformance
	Traffic         []models.TrafficRecord
	TrafficPatterns []models.TrafficPattern
	Shifts          []models.EmployeeShiftRecord
	UsagePatterns   []models.MobileUsagePattern
	Health          []models.BusinessHealthRecord
}

// Generator produces datasets from a seeded random stream, so the same seed
// always yields the same data.
type Generator struct {
	rng        *rand.Rand
	weights    analytics.Weights
	thresholds analytics.Thresholds
}

// New returns a Generator with its own random stream. The weights and
// thresholds are used to score the generated health records.
func New(seed int64, w analytics.Weights, t analytics.Thresholds) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed)), weights: w, thresholds: t}
}

// Generate builds a dataset spanning the `days` days ending at `end`.
func (g *Generator) Generate(end time.Time, days int) *Dataset {
	end = midnight(end)
	start := end.AddDate(0, 0, -days+1)

	ds := &Dataset{}
	g.generateStores(ds)
	g.generateTheft(ds, start, days)
	g.generateRewards(ds, start, days)
	g.generateCampaigns(ds)
	g.generateTraffic(ds, start, days)
	g.generateEmployees(ds, start, days)
	g.generateHealth(ds, start, days)
	return ds
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// gauss draws from a normal distribution with the given mean and spread.
func (g *Generator) gauss(mean, sd float64) float64 {
	return g.rng.NormFloat64()*sd + mean
}

// uniform draws from [lo, hi).
func (g *Generator) uniform(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}

func (g *Generator) generateStores(ds *Dataset) {
	for i, p := range DemoStores {
		p := p
		opened, _ := time.Parse("2006-01-02", p.Opened)
		ds.Stores = append(ds.Stores, models.Store{
			ID:          i + 1,
			Name:        p.Name,
			Address:     &p.Address,
			City:        &p.City,
			State:       &p.State,
			ZipCode:     &p.ZipCode,
			Phone:       &p.Phone,
			Manager:     &p.Manager,
			OpeningDate: &opened,
		})
	}
}

func (g *Generator) generateTheft(ds *Dataset, start time.Time, days int) {
	for i, p := range DemoStores {
		attempts := int(float64(days*24) * p.TheftFactor * 0.03)
		for a := 0; a < attempts; a++ {
			ts := start.
				AddDate(0, 0, g.rng.Intn(days)).
				Add(time.Duration(g.rng.Intn(24)) * time.Hour)

			// Incidents concentrate in the evening window.
			if ts.Hour() < 17 || ts.Hour() > 22 {
				if g.rng.Float64() < 0.7 {
					continue
				}
			}

			severity := models.SeverityLow
			switch r := g.rng.Float64(); {
			case r < 0.4:
				severity = models.SeverityLow
			case r < 0.8:
				severity = models.SeverityMedium
			default:
				severity = models.SeverityHigh
			}

			day, hour := utils.DeriveDayHour(ts)
			ds.Theft = append(ds.Theft, models.TheftIncident{
				StoreID:   i + 1,
				StoreName: p.Name,
				Timestamp: ts,
				DayOfWeek: day,
				Hour:      hour,
				Severity:  severity,
				Value:     float64(5 + g.rng.Intn(95)),
				Resolved:  g.rng.Float64() < 0.7,
			})
		}
	}
}

// Campaign windows relative to the dataset start, matching the demo
// campaign calendar.
type campaignWindow struct {
	name       string
	startDay   int
	endDay     int // -1 runs to the end of the dataset
	engagement float64
}

var demoCampaigns = []campaignWindow{
	{name: "Double Points Weekend", startDay: 10, endDay: 12, engagement: 0.4},
	{name: "Free Coffee Month", startDay: 20, endDay: 50, engagement: 0.6},
	{name: "Summer Savings", startDay: 40, endDay: -1, engagement: 0.5},
}

func (g *Generator) generateRewards(ds *Dataset, start time.Time, days int) {
	for i, p := range DemoStores {
		members := float64(p.BaseMembers)
		for d := 0; d < days; d++ {
			date := start.AddDate(0, 0, d)

			growthRate := g.gauss(0.003, 0.001)
			if p.BusyStore {
				growthRate = g.gauss(0.005, 0.002)
			}
			newMembers := int(members * growthRate)
			if newMembers < 0 {
				newMembers = 0 // membership never shrinks
			}
			members += float64(newMembers)

			var engagement float64
			var active int
			for _, c := range demoCampaigns {
				if d >= c.startDay && (c.endDay < 0 || d <= c.endDay) {
					engagement += c.engagement
					active++
				}
			}

			ds.Rewards = append(ds.Rewards, models.RewardsRecord{
				StoreID:            i + 1,
				StoreName:          p.Name,
				Date:               date,
				TotalMembers:       int(members),
				NewMembers:         newMembers,
				CampaignEngagement: engagement,
				ActiveCampaigns:    active,
			})
		}
	}
}

func (g *Generator) generateCampaigns(ds *Dataset) {
	names := []string{"Double Points Weekend", "Free Coffee Month", "Summer Savings", "Birthday Rewards"}
	for i, p := range DemoStores {
		for _, name := range names {
			participation := g.uniform(20, 80)
			ds.Campaigns = append(ds.Campaigns, models.CampaignPerformance{
				StoreID:           i + 1,
				StoreName:         p.Name,
				Campaign:          name,
				ParticipationRate: participation,
				RedemptionRate:    participation * g.uniform(0.3, 0.8),
				ROI:               g.uniform(1.1, 3.5),
			})
		}
	}
}

// hourlyTraffic picks the typical visitor load for an hour of the day.
func (g *Generator) hourlyTraffic(hour int, busy bool) float64 {
	type band struct{ busyMean, busySD, quietMean, quietSD float64 }
	var b band
	switch {
	case hour >= 7 && hour <= 9: // morning rush
		b = band{70, 15, 40, 10}
	case hour >= 11 && hour <= 13: // lunch
		b = band{60, 10, 35, 8}
	case hour >= 16 && hour <= 19: // evening rush
		b = band{80, 20, 50, 15}
	case hour >= 20 && hour <= 22:
		b = band{40, 10, 30, 8}
	case hour <= 5:
		b = band{15, 5, 8, 3}
	default:
		b = band{30, 8, 20, 5}
	}
	if busy {
		return g.gauss(b.busyMean, b.busySD)
	}
	return g.gauss(b.quietMean, b.quietSD)
}

func (g *Generator) generateTraffic(ds *Dataset, start time.Time, days int) {
	for i, p := range DemoStores {
		// Typical-week heatmap pattern, one cell per day/hour.
		for _, day := range analytics.WeekDays {
			weekend := day == "Saturday" || day == "Sunday"
			for hour := 0; hour < 24; hour++ {
				traffic := g.hourlyTraffic(hour, p.BusyStore)
				if weekend {
					if hour >= 9 && hour <= 18 {
						traffic *= 1.3
					} else if hour >= 21 || hour <= 2 {
						traffic *= 1.5
					}
				}
				count := int(traffic)
				if count < 0 {
					count = 0
				}
				ds.TrafficPatterns = append(ds.TrafficPatterns, models.TrafficPattern{
					StoreID:      i + 1,
					StoreName:    p.Name,
					DayOfWeek:    day,
					Hour:         hour,
					VisitorCount: count,
				})
			}
		}

		// Daily totals with a weekend boost, mild seasonality, and a slight
		// upward trend.
		for d := 0; d < days; d++ {
			date := start.AddDate(0, 0, d)
			dayFactor := 1.0
			if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
				dayFactor = 1.3
			}
			seasonal := 1 + 0.2*math.Sin(float64(date.YearDay())/365*2*math.Pi)
			trend := 1 + 0.001*float64(d)
			noise := g.gauss(1, 0.1)

			visitors := int(float64(p.BaseVisitors) * dayFactor * seasonal * trend * noise)
			if visitors < 0 {
				visitors = 0
			}
			ds.Traffic = append(ds.Traffic, models.TrafficRecord{
				StoreID:       i + 1,
				StoreName:     p.Name,
				Date:          date,
				TotalVisitors: visitors,
			})
		}
	}
}

func (g *Generator) generateEmployees(ds *Dataset, start time.Time, days int) {
	shifts := []string{models.ShiftMorning, models.ShiftAfternoon, models.ShiftNight}

	for i, p := range DemoStores {
		// Typical-week usage heatmap.
		for _, day := range analytics.WeekDays {
			weekend := day == "Saturday" || day == "Sunday"
			for hour := 0; hour < 24; hour++ {
				var usage float64
				switch {
				case hour <= 5: // thin overnight staffing
					usage = g.gauss(8, 3)
					if p.HighCompliance {
						usage = g.gauss(4, 2)
					}
				case (hour >= 11 && hour <= 14) || (hour >= 17 && hour <= 20): // meal rushes
					usage = g.gauss(5, 2)
					if p.HighCompliance {
						usage = g.gauss(2, 1)
					}
				default:
					usage = g.gauss(6, 2.5)
					if p.HighCompliance {
						usage = g.gauss(3, 1.5)
					}
				}
				if weekend {
					usage *= 0.8
				}
				count := int(usage)
				if count < 0 {
					count = 0
				}
				ds.UsagePatterns = append(ds.UsagePatterns, models.MobileUsagePattern{
					StoreID:              i + 1,
					StoreName:            p.Name,
					DayOfWeek:            day,
					Hour:                 hour,
					MobileUsageIncidents: count,
				})
			}
		}

		// Per-shift records.
		for d := 0; d < days; d++ {
			date := start.AddDate(0, 0, d)
			weekend := date.Weekday() == time.Saturday || date.Weekday() == time.Sunday

			for _, shift := range shifts {
				var incidents float64
				switch shift {
				case models.ShiftMorning:
					incidents = g.gauss(20, 6)
					if p.HighCompliance {
						incidents = g.gauss(12, 4)
					}
				case models.ShiftAfternoon:
					incidents = g.gauss(25, 8)
					if p.HighCompliance {
						incidents = g.gauss(15, 5)
					}
				default:
					incidents = g.gauss(18, 5)
					if p.HighCompliance {
						incidents = g.gauss(8, 3)
					}
				}
				if weekend {
					incidents *= 0.8
				}
				count := int(incidents)
				if count < 0 {
					count = 0
				}

				duration := g.gauss(2.5, 0.8)
				if p.HighCompliance {
					duration = g.gauss(1.5, 0.5)
				}
				if duration < 0.5 {
					duration = 0.5
				}

				total := int(float64(count) * duration)
				if total < 0 {
					total = 0
				}

				ds.Shifts = append(ds.Shifts, models.EmployeeShiftRecord{
					StoreID:              i + 1,
					StoreName:            p.Name,
					Date:                 date,
					Shift:                shift,
					MobileUsageIncidents: count,
					AvgDurationMinutes:   duration,
					TotalUsageMinutes:    total,
				})
			}
		}
	}
}

// generateHealth scores each store/day from the data generated above, using
// the same scoring path the API uses, so demo records and live records can
// never disagree on formula.
func (g *Generator) generateHealth(ds *Dataset, start time.Time, days int) {
	type storeDay struct {
		store int
		day   int
	}
	dayIndex := func(t time.Time) int { return int(midnight(t).Sub(start).Hours() / 24) }

	theftByDay := make(map[storeDay]analytics.SeverityCounts)
	for _, t := range ds.Theft {
		k := storeDay{t.StoreID, dayIndex(t.Timestamp)}
		c := theftByDay[k]
		switch t.Severity {
		case models.SeverityLow:
			c.Low++
		case models.SeverityMedium:
			c.Medium++
		default:
			c.High++
		}
		theftByDay[k] = c
	}

	rewardsByDay := make(map[storeDay]models.RewardsRecord)
	for _, r := range ds.Rewards {
		rewardsByDay[storeDay{r.StoreID, dayIndex(r.Date)}] = r
	}
	trafficByDay := make(map[storeDay]int)
	for _, t := range ds.Traffic {
		trafficByDay[storeDay{t.StoreID, dayIndex(t.Date)}] = t.TotalVisitors
	}

	type usage struct {
		incidents int
		duration  float64
		shifts    int
	}
	usageByDay := make(map[storeDay]usage)
	for _, s := range ds.Shifts {
		k := storeDay{s.StoreID, dayIndex(s.Date)}
		u := usageByDay[k]
		u.incidents += s.MobileUsageIncidents
		u.duration += s.AvgDurationMinutes
		u.shifts++
		usageByDay[k] = u
	}

	for i, p := range DemoStores {
		for d := 0; d < days; d++ {
			k := storeDay{i + 1, d}
			rewards := rewardsByDay[k]
			u := usageByDay[k]

			in := analytics.DimensionInputs{
				Theft:              theftByDay[k],
				CampaignEngagement: rewards.CampaignEngagement,
				NewMembers:         rewards.NewMembers,
				TotalMembers:       rewards.TotalMembers,
				Visitors:           trafficByDay[k],
				BaselineVisitors:   p.BaseVisitors,
			}
			if u.shifts > 0 {
				// Per-shift means keep the employee dimension on the same
				// scale regardless of shift count.
				in.UsageIncidents = u.incidents / u.shifts
				in.AvgUsageMinutes = u.duration / float64(u.shifts)
			}

			score := analytics.Score(g.weights, g.thresholds, analytics.DeriveSubScores(in))
			ds.Health = append(ds.Health, models.BusinessHealthRecord{
				StoreID:       i + 1,
				StoreName:     p.Name,
				Date:          start.AddDate(0, 0, d),
				OverallHealth: score.Overall,
				TheftScore:    score.Theft,
				RewardsScore:  score.Rewards,
				TrafficScore:  score.Traffic,
				EmployeeScore: score.Employee,
				Alerts:        score.Alerts,
			})
		}
	}
}
