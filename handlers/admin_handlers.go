package handlers

import (
	"context"
	"log"
	"time"

	"app/database"
	"app/generator"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

var seedTables = []string{
	"theft_incidents", "rewards_data", "campaign_performance",
	"traffic_data", "traffic_patterns", "employee_data",
	"mobile_usage_patterns", "business_health", "stores",
}

// HandleSeedDemoData regenerates the demo dataset and replaces the database
// contents with it, in one transaction. Owner-only.
// POST /api/admin/seed
func HandleSeedDemoData(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	var body struct {
		Seed int64 `json:"seed"`
		Days int   `json:"days"`
	}
	// An empty body falls through to the defaults.
	_ = c.BodyParser(&body)
	if body.Seed == 0 {
		body.Seed = time.Now().UnixNano()
	}
	if body.Days <= 0 {
		body.Days = 60
	}

	gen := generator.New(body.Seed, configWeights(), configThresholds())
	ds := gen.Generate(time.Now().UTC(), body.Days)

	tx, err := db.Begin(ctx)
	if err != nil {
		log.Printf("Error starting seed transaction: %v", err)
		return serverError(c, "Failed to start transaction")
	}
	defer tx.Rollback(ctx)

	for _, table := range seedTables {
		if _, err := tx.Exec(ctx, "DELETE FROM "+table); err != nil {
			log.Printf("Error clearing %s: %v", table, err)
			return serverError(c, "Failed to clear existing data")
		}
	}

	// Insert stores first and remap the generator's 1-based ids to the real
	// keys handed out by the database.
	idMap := make(map[int]int, len(ds.Stores))
	for _, s := range ds.Stores {
		var id int
		err := tx.QueryRow(ctx, `
			INSERT INTO stores (name, address, city, state, zip_code, phone, manager, opening_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id`,
			s.Name, s.Address, s.City, s.State, s.ZipCode, s.Phone, s.Manager, s.OpeningDate).Scan(&id)
		if err != nil {
			log.Printf("Error inserting store %s: %v", s.Name, err)
			return serverError(c, "Failed to insert stores")
		}
		idMap[s.ID] = id
	}

	if err := insertSeedRows(ctx, tx, ds, idMap); err != nil {
		log.Printf("Error inserting demo data: %v", err)
		return serverError(c, "Failed to insert demo data")
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("Error committing seed transaction: %v", err)
		return serverError(c, "Failed to commit transaction")
	}

	return c.JSON(fiber.Map{"status": "success", "data": fiber.Map{
		"seed":             body.Seed,
		"days":             body.Days,
		"stores":           len(ds.Stores),
		"theft_incidents":  len(ds.Theft),
		"rewards_records":  len(ds.Rewards),
		"campaigns":        len(ds.Campaigns),
		"traffic_records":  len(ds.Traffic),
		"traffic_patterns": len(ds.TrafficPatterns),
		"shift_records":    len(ds.Shifts),
		"usage_patterns":   len(ds.UsagePatterns),
		"health_records":   len(ds.Health),
	}})
}

func insertSeedRows(ctx context.Context, tx pgx.Tx, ds *generator.Dataset, idMap map[int]int) error {
	for _, t := range ds.Theft {
		if _, err := tx.Exec(ctx, `
			INSERT INTO theft_incidents (store_id, timestamp, day_of_week, hour, severity, value, resolved, video_clip_url)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			idMap[t.StoreID], t.Timestamp, t.DayOfWeek, t.Hour, t.Severity, t.Value, t.Resolved, t.VideoClipURL); err != nil {
			return err
		}
	}
	for _, r := range ds.Rewards {
		if _, err := tx.Exec(ctx, `
			INSERT INTO rewards_data (store_id, date, total_members, new_members, campaign_engagement, active_campaigns)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			idMap[r.StoreID], r.Date, r.TotalMembers, r.NewMembers, r.CampaignEngagement, r.ActiveCampaigns); err != nil {
			return err
		}
	}
	for _, p := range ds.Campaigns {
		if _, err := tx.Exec(ctx, `
			INSERT INTO campaign_performance (store_id, campaign, participation_rate, redemption_rate, roi)
			VALUES ($1, $2, $3, $4, $5)`,
			idMap[p.StoreID], p.Campaign, p.ParticipationRate, p.RedemptionRate, p.ROI); err != nil {
			return err
		}
	}
	for _, t := range ds.Traffic {
		if _, err := tx.Exec(ctx, `
			INSERT INTO traffic_data (store_id, date, total_visitors)
			VALUES ($1, $2, $3)`,
			idMap[t.StoreID], t.Date, t.TotalVisitors); err != nil {
			return err
		}
	}
	for _, p := range ds.TrafficPatterns {
		if _, err := tx.Exec(ctx, `
			INSERT INTO traffic_patterns (store_id, day_of_week, hour, visitor_count)
			VALUES ($1, $2, $3, $4)`,
			idMap[p.StoreID], p.DayOfWeek, p.Hour, p.VisitorCount); err != nil {
			return err
		}
	}
	for _, s := range ds.Shifts {
		if _, err := tx.Exec(ctx, `
			INSERT INTO employee_data (store_id, date, shift, mobile_usage_incidents, avg_duration_minutes, total_usage_minutes)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			idMap[s.StoreID], s.Date, s.Shift, s.MobileUsageIncidents, s.AvgDurationMinutes, s.TotalUsageMinutes); err != nil {
			return err
		}
	}
	for _, p := range ds.UsagePatterns {
		if _, err := tx.Exec(ctx, `
			INSERT INTO mobile_usage_patterns (store_id, day_of_week, hour, mobile_usage_incidents)
			VALUES ($1, $2, $3, $4)`,
			idMap[p.StoreID], p.DayOfWeek, p.Hour, p.MobileUsageIncidents); err != nil {
			return err
		}
	}
	for _, h := range ds.Health {
		if _, err := tx.Exec(ctx, `
			INSERT INTO business_health (store_id, date, overall_health, theft_score, rewards_score, traffic_score, employee_score, alerts)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			idMap[h.StoreID], h.Date, h.OverallHealth, h.TheftScore, h.RewardsScore, h.TrafficScore, h.EmployeeScore, h.Alerts); err != nil {
			return err
		}
	}
	return nil
}
