package handlers

import (
	"context"
	"log"
	"time"

	"app/analytics"
	"app/database"
	"app/models"
	"app/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

const rewardsSelect = `
	SELECT r.id, r.store_id, s.name, r.date, r.total_members, r.new_members, r.campaign_engagement, r.active_campaigns
	FROM rewards_data r
	JOIN stores s ON s.id = r.store_id`

func scanRewardsRows(rows pgx.Rows) ([]models.RewardsRecord, error) {
	records := []models.RewardsRecord{}
	for rows.Next() {
		var r models.RewardsRecord
		if err := rows.Scan(&r.ID, &r.StoreID, &r.StoreName, &r.Date, &r.TotalMembers, &r.NewMembers,
			&r.CampaignEngagement, &r.ActiveCampaigns); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func fetchRewards(ctx context.Context) ([]models.RewardsRecord, error) {
	rows, err := database.GetDB().Query(ctx, rewardsSelect+" ORDER BY r.date")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRewardsRows(rows)
}

func fetchCampaigns(ctx context.Context) ([]models.CampaignPerformance, error) {
	rows, err := database.GetDB().Query(ctx, campaignSelect+" ORDER BY c.id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCampaignRows(rows)
}

// HandleListRewards lists daily rewards records with optional filters.
// GET /api/rewards?store_id=&start_date=&end_date=&skip=&limit=
func HandleListRewards(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	var wb whereBuilder
	if storeID := c.QueryInt("store_id", 0); storeID > 0 {
		wb.add("r.store_id = $%d", storeID)
	}
	start, end, err := utils.ParseDateRange(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return badRequest(c, "Invalid date format, expected YYYY-MM-DD")
	}
	if !start.IsZero() {
		wb.add("r.date >= $%d", start)
	}
	if !end.IsZero() {
		wb.add("r.date <= $%d", end)
	}

	var total int
	if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM rewards_data r"+wb.clause(), wb.args...).Scan(&total); err != nil {
		log.Printf("Error counting rewards records: %v", err)
		return serverError(c, "Failed to retrieve rewards data")
	}

	pagination := utils.CreatePagination(total, c.QueryInt("skip", 0), c.QueryInt("limit", 100))
	query := rewardsSelect + wb.clause() +
		" ORDER BY r.date DESC" +
		" LIMIT $" + itoa(wb.next(pagination.Limit)) +
		" OFFSET $" + itoa(wb.next(pagination.Skip))

	rows, err := db.Query(ctx, query, wb.args...)
	if err != nil {
		log.Printf("Error listing rewards records: %v", err)
		return serverError(c, "Failed to retrieve rewards data")
	}
	defer rows.Close()

	records, err := scanRewardsRows(rows)
	if err != nil {
		log.Printf("Error scanning rewards records: %v", err)
		return serverError(c, "Failed to retrieve rewards data")
	}

	return c.JSON(fiber.Map{"status": "success", "data": records, "pagination": pagination})
}

// HandleCreateRewards records one day of rewards-program state.
// POST /api/rewards
func HandleCreateRewards(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	var req models.CreateRewardsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cannot parse JSON")
	}
	if req.StoreID == 0 || req.Date.IsZero() {
		return badRequest(c, "store_id and date are required")
	}
	if req.TotalMembers < 0 || req.NewMembers < 0 {
		return badRequest(c, "Member counts must not be negative")
	}

	query := `
		INSERT INTO rewards_data (store_id, date, total_members, new_members, campaign_engagement, active_campaigns)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	record := models.RewardsRecord{
		StoreID:            req.StoreID,
		Date:               req.Date,
		TotalMembers:       req.TotalMembers,
		NewMembers:         req.NewMembers,
		CampaignEngagement: req.CampaignEngagement,
		ActiveCampaigns:    req.ActiveCampaigns,
	}
	err := db.QueryRow(ctx, query, req.StoreID, req.Date, req.TotalMembers, req.NewMembers,
		req.CampaignEngagement, req.ActiveCampaigns).Scan(&record.ID)
	if err != nil {
		log.Printf("Error creating rewards record: %v", err)
		return serverError(c, "Failed to create rewards record")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": record})
}

// HandleRewardsAnalytics computes the rewards dashboard view.
// GET /api/analytics/rewards?stores=&start_date=&end_date=
func HandleRewardsAnalytics(c *fiber.Ctx) error {
	ctx := context.Background()

	filter, err := parseFilter(c)
	if err != nil {
		return badRequest(c, "Invalid date format, expected YYYY-MM-DD")
	}

	records, err := fetchRewards(ctx)
	if err != nil {
		log.Printf("Error loading rewards data: %v", err)
		return serverError(c, "Failed to load rewards data")
	}

	filtered := analytics.Apply(filter, records,
		func(r models.RewardsRecord) string { return r.StoreName },
		func(r models.RewardsRecord) time.Time { return r.Date })
	if len(filtered) == 0 {
		return noData(c)
	}

	// Combined member total per day across the selected stores.
	growth := analytics.DailySeries(filtered,
		func(r models.RewardsRecord) time.Time { return r.Date },
		func(r models.RewardsRecord) float64 { return float64(r.TotalMembers) },
		analytics.Sum)

	campaigns, err := fetchCampaigns(ctx)
	if err != nil {
		log.Printf("Error loading campaign performance: %v", err)
		return serverError(c, "Failed to load campaign performance")
	}
	// Campaign records carry no date axis; only the store filter applies.
	filteredCampaigns := analytics.Apply(filter, campaigns,
		func(p models.CampaignPerformance) string { return p.StoreName }, nil)

	return c.JSON(fiber.Map{"status": "success", "data": fiber.Map{
		"kpis":          analytics.ComputeRewardsKPIs(filtered),
		"member_growth": growth,
		"campaigns":     analytics.SummarizeCampaigns(filteredCampaigns),
		"by_store":      analytics.RewardsByStore(filtered),
	}})
}
