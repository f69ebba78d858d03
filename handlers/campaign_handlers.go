package handlers

import (
	"context"
	"log"

	"app/database"
	"app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

const campaignSelect = `
	SELECT c.id, c.store_id, s.name, c.campaign, c.participation_rate, c.redemption_rate, c.roi
	FROM campaign_performance c
	JOIN stores s ON s.id = c.store_id`

func scanCampaignRows(rows pgx.Rows) ([]models.CampaignPerformance, error) {
	records := []models.CampaignPerformance{}
	for rows.Next() {
		var r models.CampaignPerformance
		if err := rows.Scan(&r.ID, &r.StoreID, &r.StoreName, &r.Campaign,
			&r.ParticipationRate, &r.RedemptionRate, &r.ROI); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// HandleListCampaigns lists campaign performance with optional filters.
// GET /api/campaigns?store_id=&campaign=
func HandleListCampaigns(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	var wb whereBuilder
	if storeID := c.QueryInt("store_id", 0); storeID > 0 {
		wb.add("c.store_id = $%d", storeID)
	}
	if name := c.Query("campaign"); name != "" {
		wb.add("c.campaign = $%d", name)
	}

	rows, err := db.Query(ctx, campaignSelect+wb.clause()+" ORDER BY c.id", wb.args...)
	if err != nil {
		log.Printf("Error listing campaign performance: %v", err)
		return serverError(c, "Failed to retrieve campaign performance")
	}
	defer rows.Close()

	records, err := scanCampaignRows(rows)
	if err != nil {
		log.Printf("Error scanning campaign performance: %v", err)
		return serverError(c, "Failed to retrieve campaign performance")
	}

	return c.JSON(fiber.Map{"status": "success", "data": records})
}

// HandleCreateCampaign records one campaign's performance at one store.
// POST /api/campaigns
func HandleCreateCampaign(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	var req models.CreateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cannot parse JSON")
	}
	if req.StoreID == 0 || req.Campaign == "" {
		return badRequest(c, "store_id and campaign are required")
	}
	if req.RedemptionRate > req.ParticipationRate {
		return badRequest(c, "Redemption rate cannot exceed participation rate")
	}

	query := `
		INSERT INTO campaign_performance (store_id, campaign, participation_rate, redemption_rate, roi)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	record := models.CampaignPerformance{
		StoreID:           req.StoreID,
		Campaign:          req.Campaign,
		ParticipationRate: req.ParticipationRate,
		RedemptionRate:    req.RedemptionRate,
		ROI:               req.ROI,
	}
	err := db.QueryRow(ctx, query, req.StoreID, req.Campaign, req.ParticipationRate, req.RedemptionRate, req.ROI).
		Scan(&record.ID)
	if err != nil {
		log.Printf("Error creating campaign performance: %v", err)
		return serverError(c, "Failed to create campaign performance")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": record})
}
