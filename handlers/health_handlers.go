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

const healthSelect = `
	SELECT h.id, h.store_id, s.name, h.date, h.overall_health, h.theft_score, h.rewards_score, h.traffic_score, h.employee_score, h.alerts
	FROM business_health h
	JOIN stores s ON s.id = h.store_id`

func scanHealthRows(rows pgx.Rows) ([]models.BusinessHealthRecord, error) {
	records := []models.BusinessHealthRecord{}
	for rows.Next() {
		var r models.BusinessHealthRecord
		if err := rows.Scan(&r.ID, &r.StoreID, &r.StoreName, &r.Date, &r.OverallHealth,
			&r.TheftScore, &r.RewardsScore, &r.TrafficScore, &r.EmployeeScore, &r.Alerts); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func fetchHealth(ctx context.Context) ([]models.BusinessHealthRecord, error) {
	rows, err := database.GetDB().Query(ctx, healthSelect+" ORDER BY h.date")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanHealthRows(rows)
}

// HandleListBusinessHealth lists health records with optional filters.
// GET /api/business-health?store_id=&start_date=&end_date=&skip=&limit=
func HandleListBusinessHealth(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	var wb whereBuilder
	if storeID := c.QueryInt("store_id", 0); storeID > 0 {
		wb.add("h.store_id = $%d", storeID)
	}
	start, end, err := utils.ParseDateRange(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return badRequest(c, "Invalid date format, expected YYYY-MM-DD")
	}
	if !start.IsZero() {
		wb.add("h.date >= $%d", start)
	}
	if !end.IsZero() {
		wb.add("h.date <= $%d", end)
	}

	var total int
	if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM business_health h"+wb.clause(), wb.args...).Scan(&total); err != nil {
		log.Printf("Error counting health records: %v", err)
		return serverError(c, "Failed to retrieve business health")
	}

	pagination := utils.CreatePagination(total, c.QueryInt("skip", 0), c.QueryInt("limit", 100))
	query := healthSelect + wb.clause() +
		" ORDER BY h.date DESC" +
		" LIMIT $" + itoa(wb.next(pagination.Limit)) +
		" OFFSET $" + itoa(wb.next(pagination.Skip))

	rows, err := db.Query(ctx, query, wb.args...)
	if err != nil {
		log.Printf("Error listing health records: %v", err)
		return serverError(c, "Failed to retrieve business health")
	}
	defer rows.Close()

	records, err := scanHealthRows(rows)
	if err != nil {
		log.Printf("Error scanning health records: %v", err)
		return serverError(c, "Failed to retrieve business health")
	}

	return c.JSON(fiber.Map{"status": "success", "data": records, "pagination": pagination})
}

// HandleCreateBusinessHealth scores and persists one store/day health
// record. The caller supplies the raw sub-scores; the overall score and the
// alert list are always computed here with the configured weights so stored
// records can never disagree with the scoring rules.
// POST /api/business-health
func HandleCreateBusinessHealth(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	var req models.CreateBusinessHealthRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cannot parse JSON")
	}
	if req.StoreID == 0 || req.Date.IsZero() {
		return badRequest(c, "store_id and date are required")
	}

	score := analytics.Score(configWeights(), configThresholds(), analytics.SubScores{
		Theft:    req.TheftScore,
		Rewards:  req.RewardsScore,
		Traffic:  req.TrafficScore,
		Employee: req.EmployeeScore,
	})

	query := `
		INSERT INTO business_health (store_id, date, overall_health, theft_score, rewards_score, traffic_score, employee_score, alerts)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	record := models.BusinessHealthRecord{
		StoreID:       req.StoreID,
		Date:          req.Date,
		OverallHealth: score.Overall,
		TheftScore:    score.Theft,
		RewardsScore:  score.Rewards,
		TrafficScore:  score.Traffic,
		EmployeeScore: score.Employee,
		Alerts:        score.Alerts,
	}
	err := db.QueryRow(ctx, query, req.StoreID, req.Date, score.Overall,
		score.Theft, score.Rewards, score.Traffic, score.Employee, score.Alerts).Scan(&record.ID)
	if err != nil {
		log.Printf("Error creating health record: %v", err)
		return serverError(c, "Failed to create health record")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": record})
}

// HandleHealthAnalytics computes the business-health overview: the latest
// score per store, outstanding alerts, and the overall trend.
// GET /api/analytics/health?stores=&start_date=&end_date=
func HandleHealthAnalytics(c *fiber.Ctx) error {
	ctx := context.Background()

	filter, err := parseFilter(c)
	if err != nil {
		return badRequest(c, "Invalid date format, expected YYYY-MM-DD")
	}

	records, err := fetchHealth(ctx)
	if err != nil {
		log.Printf("Error loading health records: %v", err)
		return serverError(c, "Failed to load business health")
	}

	filtered := analytics.Apply(filter, records,
		func(r models.BusinessHealthRecord) string { return r.StoreName },
		func(r models.BusinessHealthRecord) time.Time { return r.Date })
	if len(filtered) == 0 {
		return noData(c)
	}

	latest := analytics.LatestHealthByStore(filtered)

	type storeAlerts struct {
		Store  string   `json:"store"`
		Alerts []string `json:"alerts"`
	}
	alerts := []storeAlerts{}
	for _, r := range latest {
		if len(r.Alerts) > 0 {
			alerts = append(alerts, storeAlerts{Store: r.StoreName, Alerts: r.Alerts})
		}
	}

	daily := analytics.DailySeries(filtered,
		func(r models.BusinessHealthRecord) time.Time { return r.Date },
		func(r models.BusinessHealthRecord) float64 { return r.OverallHealth },
		analytics.Mean)

	values := make([]float64, len(daily))
	for i, p := range daily {
		values[i] = p.Value
	}
	var trendPayload interface{}
	if trend, ok := analytics.LinearTrend(values); ok {
		trendPayload = fiber.Map{"slope": trend.Slope, "intercept": trend.Intercept, "line": trend.Line(len(values))}
	}

	return c.JSON(fiber.Map{"status": "success", "data": fiber.Map{
		"latest": latest,
		"alerts": alerts,
		"daily":  daily,
		"trend":  trendPayload,
	}})
}
