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

const trafficSelect = `
	SELECT t.id, t.store_id, s.name, t.date, t.total_visitors
	FROM traffic_data t
	JOIN stores s ON s.id = t.store_id`

const trafficPatternSelect = `
	SELECT p.id, p.store_id, s.name, p.day_of_week, p.hour, p.visitor_count
	FROM traffic_patterns p
	JOIN stores s ON s.id = p.store_id`

func scanTrafficRows(rows pgx.Rows) ([]models.TrafficRecord, error) {
	records := []models.TrafficRecord{}
	for rows.Next() {
		var r models.TrafficRecord
		if err := rows.Scan(&r.ID, &r.StoreID, &r.StoreName, &r.Date, &r.TotalVisitors); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func fetchTraffic(ctx context.Context) ([]models.TrafficRecord, error) {
	rows, err := database.GetDB().Query(ctx, trafficSelect+" ORDER BY t.date")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTrafficRows(rows)
}

func fetchTrafficPatterns(ctx context.Context) ([]models.TrafficPattern, error) {
	rows, err := database.GetDB().Query(ctx, trafficPatternSelect+" ORDER BY p.id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	patterns := []models.TrafficPattern{}
	for rows.Next() {
		var p models.TrafficPattern
		if err := rows.Scan(&p.ID, &p.StoreID, &p.StoreName, &p.DayOfWeek, &p.Hour, &p.VisitorCount); err != nil {
			return nil, err
		}
		patterns = append(patterns, p)
	}
	return patterns, rows.Err()
}

// HandleListTraffic lists daily traffic with optional filters.
// GET /api/traffic?store_id=&start_date=&end_date=&skip=&limit=
func HandleListTraffic(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	var wb whereBuilder
	if storeID := c.QueryInt("store_id", 0); storeID > 0 {
		wb.add("t.store_id = $%d", storeID)
	}
	start, end, err := utils.ParseDateRange(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return badRequest(c, "Invalid date format, expected YYYY-MM-DD")
	}
	if !start.IsZero() {
		wb.add("t.date >= $%d", start)
	}
	if !end.IsZero() {
		wb.add("t.date <= $%d", end)
	}

	var total int
	if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM traffic_data t"+wb.clause(), wb.args...).Scan(&total); err != nil {
		log.Printf("Error counting traffic records: %v", err)
		return serverError(c, "Failed to retrieve traffic data")
	}

	pagination := utils.CreatePagination(total, c.QueryInt("skip", 0), c.QueryInt("limit", 100))
	query := trafficSelect + wb.clause() +
		" ORDER BY t.date DESC" +
		" LIMIT $" + itoa(wb.next(pagination.Limit)) +
		" OFFSET $" + itoa(wb.next(pagination.Skip))

	rows, err := db.Query(ctx, query, wb.args...)
	if err != nil {
		log.Printf("Error listing traffic records: %v", err)
		return serverError(c, "Failed to retrieve traffic data")
	}
	defer rows.Close()

	records, err := scanTrafficRows(rows)
	if err != nil {
		log.Printf("Error scanning traffic records: %v", err)
		return serverError(c, "Failed to retrieve traffic data")
	}

	return c.JSON(fiber.Map{"status": "success", "data": records, "pagination": pagination})
}

// HandleCreateTraffic records one day of visitor totals.
// POST /api/traffic
func HandleCreateTraffic(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	var req models.CreateTrafficRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cannot parse JSON")
	}
	if req.StoreID == 0 || req.Date.IsZero() {
		return badRequest(c, "store_id and date are required")
	}
	if req.TotalVisitors < 0 {
		return badRequest(c, "Visitor count must not be negative")
	}

	record := models.TrafficRecord{StoreID: req.StoreID, Date: req.Date, TotalVisitors: req.TotalVisitors}
	err := db.QueryRow(ctx,
		"INSERT INTO traffic_data (store_id, date, total_visitors) VALUES ($1, $2, $3) RETURNING id",
		req.StoreID, req.Date, req.TotalVisitors).Scan(&record.ID)
	if err != nil {
		log.Printf("Error creating traffic record: %v", err)
		return serverError(c, "Failed to create traffic record")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": record})
}

// HandleListTrafficPatterns lists the typical-week visitor heatmap cells.
// GET /api/traffic/patterns?store_id=
func HandleListTrafficPatterns(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	var wb whereBuilder
	if storeID := c.QueryInt("store_id", 0); storeID > 0 {
		wb.add("p.store_id = $%d", storeID)
	}

	rows, err := db.Query(ctx, trafficPatternSelect+wb.clause()+" ORDER BY p.id", wb.args...)
	if err != nil {
		log.Printf("Error listing traffic patterns: %v", err)
		return serverError(c, "Failed to retrieve traffic patterns")
	}
	defer rows.Close()

	patterns := []models.TrafficPattern{}
	for rows.Next() {
		var p models.TrafficPattern
		if err := rows.Scan(&p.ID, &p.StoreID, &p.StoreName, &p.DayOfWeek, &p.Hour, &p.VisitorCount); err != nil {
			log.Printf("Error scanning traffic pattern: %v", err)
			return serverError(c, "Failed to retrieve traffic patterns")
		}
		patterns = append(patterns, p)
	}

	return c.JSON(fiber.Map{"status": "success", "data": patterns})
}

// HandleTrafficAnalytics computes the traffic dashboard view, including the
// traffic-vs-theft correlation over the shared day/hour grid.
// GET /api/analytics/traffic?stores=&start_date=&end_date=
func HandleTrafficAnalytics(c *fiber.Ctx) error {
	ctx := context.Background()

	filter, err := parseFilter(c)
	if err != nil {
		return badRequest(c, "Invalid date format, expected YYYY-MM-DD")
	}

	records, err := fetchTraffic(ctx)
	if err != nil {
		log.Printf("Error loading traffic data: %v", err)
		return serverError(c, "Failed to load traffic data")
	}

	filtered := analytics.Apply(filter, records,
		func(r models.TrafficRecord) string { return r.StoreName },
		func(r models.TrafficRecord) time.Time { return r.Date })
	if len(filtered) == 0 {
		return noData(c)
	}

	daily := analytics.DailySeries(filtered,
		func(r models.TrafficRecord) time.Time { return r.Date },
		func(r models.TrafficRecord) float64 { return float64(r.TotalVisitors) },
		analytics.Sum)

	values := make([]float64, len(daily))
	for i, p := range daily {
		values[i] = p.Value
	}
	var trendPayload interface{}
	if trend, ok := analytics.LinearTrend(values); ok {
		trendPayload = fiber.Map{"slope": trend.Slope, "intercept": trend.Intercept, "line": trend.Line(len(values))}
	}

	byDay := analytics.DayOfWeekSeries(filtered,
		func(r models.TrafficRecord) string { return r.Date.Weekday().String() },
		func(r models.TrafficRecord) float64 { return float64(r.TotalVisitors) },
		analytics.Mean)

	patterns, err := fetchTrafficPatterns(ctx)
	if err != nil {
		log.Printf("Error loading traffic patterns: %v", err)
		return serverError(c, "Failed to load traffic patterns")
	}
	// Patterns describe a typical week, so only the store filter applies.
	filteredPatterns := analytics.Apply(filter, patterns,
		func(p models.TrafficPattern) string { return p.StoreName }, nil)

	heatmap := analytics.BuildHeatmap(filteredPatterns,
		func(p models.TrafficPattern) string { return p.DayOfWeek },
		func(p models.TrafficPattern) int { return p.Hour },
		func(p models.TrafficPattern) float64 { return float64(p.VisitorCount) },
		analytics.Mean)

	// Correlate traffic against theft on the aligned 7x24 grid. Cells with
	// no incidents count as zero, which is exactly what the fixed-axis
	// heatmap produces.
	incidents, err := fetchTheftIncidents(ctx)
	if err != nil {
		log.Printf("Error loading theft incidents: %v", err)
		return serverError(c, "Failed to load theft incidents")
	}
	filteredIncidents := analytics.Apply(filter, incidents,
		func(t models.TheftIncident) string { return t.StoreName },
		func(t models.TheftIncident) time.Time { return t.Timestamp })
	theftHeatmap := analytics.BuildHeatmap(filteredIncidents,
		func(t models.TheftIncident) string { return t.DayOfWeek },
		func(t models.TheftIncident) int { return t.Hour },
		func(models.TheftIncident) float64 { return 1 },
		analytics.Count)

	r := analytics.Pearson(heatmap.Flatten(), theftHeatmap.Flatten())

	return c.JSON(fiber.Map{"status": "success", "data": fiber.Map{
		"kpis":        analytics.ComputeTrafficKPIs(filtered),
		"daily":       daily,
		"trend":       trendPayload,
		"by_day":      fiber.Map{"days": analytics.WeekDays[:], "values": byDay[:]},
		"heatmap":     heatmap,
		"correlation": fiber.Map{"coefficient": r, "narrative": analytics.CorrelationNarrative(r)},
	}})
}
