package handlers

import (
	"context"
	"errors"
	"log"
	"time"

	"app/analytics"
	"app/database"
	"app/models"
	"app/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

const theftSelect = `
	SELECT t.id, t.store_id, s.name, t.timestamp, t.day_of_week, t.hour, t.severity, t.value, t.resolved, t.video_clip_url
	FROM theft_incidents t
	JOIN stores s ON s.id = t.store_id`

func scanTheftRows(rows pgx.Rows) ([]models.TheftIncident, error) {
	incidents := []models.TheftIncident{}
	for rows.Next() {
		var t models.TheftIncident
		if err := rows.Scan(&t.ID, &t.StoreID, &t.StoreName, &t.Timestamp, &t.DayOfWeek, &t.Hour,
			&t.Severity, &t.Value, &t.Resolved, &t.VideoClipURL); err != nil {
			return nil, err
		}
		incidents = append(incidents, t)
	}
	return incidents, rows.Err()
}

// fetchTheftIncidents loads every incident with its store name, oldest
// first. The analytics views filter in memory from here.
func fetchTheftIncidents(ctx context.Context) ([]models.TheftIncident, error) {
	rows, err := database.GetDB().Query(ctx, theftSelect+" ORDER BY t.timestamp")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTheftRows(rows)
}

// HandleListTheftIncidents lists incidents with optional SQL-side filters.
// GET /api/theft-incidents?store_id=&start_date=&end_date=&severity=&resolved=&skip=&limit=
func HandleListTheftIncidents(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	var wb whereBuilder
	if storeID := c.QueryInt("store_id", 0); storeID > 0 {
		wb.add("t.store_id = $%d", storeID)
	}
	if severity := c.Query("severity"); severity != "" {
		if !models.ValidSeverity(severity) {
			return badRequest(c, "Invalid severity")
		}
		wb.add("t.severity = $%d", severity)
	}
	if resolved := c.Query("resolved"); resolved != "" {
		wb.add("t.resolved = $%d", resolved == "true")
	}
	start, end, err := utils.ParseDateRange(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return badRequest(c, "Invalid date format, expected YYYY-MM-DD")
	}
	if !start.IsZero() {
		wb.add("t.timestamp >= $%d", start)
	}
	if !end.IsZero() {
		wb.add("t.timestamp <= $%d", end)
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM theft_incidents t" + wb.clause()
	if err := db.QueryRow(ctx, countQuery, wb.args...).Scan(&total); err != nil {
		log.Printf("Error counting theft incidents: %v", err)
		return serverError(c, "Failed to retrieve theft incidents")
	}

	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", 100)
	pagination := utils.CreatePagination(total, skip, limit)

	query := theftSelect + wb.clause() +
		" ORDER BY t.timestamp DESC" +
		" LIMIT $" + itoa(wb.next(pagination.Limit)) +
		" OFFSET $" + itoa(wb.next(pagination.Skip))

	rows, err := db.Query(ctx, query, wb.args...)
	if err != nil {
		log.Printf("Error listing theft incidents: %v", err)
		return serverError(c, "Failed to retrieve theft incidents")
	}
	defer rows.Close()

	incidents, err := scanTheftRows(rows)
	if err != nil {
		log.Printf("Error scanning theft incidents: %v", err)
		return serverError(c, "Failed to retrieve theft incidents")
	}

	return c.JSON(fiber.Map{"status": "success", "data": incidents, "pagination": pagination})
}

// HandleCreateTheftIncident records an incident. The day-of-week and hour
// columns are derived from the timestamp here, never taken from the client.
// POST /api/theft-incidents
func HandleCreateTheftIncident(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	var req models.CreateTheftIncidentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cannot parse JSON")
	}
	if req.StoreID == 0 || req.Timestamp.IsZero() {
		return badRequest(c, "store_id and timestamp are required")
	}
	if !models.ValidSeverity(req.Severity) {
		return badRequest(c, "Severity must be Low, Medium or High")
	}
	if req.Value < 0 {
		return badRequest(c, "Value must not be negative")
	}

	day, hour := utils.DeriveDayHour(req.Timestamp)

	query := `
		INSERT INTO theft_incidents (store_id, timestamp, day_of_week, hour, severity, value, resolved, video_clip_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	incident := models.TheftIncident{
		StoreID:      req.StoreID,
		Timestamp:    req.Timestamp,
		DayOfWeek:    day,
		Hour:         hour,
		Severity:     req.Severity,
		Value:        req.Value,
		Resolved:     req.Resolved,
		VideoClipURL: req.VideoClipURL,
	}
	err := db.QueryRow(ctx, query, req.StoreID, req.Timestamp, day, hour, req.Severity, req.Value, req.Resolved, req.VideoClipURL).
		Scan(&incident.ID)
	if err != nil {
		log.Printf("Error creating theft incident: %v", err)
		return serverError(c, "Failed to create theft incident")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": incident})
}

// HandleResolveTheftIncident marks an incident resolved. Resolution is a
// one-way transition; resolving an already-resolved incident is a no-op
// success.
// PUT /api/theft-incidents/:incidentId/resolve
func HandleResolveTheftIncident(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	incidentID, err := c.ParamsInt("incidentId")
	if err != nil {
		return badRequest(c, "Invalid incident id")
	}

	var resolved bool
	err = db.QueryRow(ctx, "UPDATE theft_incidents SET resolved = TRUE WHERE id = $1 RETURNING resolved", incidentID).
		Scan(&resolved)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Incident not found"})
		}
		log.Printf("Error resolving theft incident %d: %v", incidentID, err)
		return serverError(c, "Failed to resolve theft incident")
	}

	return c.JSON(fiber.Map{"status": "success", "data": fiber.Map{"id": incidentID, "resolved": resolved}})
}

// HandleTheftAnalytics computes the theft dashboard view for a store set
// and date range.
// GET /api/analytics/theft?stores=&start_date=&end_date=
func HandleTheftAnalytics(c *fiber.Ctx) error {
	ctx := context.Background()

	filter, err := parseFilter(c)
	if err != nil {
		return badRequest(c, "Invalid date format, expected YYYY-MM-DD")
	}

	incidents, err := fetchTheftIncidents(ctx)
	if err != nil {
		log.Printf("Error loading theft incidents: %v", err)
		return serverError(c, "Failed to load theft incidents")
	}

	filtered := analytics.Apply(filter, incidents,
		func(t models.TheftIncident) string { return t.StoreName },
		func(t models.TheftIncident) time.Time { return t.Timestamp })
	if len(filtered) == 0 {
		return noData(c)
	}

	daily := analytics.DailySeries(filtered,
		func(t models.TheftIncident) time.Time { return t.Timestamp },
		func(models.TheftIncident) float64 { return 1 },
		analytics.Count)

	values := make([]float64, len(daily))
	for i, p := range daily {
		values[i] = p.Value
	}
	var trendPayload interface{}
	if trend, ok := analytics.LinearTrend(values); ok {
		trendPayload = fiber.Map{"slope": trend.Slope, "intercept": trend.Intercept, "line": trend.Line(len(values))}
	}

	heatmap := analytics.BuildHeatmap(filtered,
		func(t models.TheftIncident) string { return t.DayOfWeek },
		func(t models.TheftIncident) int { return t.Hour },
		func(models.TheftIncident) float64 { return 1 },
		analytics.Count)

	return c.JSON(fiber.Map{"status": "success", "data": fiber.Map{
		"kpis":               analytics.ComputeTheftKPIs(filtered),
		"severity_breakdown": analytics.SeverityBreakdown(filtered),
		"by_store":           analytics.TheftByStore(filtered),
		"daily":              daily,
		"trend":              trendPayload,
		"heatmap":            heatmap,
	}})
}
