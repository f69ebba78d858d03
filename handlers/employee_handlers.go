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

const shiftSelect = `
	SELECT e.id, e.store_id, s.name, e.date, e.shift, e.mobile_usage_incidents, e.avg_duration_minutes, e.total_usage_minutes
	FROM employee_data e
	JOIN stores s ON s.id = e.store_id`

const usagePatternSelect = `
	SELECT p.id, p.store_id, s.name, p.day_of_week, p.hour, p.mobile_usage_incidents
	FROM mobile_usage_patterns p
	JOIN stores s ON s.id = p.store_id`

func scanShiftRows(rows pgx.Rows) ([]models.EmployeeShiftRecord, error) {
	records := []models.EmployeeShiftRecord{}
	for rows.Next() {
		var r models.EmployeeShiftRecord
		if err := rows.Scan(&r.ID, &r.StoreID, &r.StoreName, &r.Date, &r.Shift,
			&r.MobileUsageIncidents, &r.AvgDurationMinutes, &r.TotalUsageMinutes); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func fetchShifts(ctx context.Context) ([]models.EmployeeShiftRecord, error) {
	rows, err := database.GetDB().Query(ctx, shiftSelect+" ORDER BY e.date")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanShiftRows(rows)
}

func fetchUsagePatterns(ctx context.Context) ([]models.MobileUsagePattern, error) {
	rows, err := database.GetDB().Query(ctx, usagePatternSelect+" ORDER BY p.id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	patterns := []models.MobileUsagePattern{}
	for rows.Next() {
		var p models.MobileUsagePattern
		if err := rows.Scan(&p.ID, &p.StoreID, &p.StoreName, &p.DayOfWeek, &p.Hour, &p.MobileUsageIncidents); err != nil {
			return nil, err
		}
		patterns = append(patterns, p)
	}
	return patterns, rows.Err()
}

// HandleListShifts lists per-shift usage records with optional filters.
// GET /api/employees/shifts?store_id=&start_date=&end_date=&skip=&limit=
func HandleListShifts(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	var wb whereBuilder
	if storeID := c.QueryInt("store_id", 0); storeID > 0 {
		wb.add("e.store_id = $%d", storeID)
	}
	start, end, err := utils.ParseDateRange(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return badRequest(c, "Invalid date format, expected YYYY-MM-DD")
	}
	if !start.IsZero() {
		wb.add("e.date >= $%d", start)
	}
	if !end.IsZero() {
		wb.add("e.date <= $%d", end)
	}

	var total int
	if err := db.QueryRow(ctx, "SELECT COUNT(*) FROM employee_data e"+wb.clause(), wb.args...).Scan(&total); err != nil {
		log.Printf("Error counting shift records: %v", err)
		return serverError(c, "Failed to retrieve shift records")
	}

	pagination := utils.CreatePagination(total, c.QueryInt("skip", 0), c.QueryInt("limit", 100))
	query := shiftSelect + wb.clause() +
		" ORDER BY e.date DESC" +
		" LIMIT $" + itoa(wb.next(pagination.Limit)) +
		" OFFSET $" + itoa(wb.next(pagination.Skip))

	rows, err := db.Query(ctx, query, wb.args...)
	if err != nil {
		log.Printf("Error listing shift records: %v", err)
		return serverError(c, "Failed to retrieve shift records")
	}
	defer rows.Close()

	records, err := scanShiftRows(rows)
	if err != nil {
		log.Printf("Error scanning shift records: %v", err)
		return serverError(c, "Failed to retrieve shift records")
	}

	return c.JSON(fiber.Map{"status": "success", "data": records, "pagination": pagination})
}

// HandleCreateShift records one shift of mobile-usage observations.
// POST /api/employees/shifts
func HandleCreateShift(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	var req models.CreateEmployeeShiftRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cannot parse JSON")
	}
	if req.StoreID == 0 || req.Date.IsZero() || req.Shift == "" {
		return badRequest(c, "store_id, date and shift are required")
	}
	if req.MobileUsageIncidents < 0 || req.AvgDurationMinutes < 0 || req.TotalUsageMinutes < 0 {
		return badRequest(c, "Usage metrics must not be negative")
	}

	query := `
		INSERT INTO employee_data (store_id, date, shift, mobile_usage_incidents, avg_duration_minutes, total_usage_minutes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	record := models.EmployeeShiftRecord{
		StoreID:              req.StoreID,
		Date:                 req.Date,
		Shift:                req.Shift,
		MobileUsageIncidents: req.MobileUsageIncidents,
		AvgDurationMinutes:   req.AvgDurationMinutes,
		TotalUsageMinutes:    req.TotalUsageMinutes,
	}
	err := db.QueryRow(ctx, query, req.StoreID, req.Date, req.Shift,
		req.MobileUsageIncidents, req.AvgDurationMinutes, req.TotalUsageMinutes).Scan(&record.ID)
	if err != nil {
		log.Printf("Error creating shift record: %v", err)
		return serverError(c, "Failed to create shift record")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": record})
}

// HandleListUsagePatterns lists the typical-week mobile-usage heatmap cells.
// GET /api/employees/patterns?store_id=
func HandleListUsagePatterns(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	var wb whereBuilder
	if storeID := c.QueryInt("store_id", 0); storeID > 0 {
		wb.add("p.store_id = $%d", storeID)
	}

	rows, err := db.Query(ctx, usagePatternSelect+wb.clause()+" ORDER BY p.id", wb.args...)
	if err != nil {
		log.Printf("Error listing usage patterns: %v", err)
		return serverError(c, "Failed to retrieve usage patterns")
	}
	defer rows.Close()

	patterns := []models.MobileUsagePattern{}
	for rows.Next() {
		var p models.MobileUsagePattern
		if err := rows.Scan(&p.ID, &p.StoreID, &p.StoreName, &p.DayOfWeek, &p.Hour, &p.MobileUsageIncidents); err != nil {
			log.Printf("Error scanning usage pattern: %v", err)
			return serverError(c, "Failed to retrieve usage patterns")
		}
		patterns = append(patterns, p)
	}

	return c.JSON(fiber.Map{"status": "success", "data": patterns})
}

// HandleEmployeeAnalytics computes the employee productivity view, including
// the cross-store compliance ranking.
// GET /api/analytics/employees?stores=&start_date=&end_date=
func HandleEmployeeAnalytics(c *fiber.Ctx) error {
	ctx := context.Background()

	filter, err := parseFilter(c)
	if err != nil {
		return badRequest(c, "Invalid date format, expected YYYY-MM-DD")
	}

	records, err := fetchShifts(ctx)
	if err != nil {
		log.Printf("Error loading shift records: %v", err)
		return serverError(c, "Failed to load shift records")
	}

	filtered := analytics.Apply(filter, records,
		func(r models.EmployeeShiftRecord) string { return r.StoreName },
		func(r models.EmployeeShiftRecord) time.Time { return r.Date })
	if len(filtered) == 0 {
		return noData(c)
	}

	patterns, err := fetchUsagePatterns(ctx)
	if err != nil {
		log.Printf("Error loading usage patterns: %v", err)
		return serverError(c, "Failed to load usage patterns")
	}
	filteredPatterns := analytics.Apply(filter, patterns,
		func(p models.MobileUsagePattern) string { return p.StoreName }, nil)

	heatmap := analytics.BuildHeatmap(filteredPatterns,
		func(p models.MobileUsagePattern) string { return p.DayOfWeek },
		func(p models.MobileUsagePattern) int { return p.Hour },
		func(p models.MobileUsagePattern) float64 { return float64(p.MobileUsageIncidents) },
		analytics.Mean)

	usage := analytics.UsageByStore(filtered)
	// ComplianceScores declines to rank when every store reports zero on
	// either axis; the view then carries no ranking at all.
	compliance := analytics.ComplianceScores(usage)

	return c.JSON(fiber.Map{"status": "success", "data": fiber.Map{
		"kpis":       analytics.ComputeEmployeeKPIs(filtered),
		"by_shift":   analytics.UsageByShift(filtered),
		"by_store":   usage,
		"heatmap":    heatmap,
		"compliance": compliance,
	}})
}
