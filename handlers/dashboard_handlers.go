package handlers

import (
	"context"
	"errors"
	"log"
	"time"

	"app/analytics"
	"app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

// HandleDashboardSummary returns the combined overview: theft, traffic,
// rewards, and health rolled up over the last `days` days, optionally
// scoped to one store.
// GET /api/dashboard/summary?store_id=&days=30
func HandleDashboardSummary(c *fiber.Ctx) error {
	ctx := context.Background()

	days := c.QueryInt("days", 30)
	if days <= 0 {
		return badRequest(c, "days must be positive")
	}

	filter := analytics.Filter{Start: time.Now().UTC().AddDate(0, 0, -days)}
	if storeID := c.QueryInt("store_id", 0); storeID > 0 {
		name, err := storeNameByID(ctx, storeID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Store not found"})
			}
			log.Printf("Error resolving store %d: %v", storeID, err)
			return serverError(c, "Failed to resolve store")
		}
		filter.Stores = []string{name}
	}

	incidents, err := fetchTheftIncidents(ctx)
	if err != nil {
		log.Printf("Error loading theft incidents: %v", err)
		return serverError(c, "Failed to load dashboard data")
	}
	traffic, err := fetchTraffic(ctx)
	if err != nil {
		log.Printf("Error loading traffic data: %v", err)
		return serverError(c, "Failed to load dashboard data")
	}
	rewards, err := fetchRewards(ctx)
	if err != nil {
		log.Printf("Error loading rewards data: %v", err)
		return serverError(c, "Failed to load dashboard data")
	}
	health, err := fetchHealth(ctx)
	if err != nil {
		log.Printf("Error loading health records: %v", err)
		return serverError(c, "Failed to load dashboard data")
	}

	theftKPIs := analytics.ComputeTheftKPIs(analytics.Apply(filter, incidents,
		func(t models.TheftIncident) string { return t.StoreName },
		func(t models.TheftIncident) time.Time { return t.Timestamp }))
	trafficKPIs := analytics.ComputeTrafficKPIs(analytics.Apply(filter, traffic,
		func(r models.TrafficRecord) string { return r.StoreName },
		func(r models.TrafficRecord) time.Time { return r.Date }))
	rewardsKPIs := analytics.ComputeRewardsKPIs(analytics.Apply(filter, rewards,
		func(r models.RewardsRecord) string { return r.StoreName },
		func(r models.RewardsRecord) time.Time { return r.Date }))
	latestHealth := analytics.LatestHealthByStore(analytics.Apply(filter, health,
		func(r models.BusinessHealthRecord) string { return r.StoreName },
		func(r models.BusinessHealthRecord) time.Time { return r.Date }))

	return c.JSON(fiber.Map{"status": "success", "data": fiber.Map{
		"days":    days,
		"theft":   theftKPIs,
		"traffic": trafficKPIs,
		"rewards": rewardsKPIs,
		"health":  latestHealth,
	}})
}
