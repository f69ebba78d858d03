package routes

import (
	"app/handlers"
	"app/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// --- Authentication (mock role selector) ---
	auth := api.Group("/auth")
	auth.Post("/login", handlers.HandleLogin)

	// --- Stores ---
	api.Get("/stores", handlers.HandleListStores)
	api.Post("/stores", handlers.HandleCreateStore)
	api.Get("/stores/:storeId", handlers.HandleGetStore)
	api.Put("/stores/:storeId", handlers.HandleUpdateStore)
	api.Delete("/stores/:storeId", handlers.HandleDeleteStore)

	// --- Theft ---
	api.Get("/theft-incidents", handlers.HandleListTheftIncidents)
	api.Post("/theft-incidents", handlers.HandleCreateTheftIncident)
	api.Put("/theft-incidents/:incidentId/resolve", handlers.HandleResolveTheftIncident)

	// --- Rewards & campaigns ---
	api.Get("/rewards", handlers.HandleListRewards)
	api.Post("/rewards", handlers.HandleCreateRewards)
	api.Get("/campaigns", handlers.HandleListCampaigns)
	api.Post("/campaigns", handlers.HandleCreateCampaign)

	// --- Traffic ---
	api.Get("/traffic/patterns", handlers.HandleListTrafficPatterns)
	api.Get("/traffic", handlers.HandleListTraffic)
	api.Post("/traffic", handlers.HandleCreateTraffic)

	// --- Employees ---
	api.Get("/employees/shifts", handlers.HandleListShifts)
	api.Post("/employees/shifts", handlers.HandleCreateShift)
	api.Get("/employees/patterns", handlers.HandleListUsagePatterns)

	// --- Business health ---
	api.Get("/business-health", handlers.HandleListBusinessHealth)
	api.Post("/business-health", handlers.HandleCreateBusinessHealth)

	// --- Dashboard & analytics views ---
	api.Get("/dashboard/summary", handlers.HandleDashboardSummary)
	analytics := api.Group("/analytics")
	analytics.Get("/theft", handlers.HandleTheftAnalytics)
	analytics.Get("/rewards", handlers.HandleRewardsAnalytics)
	analytics.Get("/traffic", handlers.HandleTrafficAnalytics)
	analytics.Get("/employees", handlers.HandleEmployeeAnalytics)
	analytics.Get("/health", handlers.HandleHealthAnalytics)

	// --- AI assistant ---
	api.Post("/assistant/ask", handlers.HandleAssistantAsk)

	// --- Admin (Owner only) ---
	admin := api.Group("/admin", middleware.Authenticate, middleware.OwnerRequired)
	admin.Post("/seed", handlers.HandleSeedDemoData)
}
