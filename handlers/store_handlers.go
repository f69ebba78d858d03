package handlers

import (
	"context"
	"errors"
	"log"

	"app/database"
	"app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
)

const storeColumns = "id, name, address, city, state, zip_code, phone, manager, opening_date"

func scanStore(row pgx.Row) (models.Store, error) {
	var s models.Store
	err := row.Scan(&s.ID, &s.Name, &s.Address, &s.City, &s.State, &s.ZipCode, &s.Phone, &s.Manager, &s.OpeningDate)
	return s, err
}

// HandleListStores returns every store.
// GET /api/stores
func HandleListStores(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	rows, err := db.Query(ctx, "SELECT "+storeColumns+" FROM stores ORDER BY id")
	if err != nil {
		log.Printf("Error listing stores: %v", err)
		return serverError(c, "Failed to retrieve stores")
	}
	defer rows.Close()

	stores := []models.Store{}
	for rows.Next() {
		s, err := scanStore(rows)
		if err != nil {
			log.Printf("Error scanning store: %v", err)
			return serverError(c, "Failed to retrieve stores")
		}
		stores = append(stores, s)
	}

	return c.JSON(fiber.Map{"status": "success", "data": stores})
}

// HandleCreateStore registers a new store.
// POST /api/stores
func HandleCreateStore(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	var req models.CreateStoreRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cannot parse JSON")
	}
	if req.Name == "" {
		return badRequest(c, "Store name is required")
	}

	query := `
		INSERT INTO stores (name, address, city, state, zip_code, phone, manager, opening_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + storeColumns

	store, err := scanStore(db.QueryRow(ctx, query,
		req.Name, req.Address, req.City, req.State, req.ZipCode, req.Phone, req.Manager, req.OpeningDate))
	if err != nil {
		log.Printf("Error creating store: %v", err)
		return serverError(c, "Failed to create store")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "success", "data": store})
}

// HandleGetStore returns one store by id.
// GET /api/stores/:storeId
func HandleGetStore(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	storeID, err := c.ParamsInt("storeId")
	if err != nil {
		return badRequest(c, "Invalid store id")
	}

	store, err := scanStore(db.QueryRow(ctx, "SELECT "+storeColumns+" FROM stores WHERE id = $1", storeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Store not found"})
		}
		log.Printf("Error fetching store %d: %v", storeID, err)
		return serverError(c, "Failed to retrieve store")
	}

	return c.JSON(fiber.Map{"status": "success", "data": store})
}

// HandleUpdateStore replaces a store's details.
// PUT /api/stores/:storeId
func HandleUpdateStore(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	storeID, err := c.ParamsInt("storeId")
	if err != nil {
		return badRequest(c, "Invalid store id")
	}

	var req models.CreateStoreRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Cannot parse JSON")
	}
	if req.Name == "" {
		return badRequest(c, "Store name is required")
	}

	query := `
		UPDATE stores
		SET name = $1, address = $2, city = $3, state = $4, zip_code = $5, phone = $6, manager = $7, opening_date = $8
		WHERE id = $9
		RETURNING ` + storeColumns

	store, err := scanStore(db.QueryRow(ctx, query,
		req.Name, req.Address, req.City, req.State, req.ZipCode, req.Phone, req.Manager, req.OpeningDate, storeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Store not found"})
		}
		log.Printf("Error updating store %d: %v", storeID, err)
		return serverError(c, "Failed to update store")
	}

	return c.JSON(fiber.Map{"status": "success", "data": store})
}

// HandleDeleteStore removes a store. Dependent analytics rows go with it
// through the cascade on the foreign keys.
// DELETE /api/stores/:storeId
func HandleDeleteStore(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	storeID, err := c.ParamsInt("storeId")
	if err != nil {
		return badRequest(c, "Invalid store id")
	}

	tag, err := db.Exec(ctx, "DELETE FROM stores WHERE id = $1", storeID)
	if err != nil {
		log.Printf("Error deleting store %d: %v", storeID, err)
		return serverError(c, "Failed to delete store")
	}
	if tag.RowsAffected() == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Store not found"})
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Store deleted"})
}

// storeNameByID resolves a store's display name, used by the dashboard
// summary's optional store scope.
func storeNameByID(ctx context.Context, storeID int) (string, error) {
	var name string
	err := database.GetDB().QueryRow(ctx, "SELECT name FROM stores WHERE id = $1", storeID).Scan(&name)
	return name, err
}
