package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"app/analytics"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestWhereBuilder(t *testing.T) {
	var wb whereBuilder
	assert.Equal(t, "", wb.clause())

	wb.add("store_id = $%d", 3)
	wb.add("severity = $%d", "High")
	assert.Equal(t, " WHERE store_id = $1 AND severity = $2", wb.clause())
	assert.Equal(t, []interface{}{3, "High"}, wb.args)

	assert.Equal(t, 3, wb.next(100))
	assert.Len(t, wb.args, 3)
}

func TestParseFilter(t *testing.T) {
	app := fiber.New()
	var got analytics.Filter
	var gotErr error
	app.Get("/probe", func(c *fiber.Ctx) error {
		got, gotErr = parseFilter(c)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet,
		"/probe?stores=Downtown+Mart,Oakwood+Express&start_date=2025-05-01&end_date=2025-05-31", nil)
	_, err := app.Test(req)
	assert.NoError(t, err)
	assert.NoError(t, gotErr)
	assert.Equal(t, []string{"Downtown Mart", "Oakwood Express"}, got.Stores)
	assert.Equal(t, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), got.Start)
	// End bound covers the whole last day.
	assert.True(t, got.End.After(time.Date(2025, 5, 31, 23, 0, 0, 0, time.UTC)))
}

func TestParseFilterDefaultsToAllStoresAllTime(t *testing.T) {
	app := fiber.New()
	var got analytics.Filter
	app.Get("/probe", func(c *fiber.Ctx) error {
		got, _ = parseFilter(c)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	_, err := app.Test(req)
	assert.NoError(t, err)
	assert.Empty(t, got.Stores)
	assert.True(t, got.Start.IsZero())
	assert.True(t, got.End.IsZero())
	assert.True(t, got.Match("Anything", time.Now()))
}

func TestParseFilterRejectsBadDates(t *testing.T) {
	app := fiber.New()
	var gotErr error
	app.Get("/probe", func(c *fiber.Ctx) error {
		_, gotErr = parseFilter(c)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe?start_date=01-05-2025", nil)
	_, err := app.Test(req)
	assert.NoError(t, err)
	assert.Error(t, gotErr)
}
