package handlers

import (
	"fmt"
	"strconv"

	"app/analytics"
	"app/config"
	"app/utils"

	"github.com/gofiber/fiber/v2"
)

func itoa(i int) string { return strconv.Itoa(i) }

// parseFilter reads the shared analytics query parameters: a comma-separated
// `stores` list and an inclusive `start_date`/`end_date` interval.
func parseFilter(c *fiber.Ctx) (analytics.Filter, error) {
	start, end, err := utils.ParseDateRange(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		return analytics.Filter{}, err
	}
	return analytics.Filter{
		Stores: utils.ParseStoreList(c.Query("stores")),
		Start:  start,
		End:    end,
	}, nil
}

// noData is the explicit empty-result payload. Analytics views never fall
// back to sample data when a filter matches nothing.
func noData(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "success", "message": "no data available", "data": nil})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": message})
}

func serverError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": message})
}

// configWeights reads the health-score weights out of the app config.
func configWeights() analytics.Weights {
	return analytics.Weights{
		Theft:    config.AppConfig.TheftWeight,
		Rewards:  config.AppConfig.RewardsWeight,
		Traffic:  config.AppConfig.TrafficWeight,
		Employee: config.AppConfig.EmployeeWeight,
	}
}

// configThresholds reads the alert thresholds out of the app config.
func configThresholds() analytics.Thresholds {
	return analytics.Thresholds{
		Theft:    config.AppConfig.TheftAlertBelow,
		Rewards:  config.AppConfig.RewardsAlertBelow,
		Traffic:  config.AppConfig.TrafficAlertBelow,
		Employee: config.AppConfig.EmployeeAlertBelow,
	}
}

// whereBuilder accumulates optional WHERE conditions with positional args.
type whereBuilder struct {
	clauses []string
	args    []interface{}
}

// add appends a condition; cond must contain one %d verb for the arg's
// positional placeholder.
func (w *whereBuilder) add(cond string, arg interface{}) {
	w.args = append(w.args, arg)
	w.clauses = append(w.clauses, fmt.Sprintf(cond, len(w.args)))
}

// clause renders the WHERE clause, or an empty string when no condition was
// added.
func (w *whereBuilder) clause() string {
	if len(w.clauses) == 0 {
		return ""
	}
	out := " WHERE " + w.clauses[0]
	for _, c := range w.clauses[1:] {
		out += " AND " + c
	}
	return out
}

// next returns the placeholder index for an arg appended outside add (limit
// and offset).
func (w *whereBuilder) next(arg interface{}) int {
	w.args = append(w.args, arg)
	return len(w.args)
}
