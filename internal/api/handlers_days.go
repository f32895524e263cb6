package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/selene-health/selene/internal/cycle"
	"github.com/selene-health/selene/internal/models"
	"github.com/selene-health/selene/internal/services"
)

func (handler *Handler) GetDays(c *fiber.Ctx) error {
	userID := currentUserID(c)

	from, err := cycle.ParseDay(c.Query("from"))
	if err != nil {
		return badRequest(c, "invalid from date")
	}
	to, err := cycle.ParseDay(c.Query("to"))
	if err != nil {
		return badRequest(c, "invalid to date")
	}
	if to.Before(from) {
		return badRequest(c, "to before from")
	}

	logs, err := handler.dayService.FetchLogsForUser(userID, from, to)
	if err != nil {
		return handler.internalError(c, err, "load day logs failed")
	}
	return c.JSON(fiber.Map{"days": logs})
}

func (handler *Handler) GetDay(c *fiber.Ctx) error {
	userID := currentUserID(c)

	day, err := dateParam(c)
	if err != nil {
		return badRequest(c, "invalid date")
	}

	entry, err := handler.dayService.FetchLogByDate(userID, day)
	if err != nil {
		return handler.internalError(c, err, "load day log failed")
	}
	return c.JSON(entry)
}

func (handler *Handler) UpsertDay(c *fiber.Ctx) error {
	userID := currentUserID(c)

	day, err := dateParam(c)
	if err != nil {
		return badRequest(c, "invalid date")
	}

	var payload services.DayEntryInput
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "invalid payload")
	}
	if !isValidFlow(payload.Flow) {
		return badRequest(c, "invalid flow")
	}

	entry, err := handler.dayService.UpsertDayEntry(userID, day, payload)
	if err != nil {
		return handler.internalError(c, err, "save day log failed")
	}
	return c.JSON(entry)
}

func isValidFlow(flow string) bool {
	switch flow {
	case "", models.FlowNone, models.FlowLight, models.FlowMedium, models.FlowHeavy:
		return true
	default:
		return false
	}
}
