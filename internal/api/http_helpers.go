package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/selene-health/selene/internal/cycle"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
}

func (handler *Handler) internalError(c *fiber.Ctx, err error, message string) error {
	handler.log.WithError(err).Error(message)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": message})
}

func currentUserID(c *fiber.Ctx) uint {
	userID, _ := c.Locals(contextUserKey).(uint)
	return userID
}

// dateParam parses the :date route segment as a YYYY-MM-DD UTC day.
func dateParam(c *fiber.Ctx) (time.Time, error) {
	return cycle.ParseDay(c.Params("date"))
}
