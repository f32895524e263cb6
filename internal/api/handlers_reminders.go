package api

import "github.com/gofiber/fiber/v2"

// GetReminders lists the reminder rows the scheduler has recorded for the
// user, oldest due date first.
func (handler *Handler) GetReminders(c *fiber.Ctx) error {
	userID := currentUserID(c)

	reminders, err := handler.reminders.ListByUser(userID)
	if err != nil {
		return handler.internalError(c, err, "load reminders failed")
	}
	return c.JSON(fiber.Map{"reminders": reminders})
}
