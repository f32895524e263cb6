package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/selene-health/selene/internal/models"
	"github.com/selene-health/selene/internal/services"
)

func (handler *Handler) GetCycleSettings(c *fiber.Ctx) error {
	userID := currentUserID(c)

	user, err := handler.settingsService.GetCycleSettings(userID)
	if err != nil {
		return handler.internalError(c, err, "load settings failed")
	}
	return c.JSON(cycleSettingsPayload(user))
}

func (handler *Handler) UpdateCycleSettings(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var input services.CycleSettingsInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}

	user, err := handler.settingsService.UpdateCycleSettings(userID, input)
	if errors.Is(err, services.ErrInvalidSettingsInput) {
		return badRequest(c, err.Error())
	}
	if err != nil {
		return handler.internalError(c, err, "update settings failed")
	}

	handler.log.WithField("user_id", userID).Info("cycle settings updated")
	return c.JSON(cycleSettingsPayload(user))
}

func cycleSettingsPayload(user models.User) fiber.Map {
	payload := fiber.Map{
		"cycle_type":             user.CycleType,
		"cycle_length":           user.CycleLength,
		"cycle_length_min":       user.CycleLengthMin,
		"cycle_length_max":       user.CycleLengthMax,
		"effective_cycle_length": user.EffectiveCycleLength(),
		"period_length":          user.PeriodLength,
		"track_cycle":            user.TrackCycle,
	}
	if user.LastPeriodStart != nil {
		payload["last_period_start"] = user.LastPeriodStart
	}
	if user.LastPeriodEnd != nil {
		payload["last_period_end"] = user.LastPeriodEnd
	}
	return payload
}
