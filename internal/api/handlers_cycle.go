package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/selene-health/selene/internal/cycle"
	"github.com/selene-health/selene/internal/services"
)

func (handler *Handler) GetCurrentPhase(c *fiber.Ctx) error {
	userID := currentUserID(c)

	info, hasData, err := handler.cycleService.GetCurrentPhase(userID)
	if err != nil {
		return handler.internalError(c, err, "load current phase failed")
	}
	if !hasData {
		return c.JSON(fiber.Map{"has_data": false})
	}
	return c.JSON(fiber.Map{"has_data": true, "phase": info})
}

func (handler *Handler) GetPredictions(c *fiber.Ctx) error {
	userID := currentUserID(c)

	predictions, hasData, err := handler.cycleService.GetPredictions(userID)
	if err != nil {
		return handler.internalError(c, err, "load predictions failed")
	}
	if !hasData {
		return c.JSON(fiber.Map{"has_data": false})
	}
	return c.JSON(fiber.Map{"has_data": true, "predictions": predictions})
}

func (handler *Handler) GetMonthCalendar(c *fiber.Ctx) error {
	userID := currentUserID(c)

	year := c.QueryInt("year")
	month := c.QueryInt("month")
	if year < 1 || month < 1 || month > 12 {
		return badRequest(c, "invalid year or month")
	}

	calendar, err := handler.cycleService.GetMonthCalendar(userID, year, time.Month(month))
	if errors.Is(err, cycle.ErrInvalidDate) {
		return badRequest(c, "invalid year or month")
	}
	if err != nil {
		return handler.internalError(c, err, "build calendar failed")
	}

	// Overlay actually logged period days so the calendar reflects recorded
	// history, not only the arithmetic projection.
	logged, err := handler.loggedPeriodKeys(userID, calendar)
	if err != nil {
		return handler.internalError(c, err, "load day logs failed")
	}
	for index := range calendar.Days {
		if logged[calendar.Days[index].DateString] {
			calendar.Days[index].IsPeriodDay = true
		}
	}

	return c.JSON(calendar)
}

func (handler *Handler) loggedPeriodKeys(userID uint, calendar cycle.MonthCalendar) (map[string]bool, error) {
	if len(calendar.Days) == 0 {
		return nil, nil
	}
	first := calendar.Days[0].Date
	last := calendar.Days[len(calendar.Days)-1].Date

	logs, err := handler.dayService.FetchLogsForUser(userID, first, last)
	if err != nil {
		return nil, err
	}

	keys := make(map[string]bool, len(logs))
	for _, entry := range logs {
		if entry.IsPeriod {
			keys[cycle.DateKey(entry.Date)] = true
		}
	}
	return keys, nil
}

func (handler *Handler) AddPeriodDay(c *fiber.Ctx) error {
	userID := currentUserID(c)

	day, err := dateParam(c)
	if err != nil {
		return badRequest(c, "invalid date")
	}

	result, err := handler.periodService.AddPeriodDay(userID, day)
	if errors.Is(err, services.ErrCycleTrackingDisabled) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "cycle tracking disabled"})
	}
	if err != nil {
		return handler.internalError(c, err, "add period day failed")
	}

	handler.log.WithFields(map[string]any{
		"user_id": userID,
		"date":    cycle.DateKey(day),
		"updated": result.Updated,
	}).Info("period day added")
	return c.JSON(result)
}

func (handler *Handler) RemovePeriodDay(c *fiber.Ctx) error {
	userID := currentUserID(c)

	day, err := dateParam(c)
	if err != nil {
		return badRequest(c, "invalid date")
	}

	result, err := handler.periodService.RemovePeriodDay(userID, day)
	if errors.Is(err, services.ErrCycleTrackingDisabled) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "cycle tracking disabled"})
	}
	if errors.Is(err, cycle.ErrReconciliationAborted) {
		handler.log.WithField("user_id", userID).Warn("period reconciliation aborted: future-dated start")
		return c.JSON(result)
	}
	if err != nil {
		return handler.internalError(c, err, "remove period day failed")
	}

	return c.JSON(result)
}
