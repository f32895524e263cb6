package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	cycleGroup := api.Group("/cycle", handler.AuthRequired)
	cycleGroup.Get("/phase", handler.GetCurrentPhase)
	cycleGroup.Get("/predictions", handler.GetPredictions)
	cycleGroup.Get("/calendar", handler.GetMonthCalendar)
	cycleGroup.Post("/period-days/:date", handler.AddPeriodDay)
	cycleGroup.Delete("/period-days/:date", handler.RemovePeriodDay)

	days := api.Group("/days", handler.AuthRequired)
	days.Get("", handler.GetDays)
	days.Get("/:date", handler.GetDay)
	days.Post("/:date", handler.UpsertDay)

	settings := api.Group("/settings", handler.AuthRequired)
	settings.Get("/cycle", handler.GetCycleSettings)
	settings.Put("/cycle", handler.UpdateCycleSettings)

	api.Get("/reminders", handler.AuthRequired, handler.GetReminders)
}
