package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"

	"github.com/selene-health/selene/internal/api"
	"github.com/selene-health/selene/internal/config"
	"github.com/selene-health/selene/internal/db"
	"github.com/selene-health/selene/internal/logging"
	"github.com/selene-health/selene/internal/scheduler"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config load failed: %v", err)
	}
	log := logging.Init(cfg)

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}
	repositories := db.NewRepositories(database)

	handler := api.NewHandler(database, cfg.SecretKey, cfg.CookieSecure, log)

	app := fiber.New(fiber.Config{
		AppName:               "Selene",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	api.RegisterRoutes(app, handler)

	reminders := scheduler.NewReminderScheduler(
		repositories.Users,
		repositories.Reminders,
		cfg.ReminderLeadDays,
		log.WithField("component", "reminders"),
	)
	if err := reminders.Start(cfg.ReminderCron); err != nil {
		log.Fatalf("reminder scheduler init failed: %v", err)
	}
	defer reminders.Stop()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Errorf("server shutdown failed: %v", err)
		}
	}()

	log.Infof("Selene listening on http://0.0.0.0:%s (db: %s)", cfg.Port, cfg.DBPath)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
