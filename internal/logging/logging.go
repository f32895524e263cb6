package logging

import (
	"os"

	"github.com/selene-health/selene/internal/config"
	"github.com/sirupsen/logrus"
)

// Init configures the process-wide logrus logger from application config:
// JSON output for production/staging, human-readable text elsewhere.
func Init(cfg *config.Config) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warnf("invalid log level %q, defaulting to info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	switch cfg.Environment {
	case "production", "staging":
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	default:
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	return log
}
