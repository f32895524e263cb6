package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/selene-health/selene/internal/db"
	"github.com/selene-health/selene/internal/services"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	authCookieName = "selene_token"
	authTokenTTL   = 7 * 24 * time.Hour
	contextUserKey = "current_user_id"
)

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

type Handler struct {
	secretKey    []byte
	cookieSecure bool
	log          *logrus.Logger

	authService     *services.AuthService
	cycleService    *services.CycleService
	periodService   *services.PeriodService
	dayService      *services.DayService
	settingsService *services.SettingsService
	reminders       *db.ReminderRepository
}

func NewHandler(database *gorm.DB, secretKey string, cookieSecure bool, log *logrus.Logger) *Handler {
	repositories := db.NewRepositories(database)
	return &Handler{
		secretKey:       []byte(secretKey),
		cookieSecure:    cookieSecure,
		log:             log,
		authService:     services.NewAuthService(repositories.Users),
		cycleService:    services.NewCycleService(repositories.Users),
		periodService:   services.NewPeriodService(repositories.Users, repositories.DayLogs),
		dayService:      services.NewDayService(repositories.DayLogs),
		settingsService: services.NewSettingsService(repositories.Users),
		reminders:       repositories.Reminders,
	}
}
