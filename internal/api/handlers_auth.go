package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/selene-health/selene/internal/models"
	"github.com/selene-health/selene/internal/services"
)

type credentialsInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	var input credentialsInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}

	user, err := handler.authService.Register(input.Email, input.Password)
	switch {
	case errors.Is(err, services.ErrEmailTaken):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "email already registered"})
	case errors.Is(err, services.ErrWeakPassword):
		return badRequest(c, "password too short")
	case errors.Is(err, services.ErrInvalidCredentials):
		return badRequest(c, "invalid email")
	case err != nil:
		return handler.internalError(c, err, "registration failed")
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return handler.internalError(c, err, "issue session failed")
	}
	handler.log.WithField("user_id", user.ID).Info("user registered")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": user.ID, "email": user.Email})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var input credentialsInput
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "invalid payload")
	}

	user, err := handler.authService.Authenticate(input.Email, input.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		return unauthorized(c)
	}
	if err != nil {
		return handler.internalError(c, err, "login failed")
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return handler.internalError(c, err, "issue session failed")
	}
	return c.JSON(fiber.Map{"id": user.ID, "email": user.Email})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) setAuthCookie(c *fiber.Ctx, user *models.User) error {
	now := time.Now()
	claims := authClaims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(authTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(handler.secretKey)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  now.Add(authTokenTTL),
	})
	return nil
}
