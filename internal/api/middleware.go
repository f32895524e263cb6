package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	token := c.Cookies(authCookieName)
	if token == "" {
		return unauthorized(c)
	}

	claims := &authClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return handler.secretKey, nil
	})
	if err != nil || !parsed.Valid || claims.UserID == 0 {
		return unauthorized(c)
	}

	c.Locals(contextUserKey, claims.UserID)
	return c.Next()
}
