package auth

import (
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"artspace_backend/internals/configs"
	authHelper "artspace_backend/internals/helpers/auth"
)

// TokenFilter extracts the JWT from the session cookie (Authorization: Bearer
// fallback) and, when it is valid, stores the identity in locals and the
// request context. A missing, malformed, expired or badly signed token is
// logged and treated as absent: the request continues anonymous and the
// route guards decide whether that is acceptable.
func TokenFilter() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := extractToken(c)
		if raw == "" {
			return c.Next()
		}

		ident, err := parseToken(raw)
		if err != nil {
			log.Printf("[WARN] discarding token: %v", err)
			return c.Next()
		}

		c.Locals(authHelper.LocalsKey, ident)
		c.SetUserContext(authHelper.WithIdentity(c.UserContext(), ident))
		return c.Next()
	}
}

// RequireAuth rejects anonymous requests.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := authHelper.FromFiber(c); !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    fiber.StatusUnauthorized,
				"status":  "error",
				"message": "Authentication required",
			})
		}
		return c.Next()
	}
}

func extractToken(c *fiber.Ctx) string {
	if v := strings.TrimSpace(c.Cookies(configs.JWTCookieName)); v != "" {
		return v
	}
	const prefix = "Bearer "
	if auth := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(auth, prefix) {
		return strings.TrimSpace(auth[len(prefix):])
	}
	return ""
}

func parseToken(raw string) (authHelper.Identity, error) {
	if configs.JWTSecret == "" {
		return authHelper.Identity{}, fmt.Errorf("JWT secret not configured")
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(configs.JWTSecret), nil
	})
	if err != nil {
		return authHelper.Identity{}, err
	}
	if !token.Valid {
		return authHelper.Identity{}, fmt.Errorf("token invalid")
	}

	login, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	userID, ok := claims["user_id"].(float64)
	if login == "" || !ok {
		return authHelper.Identity{}, fmt.Errorf("token missing identity claims")
	}

	return authHelper.Identity{
		UserID: uint(userID),
		Login:  login,
		Role:   role,
	}, nil
}
