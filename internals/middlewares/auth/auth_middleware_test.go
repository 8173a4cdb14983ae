package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artspace_backend/internals/configs"
	"artspace_backend/internals/constants"
	authHelper "artspace_backend/internals/helpers/auth"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Use(TokenFilter())
	app.Get("/open", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/secure", RequireAuth(), func(c *fiber.Ctx) error {
		ident, _ := authHelper.FromFiber(c)
		return c.JSON(ident)
	})
	app.Get("/admin-only", RequireAuth(), OnlyRoles(constants.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func signTestToken(t *testing.T, login string, userID uint, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":     login,
		"user_id": userID,
		"role":    role,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
	require.NoError(t, err)
	return signed
}

func TestAnonymousRequestIsRejectedOnProtectedRoute(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/secure", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestValidTokenInCookie(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := newTestApp()

	req := httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Cookie", configs.JWTCookieName+"="+signTestToken(t, "alice", 5, "USER"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestValidTokenInBearerHeader(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := newTestApp()

	req := httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signTestToken(t, "alice", 5, "USER"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGarbageTokenIsTreatedAsAnonymous(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := newTestApp()

	// Open routes still answer.
	req := httptest.NewRequest("GET", "/open", nil)
	req.Header.Set("Cookie", configs.JWTCookieName+"=not.a.token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Protected routes reject with 401, not 500.
	req = httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Cookie", configs.JWTCookieName+"=not.a.token")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestWronglySignedTokenIsTreatedAsAnonymous(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := newTestApp()

	claims := jwt.MapClaims{"sub": "mallory", "user_id": 1, "role": "ADMIN", "exp": time.Now().Add(time.Hour).Unix()}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Cookie", configs.JWTCookieName+"="+forged)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestWrongRoleIsForbidden(t *testing.T) {
	configs.JWTSecret = "test-secret"
	app := newTestApp()

	req := httptest.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Cookie", configs.JWTCookieName+"="+signTestToken(t, "alice", 5, "USER"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Cookie", configs.JWTCookieName+"="+signTestToken(t, "root", 0, "ADMIN"))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
