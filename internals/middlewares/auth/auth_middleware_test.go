package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surveyku_backend/internals/configs"
	helper "surveyku_backend/internals/helpers"
)

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func newProtectedApp(t *testing.T) *fiber.App {
	t.Helper()
	configs.JWTSecret = "test-secret"

	app := fiber.New()
	app.Get("/private", AuthMiddleware(), func(c *fiber.Ctx) error {
		userID, err := helper.GetUserIDFromLocals(c)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{
			"user_id": userID,
			"role":    c.Locals(helper.LocalsUserRole),
		})
	})
	return app
}

func TestAuthMiddlewareNoToken(t *testing.T) {
	app := newProtectedApp(t)

	req := httptest.NewRequest("GET", "/private", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	app := newProtectedApp(t)

	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAuthMiddlewareWrongSecret(t *testing.T) {
	app := newProtectedApp(t)

	token := signToken(t, BuildClaims(7, "ASKER", time.Hour), "other-secret")
	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	app := newProtectedApp(t)

	token := signToken(t, BuildClaims(7, "ASKER", -time.Hour), "test-secret")
	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	app := newProtectedApp(t)

	token := signToken(t, BuildClaims(7, "ASKER", time.Hour), "test-secret")
	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRoleMiddleware(t *testing.T) {
	configs.JWTSecret = "test-secret"

	app := fiber.New()
	app.Get("/admin-only", AuthMiddleware(), OnlyRoles("admins only", "ADMIN"), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	t.Run("non-admin forbidden", func(t *testing.T) {
		token := signToken(t, BuildClaims(7, "RESPONDER", time.Hour), "test-secret")
		req := httptest.NewRequest("GET", "/admin-only", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("admin allowed", func(t *testing.T) {
		token := signToken(t, BuildClaims(1, "ADMIN", time.Hour), "test-secret")
		req := httptest.NewRequest("GET", "/admin-only", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

func TestBuildClaimsRoundTrip(t *testing.T) {
	claims := BuildClaims(42, "ASKER", time.Hour)

	userID, ok := extractUserID(jwt.MapClaims{"user_id": float64(42)})
	require.True(t, ok)
	assert.Equal(t, 42, userID)

	assert.Equal(t, 42, claims["user_id"])
	assert.Equal(t, "ASKER", claims["role"])
	assert.Less(t, claims["iat"].(int64), claims["exp"].(int64))
}

func TestExtractUserIDRejectsBadClaims(t *testing.T) {
	_, ok := extractUserID(jwt.MapClaims{})
	assert.False(t, ok)

	_, ok = extractUserID(jwt.MapClaims{"user_id": "7"})
	assert.False(t, ok)

	_, ok = extractUserID(jwt.MapClaims{"user_id": float64(0)})
	assert.False(t, ok)
}
