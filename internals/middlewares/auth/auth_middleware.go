// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"surveyku_backend/internals/configs"
	helper "surveyku_backend/internals/helpers"
)

// AuthMiddleware memverifikasi bearer JWT dan menaruh user_id + role
// ke Locals. Tidak ada query DB di sini: gate harus jalan sebelum
// domain logic manapun.
//
// Status code mengikuti kontrak API lama: tanpa token → 401,
// token rusak/expired → 400.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Access denied. No token provided.")
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return helper.JsonError(c, fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Gagal parse token:", err)
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid token")
		}

		userID, ok := extractUserID(claims)
		if !ok {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid token")
		}
		c.Locals(helper.LocalsUserID, userID)

		if role, ok := claims["role"].(string); ok {
			c.Locals(helper.LocalsUserRole, role)
		}

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	h := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if h == "" {
		return "", fiber.ErrUnauthorized
	}
	token := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	if token == "" {
		return "", fiber.ErrUnauthorized
	}
	return token, nil
}

func extractUserID(claims jwt.MapClaims) (int, bool) {
	// angka di MapClaims selalu float64
	v, ok := claims["user_id"].(float64)
	if !ok || v <= 0 {
		return 0, false
	}
	return int(v), true
}

// BuildClaims menyusun payload token akses. Dipakai service login dan test.
func BuildClaims(userID int, role string, ttl time.Duration) jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}
}
