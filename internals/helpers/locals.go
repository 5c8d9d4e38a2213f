// file: internals/helpers/locals.go
package helper

import (
	"github.com/gofiber/fiber/v2"
)

// Keys the auth middleware stores on the request context.
const (
	LocalsUserID   = "user_id"
	LocalsUserRole = "userRole"
)

// GetUserIDFromLocals mengambil user_id hasil parse JWT di middleware.
func GetUserIDFromLocals(c *fiber.Ctx) (int, error) {
	id, ok := c.Locals(LocalsUserID).(int)
	if !ok || id <= 0 {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user ID missing, please log in again")
	}
	return id, nil
}

// GetUserRoleFromLocals mengambil role dari context request.
func GetUserRoleFromLocals(c *fiber.Ctx) (string, error) {
	role, ok := c.Locals(LocalsUserRole).(string)
	if !ok || role == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: missing role information")
	}
	return role, nil
}
