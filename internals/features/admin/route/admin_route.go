package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"surveyku_backend/internals/constants"
	adminController "surveyku_backend/internals/features/admin/controller"
	authMiddleware "surveyku_backend/internals/middlewares/auth"
)

func AdminRoutes(api fiber.Router, db *gorm.DB) {
	adminCtrl := adminController.NewAdminController(db)

	adminRoutes := api.Group("/admin",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("admin"), constants.AdminOnly...),
	)
	adminRoutes.Get("/stats", adminCtrl.GetStats)
	adminRoutes.Get("/users", adminCtrl.GetUsers)
	adminRoutes.Patch("/users/:id/role", adminCtrl.UpdateUserRole)
	adminRoutes.Delete("/users/:id", adminCtrl.DeleteUser)
	adminRoutes.Get("/surveys", adminCtrl.GetSurveys)
	adminRoutes.Delete("/surveys/:id", adminCtrl.DeleteSurvey)
}
