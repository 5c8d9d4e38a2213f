package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "surveyku_backend/internals/features/users/user/controller"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	userCtrl := userController.NewUserController(db)

	userRoutes := api.Group("/users")
	userRoutes.Get("/profile", userCtrl.GetProfile)
	userRoutes.Post("/get-by-ids", userCtrl.GetByIDs)
}
