package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	questionController "surveyku_backend/internals/features/surveys/question/controller"
)

func QuestionRoutes(api fiber.Router, db *gorm.DB) {
	questionCtrl := questionController.NewQuestionController(db)

	questionRoutes := api.Group("/questions")
	questionRoutes.Get("/:id", questionCtrl.GetByID)
	questionRoutes.Post("/", questionCtrl.Create)
	questionRoutes.Patch("/:id", questionCtrl.Update)
	questionRoutes.Delete("/:id", questionCtrl.Delete)
}
