package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	surveyController "surveyku_backend/internals/features/surveys/survey/controller"
)

func SurveyRoutes(api fiber.Router, db *gorm.DB) {
	surveyCtrl := surveyController.NewSurveyController(db)

	surveyRoutes := api.Group("/surveys")
	surveyRoutes.Get("/get-all-surveys", surveyCtrl.GetAll)
	surveyRoutes.Get("/my-surveys", surveyCtrl.GetMine)
	surveyRoutes.Post("/add-survey", surveyCtrl.Create)
	surveyRoutes.Get("/:id", surveyCtrl.GetByID)
	surveyRoutes.Patch("/:id/update-survey", surveyCtrl.Update)
	surveyRoutes.Get("/:id/questions", surveyCtrl.GetQuestions)
	surveyRoutes.Get("/:id/responders", surveyCtrl.GetResponders)
}
