package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	answerController "surveyku_backend/internals/features/surveys/answer/controller"
	videoController "surveyku_backend/internals/features/surveys/video/controller"
	oss "surveyku_backend/internals/helpers/oss"
)

func AnswerRoutes(api fiber.Router, db *gorm.DB, blob oss.VideoBlobService) {
	answerCtrl := answerController.NewAnswerController(db, blob)
	videoCtrl := videoController.NewVideoController(db)

	answerRoutes := api.Group("/answers")
	answerRoutes.Post("/submit", answerCtrl.Submit)
	answerRoutes.Get("/question/:questionId", answerCtrl.GetQuestionAnswers)
	answerRoutes.Get("/survey/:surveyId/responder/:responderId", answerCtrl.GetResponderAnswers)
	answerRoutes.Get("/survey/:surveyId/video/:responderId", videoCtrl.GetResponderVideo)
}
