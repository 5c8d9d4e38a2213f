package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	videoModel "surveyku_backend/internals/features/surveys/video/model"
	helper "surveyku_backend/internals/helpers"
)

type VideoController struct {
	DB *gorm.DB
}

func NewVideoController(db *gorm.DB) *VideoController {
	return &VideoController{DB: db}
}

// GetResponderVideo mengembalikan metadata video satu responder di satu
// survey, atau data:null kalau responder belum pernah upload.
// GET /api/answers/survey/:surveyId/video/:responderId
func (ctrl *VideoController) GetResponderVideo(c *fiber.Ctx) error {
	surveyID, err1 := strconv.Atoi(c.Params("surveyId"))
	responderID, err2 := strconv.Atoi(c.Params("responderId"))
	if err1 != nil || err2 != nil || surveyID <= 0 || responderID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid surveyId or responderId")
	}

	var video videoModel.SurveyVideoModel
	err := ctrl.DB.
		Where("survey_id = ? AND uploader_id = ?", surveyID, responderID).
		First(&video).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonOK(c, "No video for this responder", nil)
		}
		log.Println("[ERROR] fetch responder video:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch video")
	}
	return helper.JsonOK(c, "ok", video)
}
