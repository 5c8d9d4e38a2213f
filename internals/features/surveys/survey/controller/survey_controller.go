package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	questionModel "surveyku_backend/internals/features/surveys/question/model"
	surveyDTO "surveyku_backend/internals/features/surveys/survey/dto"
	surveyModel "surveyku_backend/internals/features/surveys/survey/model"
	surveyService "surveyku_backend/internals/features/surveys/survey/service"
	helper "surveyku_backend/internals/helpers"
)

var validate = validator.New()

type SurveyController struct {
	DB *gorm.DB
}

func NewSurveyController(db *gorm.DB) *SurveyController {
	return &SurveyController{DB: db}
}

const surveyListSelect = "surveys.survey_id, surveys.title, surveys.description, surveys.created_at, surveys.author_id, " +
	"users.name AS author_name, users.last_name AS author_last_name, users.email AS author_email, " +
	"(SELECT COUNT(*) FROM questions q WHERE q.survey_id = surveys.survey_id) AS questions_count"

// GetAll mengembalikan semua survey + author + jumlah pertanyaan.
// GET /api/surveys/get-all-surveys
func (ctrl *SurveyController) GetAll(c *fiber.Ctx) error {
	var items []surveyDTO.SurveyListItem
	if err := ctrl.DB.Table("surveys").
		Select(surveyListSelect).
		Joins("JOIN users ON users.user_id = surveys.author_id").
		Order("surveys.created_at DESC").
		Scan(&items).Error; err != nil {
		log.Println("[ERROR] list surveys:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch surveys")
	}
	return helper.JsonOK(c, "ok", items)
}

// GetMine mengembalikan survey milik user dari token.
// GET /api/surveys/my-surveys
func (ctrl *SurveyController) GetMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonFiberError(c, err)
	}

	var items []surveyDTO.SurveyListItem
	if err := ctrl.DB.Table("surveys").
		Select(surveyListSelect).
		Joins("JOIN users ON users.user_id = surveys.author_id").
		Where("surveys.author_id = ?", userID).
		Order("surveys.created_at DESC").
		Scan(&items).Error; err != nil {
		log.Println("[ERROR] list my surveys:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch surveys")
	}
	return helper.JsonOK(c, "ok", items)
}

// GetByID mengembalikan satu survey beserta seluruh pertanyaannya.
// GET /api/surveys/:id
func (ctrl *SurveyController) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid survey id")
	}

	var survey surveyModel.SurveyModel
	if err := ctrl.DB.Preload("Questions").First(&survey, "survey_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Survey not found")
		}
		log.Println("[ERROR] fetch survey:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch survey")
	}
	return helper.JsonOK(c, "ok", survey)
}

// Create menyimpan survey + seluruh pertanyaan nested dalam satu transaksi.
// POST /api/surveys/add-survey
func (ctrl *SurveyController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonFiberError(c, err)
	}

	var input surveyDTO.CreateSurveyRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	input.Normalize()
	if err := validate.Struct(&input); err != nil {
		return helper.JsonValidationError(c, err)
	}

	survey := input.ToModel(userID)
	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(survey).Error
	}); err != nil {
		log.Println("[ERROR] create survey:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create survey")
	}

	return helper.JsonCreated(c, "Survey created successfully", survey)
}

// Update partial update title/description.
// PATCH /api/surveys/:id/update-survey
func (ctrl *SurveyController) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid survey id")
	}

	var input surveyDTO.UpdateSurveyRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(&input); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var survey surveyModel.SurveyModel
	if err := ctrl.DB.First(&survey, "survey_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Survey not found")
		}
		log.Println("[ERROR] fetch survey for update:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update survey")
	}

	updates := map[string]any{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.DB.Model(&survey).Updates(updates).Error; err != nil {
		log.Println("[ERROR] update survey:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update survey")
	}
	return helper.JsonUpdated(c, "Survey updated successfully", survey)
}

// GetQuestions mengembalikan pertanyaan milik satu survey.
// GET /api/surveys/:id/questions
func (ctrl *SurveyController) GetQuestions(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid survey id")
	}

	var survey surveyModel.SurveyModel
	if err := ctrl.DB.First(&survey, "survey_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Survey not found")
		}
		log.Println("[ERROR] fetch survey:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch questions")
	}

	var questions []questionModel.QuestionModel
	if err := ctrl.DB.Where("survey_id = ?", id).Order("question_id ASC").Find(&questions).Error; err != nil {
		log.Println("[ERROR] fetch survey questions:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch questions")
	}
	return helper.JsonOK(c, "ok", questions)
}

// GetResponders mengembalikan agregasi responder unik (lihat service).
// GET /api/surveys/:id/responders
func (ctrl *SurveyController) GetResponders(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid survey id")
	}

	responders, err := surveyService.GetSurveyResponders(ctrl.DB, id)
	if err != nil {
		return helper.JsonFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", responders)
}

func parseIDParam(c *fiber.Ctx, name string) (int, error) {
	id, err := strconv.Atoi(c.Params(name))
	if err != nil || id <= 0 {
		return 0, fiber.ErrBadRequest
	}
	return id, nil
}
