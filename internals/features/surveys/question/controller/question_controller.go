package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	answerModel "surveyku_backend/internals/features/surveys/answer/model"
	questionDTO "surveyku_backend/internals/features/surveys/question/dto"
	questionModel "surveyku_backend/internals/features/surveys/question/model"
	surveyModel "surveyku_backend/internals/features/surveys/survey/model"
	helper "surveyku_backend/internals/helpers"
)

var validate = validator.New()

type QuestionController struct {
	DB *gorm.DB
}

func NewQuestionController(db *gorm.DB) *QuestionController {
	return &QuestionController{DB: db}
}

// GetByID mengembalikan pertanyaan + author + survey induknya.
// GET /api/questions/:id
func (ctrl *QuestionController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question id")
	}

	var detail questionDTO.QuestionDetail
	res := ctrl.DB.Table("questions").
		Select("questions.question_id, questions.title, questions.category, questions.survey_id, questions.author_id, "+
			"users.name AS author_name, users.last_name AS author_last_name, "+
			"surveys.title AS survey_title, surveys.created_at AS survey_created").
		Joins("JOIN users ON users.user_id = questions.author_id").
		Joins("JOIN surveys ON surveys.survey_id = questions.survey_id").
		Where("questions.question_id = ?", id).
		Scan(&detail)
	if res.Error != nil {
		log.Println("[ERROR] fetch question:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch question")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
	}
	return helper.JsonOK(c, "ok", detail)
}

// Create menambah satu pertanyaan ke survey yang sudah ada.
// POST /api/questions
func (ctrl *QuestionController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonFiberError(c, err)
	}

	var input questionDTO.CreateQuestionRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	input.Normalize()
	if err := validate.Struct(&input); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var survey surveyModel.SurveyModel
	if err := ctrl.DB.First(&survey, "survey_id = ?", input.SurveyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Survey not found")
		}
		log.Println("[ERROR] create question survey lookup:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create question")
	}

	question := questionModel.QuestionModel{
		Title:    input.Title,
		Category: input.Category,
		SurveyID: input.SurveyID,
		AuthorID: userID,
	}
	if err := ctrl.DB.Create(&question).Error; err != nil {
		log.Println("[ERROR] create question:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create question")
	}
	return helper.JsonCreated(c, "Question created successfully", question)
}

// Update partial update title/category.
// PATCH /api/questions/:id
func (ctrl *QuestionController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question id")
	}

	var input questionDTO.UpdateQuestionRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(&input); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var question questionModel.QuestionModel
	if err := ctrl.DB.First(&question, "question_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
		}
		log.Println("[ERROR] fetch question for update:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update question")
	}

	updates := map[string]any{}
	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Category != nil {
		updates["category"] = *input.Category
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := ctrl.DB.Model(&question).Updates(updates).Error; err != nil {
		log.Println("[ERROR] update question:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update question")
	}
	return helper.JsonUpdated(c, "Question updated successfully", question)
}

// Delete menghapus pertanyaan + seluruh jawabannya dalam satu transaksi.
// DELETE /api/questions/:id
func (ctrl *QuestionController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question id")
	}

	var question questionModel.QuestionModel
	if err := ctrl.DB.First(&question, "question_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
		}
		log.Println("[ERROR] fetch question for delete:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete question")
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", id).Delete(&answerModel.AnswerModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&question).Error
	}); err != nil {
		log.Println("[ERROR] delete question:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete question")
	}
	return helper.JsonDeleted(c, "Question deleted successfully", nil)
}
