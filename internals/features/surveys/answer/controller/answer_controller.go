package controller

import (
	"encoding/json"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	answerDTO "surveyku_backend/internals/features/surveys/answer/dto"
	answerService "surveyku_backend/internals/features/surveys/answer/service"
	helper "surveyku_backend/internals/helpers"
	oss "surveyku_backend/internals/helpers/oss"
)

type AnswerController struct {
	DB   *gorm.DB
	Blob oss.VideoBlobService // nil saat OSS_DISABLED
}

func NewAnswerController(db *gorm.DB, blob oss.VideoBlobService) *AnswerController {
	return &AnswerController{DB: db, Blob: blob}
}

// Submit menerima multipart: field `answers` (JSON array) + file `video`
// opsional, lalu menjalankan alur di answer/service.
// POST /api/answers/submit
func (ctrl *AnswerController) Submit(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonFiberError(c, err)
	}

	raw := c.FormValue("answers")
	if raw == "" {
		// fallback: body JSON polos tanpa multipart
		raw = string(c.Body())
	}

	var inputs []answerDTO.AnswerInput
	if err := json.Unmarshal([]byte(raw), &inputs); err != nil {
		// terima juga satu object tunggal, seperti kontrak lama
		var single answerDTO.AnswerInput
		if err2 := json.Unmarshal([]byte(raw), &single); err2 != nil {
			log.Println("[ERROR] parse answers payload:", err)
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid answers format")
		}
		inputs = []answerDTO.AnswerInput{single}
	}

	fh, err := oss.GetVideoFile(c)
	if err != nil {
		return helper.JsonFiberError(c, err)
	}

	result, err := answerService.SubmitAnswers(c.UserContext(), ctrl.DB, ctrl.Blob, userID, inputs, fh)
	if err != nil {
		return helper.JsonFiberError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(answerDTO.SubmitAnswersResponse{
		Message:    "Answers submitted successfully",
		Answers:    result.Answers,
		VideoAdded: result.VideoAdded,
	})
}

// GetQuestionAnswers mengembalikan jawaban satu pertanyaan + nama penjawab,
// terbaru dulu.
// GET /api/answers/question/:questionId
func (ctrl *AnswerController) GetQuestionAnswers(c *fiber.Ctx) error {
	questionID, err := strconv.Atoi(c.Params("questionId"))
	if err != nil || questionID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question id")
	}

	var answers []answerDTO.AnswerWithAuthor
	if err := ctrl.DB.Table("answers").
		Select("answers.answer_id, answers.text, answers.created_at, answers.author_id, answers.survey_id, answers.question_id, "+
			"users.name AS author_name, users.last_name AS author_last_name").
		Joins("JOIN users ON users.user_id = answers.author_id").
		Where("answers.question_id = ?", questionID).
		Order("answers.created_at DESC").
		Scan(&answers).Error; err != nil {
		log.Println("[ERROR] fetch question answers:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch answers")
	}
	return helper.JsonOK(c, "ok", answers)
}

// GetResponderAnswers mengembalikan jawaban satu responder dalam satu survey.
// GET /api/answers/survey/:surveyId/responder/:responderId
func (ctrl *AnswerController) GetResponderAnswers(c *fiber.Ctx) error {
	surveyID, err1 := strconv.Atoi(c.Params("surveyId"))
	responderID, err2 := strconv.Atoi(c.Params("responderId"))
	if err1 != nil || err2 != nil || surveyID <= 0 || responderID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid surveyId or responderId")
	}

	var answers []answerDTO.AnswerWithAuthor
	if err := ctrl.DB.Table("answers").
		Select("answers.answer_id, answers.text, answers.created_at, answers.author_id, answers.survey_id, answers.question_id, "+
			"users.name AS author_name, users.last_name AS author_last_name").
		Joins("JOIN users ON users.user_id = answers.author_id").
		Where("answers.survey_id = ? AND answers.author_id = ?", surveyID, responderID).
		Order("answers.question_id ASC").
		Scan(&answers).Error; err != nil {
		log.Println("[ERROR] fetch responder answers:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch responder answers")
	}
	return helper.JsonOK(c, "ok", answers)
}
