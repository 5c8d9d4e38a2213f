package controller

import (
	"log"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"surveyku_backend/internals/constants"
	adminDTO "surveyku_backend/internals/features/admin/dto"
	adminService "surveyku_backend/internals/features/admin/service"
	helper "surveyku_backend/internals/helpers"
)

var validate = validator.New()

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// GetStats — GET /api/admin/stats
func (ctrl *AdminController) GetStats(c *fiber.Ctx) error {
	stats, err := adminService.GetDashboardStats(ctrl.DB)
	if err != nil {
		return helper.JsonFiberError(c, err)
	}
	return helper.JsonOK(c, "ok", stats)
}

// GetUsers — GET /api/admin/users, tiap baris membawa jumlah survey & jawaban.
func (ctrl *AdminController) GetUsers(c *fiber.Ctx) error {
	var users []adminDTO.AdminUserItem
	if err := ctrl.DB.Table("users").
		Select("users.user_id, users.name, users.last_name, users.email, users.role, users.created_at, " +
			"(SELECT COUNT(*) FROM surveys WHERE surveys.author_id = users.user_id) AS surveys_count, " +
			"(SELECT COUNT(*) FROM answers WHERE answers.author_id = users.user_id) AS answers_count").
		Order("users.created_at DESC").
		Scan(&users).Error; err != nil {
		log.Println("[ERROR] admin fetch users:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}
	return helper.JsonOK(c, "ok", users)
}

// UpdateUserRole — PATCH /api/admin/users/:id/role
func (ctrl *AdminController) UpdateUserRole(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("id"))
	if err != nil || userID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var req adminDTO.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Role = strings.ToUpper(strings.TrimSpace(req.Role))
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !constants.IsValidRole(req.Role) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid role")
	}

	res := ctrl.DB.Table("users").Where("user_id = ?", userID).Update("role", req.Role)
	if res.Error != nil {
		log.Println("[ERROR] update user role:", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update role")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	return helper.JsonUpdated(c, "Role updated", fiber.Map{"user_id": userID, "role": req.Role})
}

// DeleteUser — DELETE /api/admin/users/:id
func (ctrl *AdminController) DeleteUser(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("id"))
	if err != nil || userID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}
	if err := adminService.DeleteUserCascade(ctrl.DB, userID); err != nil {
		return helper.JsonFiberError(c, err)
	}
	return helper.JsonDeleted(c, "User deleted", fiber.Map{"user_id": userID})
}

// GetSurveys — GET /api/admin/surveys
func (ctrl *AdminController) GetSurveys(c *fiber.Ctx) error {
	var surveys []adminDTO.AdminSurveyItem
	if err := ctrl.DB.Table("surveys").
		Select("surveys.survey_id, surveys.title, surveys.description, surveys.created_at, surveys.author_id, " +
			"users.name AS author_name, users.last_name AS author_last_name, " +
			"(SELECT COUNT(*) FROM questions WHERE questions.survey_id = surveys.survey_id) AS questions_count, " +
			"(SELECT COUNT(*) FROM answers WHERE answers.survey_id = surveys.survey_id) AS answers_count").
		Joins("JOIN users ON users.user_id = surveys.author_id").
		Order("surveys.created_at DESC").
		Scan(&surveys).Error; err != nil {
		log.Println("[ERROR] admin fetch surveys:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch surveys")
	}
	return helper.JsonOK(c, "ok", surveys)
}

// DeleteSurvey — DELETE /api/admin/surveys/:id
func (ctrl *AdminController) DeleteSurvey(c *fiber.Ctx) error {
	surveyID, err := strconv.Atoi(c.Params("id"))
	if err != nil || surveyID <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid survey id")
	}
	if err := adminService.DeleteSurveyCascade(ctrl.DB, surveyID); err != nil {
		return helper.JsonFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Survey deleted", fiber.Map{"survey_id": surveyID})
}
