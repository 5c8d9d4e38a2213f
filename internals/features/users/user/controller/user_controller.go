package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userDTO "surveyku_backend/internals/features/users/user/dto"
	userModel "surveyku_backend/internals/features/users/user/model"
	helper "surveyku_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GetProfile mengembalikan profil user dari token + jumlah konten miliknya.
// GET /api/users/profile
func (ctrl *UserController) GetProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromLocals(c)
	if err != nil {
		return helper.JsonFiberError(c, err)
	}

	var user userModel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		log.Println("[ERROR] profile lookup:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user profile")
	}

	profile := userDTO.UserProfileResponse{
		UserID:    user.UserID,
		Name:      user.Name,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
	type count struct {
		table string
		dst   *int64
	}
	for _, cnt := range []count{
		{"surveys", &profile.SurveysCount},
		{"questions", &profile.QuestionsCount},
		{"answers", &profile.AnswersCount},
	} {
		if err := ctrl.DB.Table(cnt.table).Where("author_id = ?", userID).Count(cnt.dst).Error; err != nil {
			log.Printf("[ERROR] profile count %s: %v", cnt.table, err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user profile")
		}
	}
	if err := ctrl.DB.Table("survey_videos").Where("uploader_id = ?", userID).Count(&profile.SurveyVideosCount).Error; err != nil {
		log.Println("[ERROR] profile count survey_videos:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user profile")
	}

	return helper.JsonOK(c, "ok", profile)
}

// GetByIDs mengembalikan baris user minimal untuk daftar id yang diminta.
// POST /api/users/get-by-ids
func (ctrl *UserController) GetByIDs(c *fiber.Ctx) error {
	var input userDTO.UsersByIDsRequest
	if err := c.BodyParser(&input); err != nil || input.UserIDs == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user IDs. Provide an array of IDs.")
	}

	var users []userDTO.UserSummary
	if err := ctrl.DB.Table("users").
		Select("user_id, name, last_name, email, role").
		Where("user_id IN ?", input.UserIDs).
		Scan(&users).Error; err != nil {
		log.Println("[ERROR] get-by-ids:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch users.")
	}
	if len(users) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No users found for the provided IDs.")
	}

	return helper.JsonOK(c, "ok", users)
}
