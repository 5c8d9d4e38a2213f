// internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"surveyku_backend/internals/configs"
	"surveyku_backend/internals/constants"
	authDTO "surveyku_backend/internals/features/users/auth/dto"
	userModel "surveyku_backend/internals/features/users/user/model"
	helper "surveyku_backend/internals/helpers"
	authMiddleware "surveyku_backend/internals/middlewares/auth"
)

var validate = validator.New()

// ========================== REGISTER ==========================
// POST /api/auth/register
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input authDTO.RegisterRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	input.Normalize()
	if err := validate.Struct(&input); err != nil {
		return helper.JsonValidationError(c, err)
	}
	// ADMIN tidak pernah bisa didaftarkan sendiri
	if !constants.IsRegisterableRole(input.Role) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Role must be ASKER or RESPONDER")
	}

	// cek duplikat email dulu supaya errornya jelas, bukan 500 dari unique index
	var existing userModel.UserModel
	err := db.Where("email = ?", input.Email).First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "User already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("[ERROR] register email lookup:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register user")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := userModel.UserModel{
		Name:     input.Name,
		LastName: input.LastName,
		Email:    input.Email,
		Password: string(hashed),
		Role:     input.Role,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Println("[ERROR] register create:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register user")
	}

	return helper.JsonCreated(c, "User registered successfully", authDTO.AuthUserResponse{
		UserID:   user.UserID,
		Name:     user.Name,
		LastName: user.LastName,
		Email:    user.Email,
		Role:     user.Role,
	})
}

// ========================== LOGIN ==========================
// POST /api/auth/login
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input authDTO.LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	input.Normalize()
	if err := validate.Struct(&input); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user userModel.UserModel
	if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		log.Println("[ERROR] login lookup:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to log in")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := IssueAccessToken(user.UserID, user.Role)
	if err != nil {
		log.Println("[ERROR] login sign token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to log in")
	}

	return helper.JsonOK(c, "Login successful", authDTO.LoginResponse{
		Token: token,
		User: authDTO.AuthUserResponse{
			UserID:   user.UserID,
			Name:     user.Name,
			LastName: user.LastName,
			Email:    user.Email,
			Role:     user.Role,
		},
	})
}

// IssueAccessToken menandatangani access token HS256 dengan TTL dari config.
func IssueAccessToken(userID int, role string) (string, error) {
	ttl := time.Duration(configs.JWTExpiresInMin) * time.Minute
	claims := authMiddleware.BuildClaims(userID, role, ttl)
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
}
