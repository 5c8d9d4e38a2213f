package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminRoute "surveyku_backend/internals/features/admin/route"
	answerRoute "surveyku_backend/internals/features/surveys/answer/route"
	questionRoute "surveyku_backend/internals/features/surveys/question/route"
	surveyRoute "surveyku_backend/internals/features/surveys/survey/route"
	authRoute "surveyku_backend/internals/features/users/auth/route"
	userRoute "surveyku_backend/internals/features/users/user/route"
	"surveyku_backend/internals/configs"
	oss "surveyku_backend/internals/helpers/oss"
	authMiddleware "surveyku_backend/internals/middlewares/auth"
)

// SetupRoutes mendaftarkan seluruh endpoint. /api/auth publik, sisanya
// di belakang AuthMiddleware; /api/admin ditambah role gate.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	blob := buildVideoBlobService()

	api := app.Group("/api")

	// public
	authRoute.AuthRoutes(api, db)

	// authenticated
	protected := api.Group("", authMiddleware.AuthMiddleware())
	userRoute.UserRoutes(protected, db)
	surveyRoute.SurveyRoutes(protected, db)
	questionRoute.QuestionRoutes(protected, db)
	answerRoute.AnswerRoutes(protected, db, blob)

	// admin (auth + role)
	adminRoute.AdminRoutes(protected, db)
}

func buildVideoBlobService() oss.VideoBlobService {
	if configs.OSSDisabled() {
		return nil
	}
	svc, err := oss.NewOSSVideoBlobServiceFromEnv()
	if err != nil {
		// LoadEnv sudah memvalidasi env; sampai sini berarti endpoint/creds salah
		log.Fatalf("❌ Gagal inisialisasi OSS client: %v", err)
	}
	return svc
}
