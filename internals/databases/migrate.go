package database

import (
	"log"

	"gorm.io/gorm"

	answerModel "surveyku_backend/internals/features/surveys/answer/model"
	questionModel "surveyku_backend/internals/features/surveys/question/model"
	surveyModel "surveyku_backend/internals/features/surveys/survey/model"
	videoModel "surveyku_backend/internals/features/surveys/video/model"
	userModel "surveyku_backend/internals/features/users/user/model"
)

// Migrate menjalankan AutoMigrate untuk seluruh tabel. Unique index di
// answers dan survey_videos wajib ada: upsert submit jawaban bertumpu
// pada constraint tersebut.
func Migrate(db *gorm.DB) error {
	log.Println("🛠  AutoMigrate tabel...")
	return db.AutoMigrate(
		&userModel.UserModel{},
		&surveyModel.SurveyModel{},
		&questionModel.QuestionModel{},
		&answerModel.AnswerModel{},
		&videoModel.SurveyVideoModel{},
	)
}
