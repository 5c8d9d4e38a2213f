// internals/features/admin/service/admin_service.go
//
// Operasi admin yang menyentuh banyak tabel sekaligus. Semua cascade delete
// dibungkus satu transaksi supaya tidak pernah ada baris yatim.
package service

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	adminDTO "surveyku_backend/internals/features/admin/dto"
	userModel "surveyku_backend/internals/features/users/user/model"
)

// GetDashboardStats merangkum isi platform untuk halaman dashboard admin.
func GetDashboardStats(db *gorm.DB) (*adminDTO.DashboardStats, error) {
	stats := &adminDTO.DashboardStats{
		UsersByRole: map[string]int64{},
	}

	type tableCount struct {
		table string
		dst   *int64
	}
	for _, tc := range []tableCount{
		{"users", &stats.Counts.Users},
		{"surveys", &stats.Counts.Surveys},
		{"questions", &stats.Counts.Questions},
		{"answers", &stats.Counts.Answers},
		{"survey_videos", &stats.Counts.Videos},
	} {
		if err := db.Table(tc.table).Count(tc.dst).Error; err != nil {
			log.Println("[ERROR] dashboard count", tc.table, ":", err)
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch dashboard stats")
		}
	}

	var roleRows []struct {
		Role  string
		Total int64
	}
	if err := db.Table("users").
		Select("role, COUNT(*) AS total").
		Group("role").
		Scan(&roleRows).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch dashboard stats")
	}
	for _, r := range roleRows {
		stats.UsersByRole[r.Role] = r.Total
	}

	if err := db.Table("answers").
		Select("answers.answer_id, answers.text, answers.created_at, "+
			"users.name AS author_name, users.last_name AS author_last_name, users.email AS author_email, "+
			"questions.title AS question_title").
		Joins("JOIN users ON users.user_id = answers.author_id").
		Joins("JOIN questions ON questions.question_id = answers.question_id").
		Order("answers.created_at DESC").
		Limit(10).
		Scan(&stats.RecentAnswers).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch dashboard stats")
	}

	if err := db.Table("surveys").
		Select("surveys.survey_id, surveys.title, surveys.created_at, "+
			"users.name AS author_name, users.last_name AS author_last_name, "+
			"(SELECT COUNT(*) FROM questions WHERE questions.survey_id = surveys.survey_id) AS questions_count").
		Joins("JOIN users ON users.user_id = surveys.author_id").
		Order("surveys.created_at DESC").
		Limit(5).
		Scan(&stats.RecentSurveys).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch dashboard stats")
	}

	return stats, nil
}

// DeleteUserCascade menghapus user beserta seluruh jejaknya: jawaban &
// video miliknya, lalu seluruh isi survey yang dia buat, baru usernya.
func DeleteUserCascade(db *gorm.DB, userID int) error {
	var user userModel.UserModel
	if err := db.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete user")
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		// jejak user sebagai responder
		if err := tx.Exec("DELETE FROM answers WHERE author_id = ?", userID).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM survey_videos WHERE uploader_id = ?", userID).Error; err != nil {
			return err
		}

		// isi survey milik user (jawaban & video orang lain ikut terhapus)
		var surveyIDs []int
		if err := tx.Table("surveys").Where("author_id = ?", userID).Pluck("survey_id", &surveyIDs).Error; err != nil {
			return err
		}
		if len(surveyIDs) > 0 {
			if err := tx.Exec("DELETE FROM answers WHERE survey_id IN ?", surveyIDs).Error; err != nil {
				return err
			}
			if err := tx.Exec("DELETE FROM survey_videos WHERE survey_id IN ?", surveyIDs).Error; err != nil {
				return err
			}
			if err := tx.Exec("DELETE FROM questions WHERE survey_id IN ?", surveyIDs).Error; err != nil {
				return err
			}
			if err := tx.Exec("DELETE FROM surveys WHERE survey_id IN ?", surveyIDs).Error; err != nil {
				return err
			}
		}

		return tx.Exec("DELETE FROM users WHERE user_id = ?", userID).Error
	})
	if err != nil {
		log.Println("[ERROR] delete user cascade:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete user")
	}
	return nil
}

// DeleteSurveyCascade menghapus survey + pertanyaan, jawaban, dan video-nya.
func DeleteSurveyCascade(db *gorm.DB, surveyID int) error {
	var n int64
	if err := db.Table("surveys").Where("survey_id = ?", surveyID).Count(&n).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete survey")
	}
	if n == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Survey not found")
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM answers WHERE survey_id = ?", surveyID).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM questions WHERE survey_id = ?", surveyID).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM survey_videos WHERE survey_id = ?", surveyID).Error; err != nil {
			return err
		}
		return tx.Exec("DELETE FROM surveys WHERE survey_id = ?", surveyID).Error
	})
	if err != nil {
		log.Println("[ERROR] delete survey cascade:", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete survey")
	}
	return nil
}
