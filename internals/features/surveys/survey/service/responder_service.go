// internals/features/surveys/survey/service/responder_service.go
package service

import (
	"errors"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	surveyDTO "surveyku_backend/internals/features/surveys/survey/dto"
	surveyModel "surveyku_backend/internals/features/surveys/survey/model"
	userDTO "surveyku_backend/internals/features/users/user/dto"
)

// AnswerStamp adalah potongan baris answer yang dibutuhkan agregasi:
// siapa yang menjawab dan kapan.
type AnswerStamp struct {
	AuthorID  int       `gorm:"column:author_id"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

// GetSurveyResponders mengembalikan daftar responder unik sebuah survey:
// max(created_at) sebagai response_date + jumlah jawaban per responder.
func GetSurveyResponders(db *gorm.DB, surveyID int) ([]surveyDTO.ResponderSummary, error) {
	var survey surveyModel.SurveyModel
	if err := db.First(&survey, "survey_id = ?", surveyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Survey not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch survey")
	}

	var questionIDs []int
	if err := db.Table("questions").Where("survey_id = ?", surveyID).
		Pluck("question_id", &questionIDs).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch questions")
	}
	if len(questionIDs) == 0 {
		return []surveyDTO.ResponderSummary{}, nil
	}

	var stamps []AnswerStamp
	if err := db.Table("answers").
		Select("author_id, created_at").
		Where("question_id IN ?", questionIDs).
		Scan(&stamps).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch answers")
	}
	if len(stamps) == 0 {
		return []surveyDTO.ResponderSummary{}, nil
	}

	authorIDs := make([]int, 0, len(stamps))
	seen := map[int]struct{}{}
	for _, s := range stamps {
		if _, ok := seen[s.AuthorID]; !ok {
			seen[s.AuthorID] = struct{}{}
			authorIDs = append(authorIDs, s.AuthorID)
		}
	}

	var users []userDTO.UserSummary
	if err := db.Table("users").
		Select("user_id, name, last_name, email, role").
		Where("user_id IN ?", authorIDs).
		Scan(&users).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch responders")
	}

	return BuildResponderSummaries(users, stamps), nil
}

// BuildResponderSummaries menggabungkan baris user dengan stempel jawaban
// menjadi ringkasan per responder, diurutkan dari yang paling baru merespon.
func BuildResponderSummaries(users []userDTO.UserSummary, stamps []AnswerStamp) []surveyDTO.ResponderSummary {
	type agg struct {
		latest time.Time
		count  int
	}
	byAuthor := make(map[int]*agg, len(users))
	for _, s := range stamps {
		a, ok := byAuthor[s.AuthorID]
		if !ok {
			a = &agg{}
			byAuthor[s.AuthorID] = a
		}
		a.count++
		if s.CreatedAt.After(a.latest) {
			a.latest = s.CreatedAt
		}
	}

	out := make([]surveyDTO.ResponderSummary, 0, len(users))
	for _, u := range users {
		a, ok := byAuthor[u.UserID]
		if !ok {
			continue
		}
		out = append(out, surveyDTO.ResponderSummary{
			UserID:       u.UserID,
			Name:         u.Name,
			LastName:     u.LastName,
			Email:        u.Email,
			Role:         u.Role,
			ResponseDate: a.latest,
			AnswersCount: a.count,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ResponseDate.After(out[j].ResponseDate)
	})
	return out
}
