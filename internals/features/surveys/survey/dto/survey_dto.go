package dto

import (
	"strings"
	"time"

	questionModel "surveyku_backend/internals/features/surveys/question/model"
	surveyModel "surveyku_backend/internals/features/surveys/survey/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateSurveyQuestion struct {
	Title    string `json:"title" validate:"required,min=3,max=255"`
	Category string `json:"category" validate:"required,max=50"`
}

// CreateSurveyRequest — POST /api/surveys/add-survey
// Survey + seluruh pertanyaan masuk dalam satu write relasional.
type CreateSurveyRequest struct {
	Title       string                 `json:"title" validate:"required,min=3,max=255"`
	Description string                 `json:"description" validate:"max=2000"`
	Questions   []CreateSurveyQuestion `json:"questions" validate:"required,min=1,dive"`
}

func (r *CreateSurveyRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	for i := range r.Questions {
		r.Questions[i].Title = strings.TrimSpace(r.Questions[i].Title)
		r.Questions[i].Category = strings.TrimSpace(r.Questions[i].Category)
	}
}

// ToModel — konversi ke model; author pertanyaan = author survey.
func (r *CreateSurveyRequest) ToModel(authorID int) *surveyModel.SurveyModel {
	m := &surveyModel.SurveyModel{
		Title:       r.Title,
		Description: r.Description,
		AuthorID:    authorID,
	}
	for _, q := range r.Questions {
		m.Questions = append(m.Questions, questionModel.QuestionModel{
			Title:    q.Title,
			Category: q.Category,
			AuthorID: authorID,
		})
	}
	return m
}

// UpdateSurveyRequest — PATCH partial (pointer biar bisa bedakan omit vs kosong)
type UpdateSurveyRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=3,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

// SurveyListItem — baris listing survey + author + jumlah pertanyaan.
type SurveyListItem struct {
	SurveyID       int       `json:"survey_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
	AuthorID       int       `json:"authorId"`
	AuthorName     string    `json:"author_name"`
	AuthorLastName string    `json:"author_last_name"`
	AuthorEmail    string    `json:"author_email"`
	QuestionsCount int64     `json:"questions_count"`
}

// ResponderSummary — satu responder unik di GET /:id/responders.
type ResponderSummary struct {
	UserID       int       `json:"user_id"`
	Name         string    `json:"name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	ResponseDate time.Time `json:"response_date"`
	AnswersCount int       `json:"answers_count"`
}
