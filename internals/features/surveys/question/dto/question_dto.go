package dto

import (
	"strings"
	"time"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateQuestionRequest — POST /api/questions
type CreateQuestionRequest struct {
	Title    string `json:"title" validate:"required,min=3,max=255"`
	Category string `json:"category" validate:"required,max=50"`
	SurveyID int    `json:"surveyId" validate:"required,gt=0"`
}

func (r *CreateQuestionRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Category = strings.TrimSpace(r.Category)
}

// UpdateQuestionRequest — PATCH partial
type UpdateQuestionRequest struct {
	Title    *string `json:"title,omitempty" validate:"omitempty,min=3,max=255"`
	Category *string `json:"category,omitempty" validate:"omitempty,max=50"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

// QuestionDetail — GET /api/questions/:id, pertanyaan + author + survey-nya.
type QuestionDetail struct {
	QuestionID     int       `json:"question_id"`
	Title          string    `json:"title"`
	Category       string    `json:"category"`
	SurveyID       int       `json:"surveyId"`
	AuthorID       int       `json:"authorId"`
	AuthorName     string    `json:"author_name"`
	AuthorLastName string    `json:"author_last_name"`
	SurveyTitle    string    `json:"survey_title"`
	SurveyCreated  time.Time `json:"survey_created_at"`
}
