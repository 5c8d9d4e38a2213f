package dto

import (
	"time"

	answerModel "surveyku_backend/internals/features/surveys/answer/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// AnswerInput — satu elemen array `answers` di POST /api/answers/submit.
// Seluruh elemen harus menunjuk ke survey yang sama.
type AnswerInput struct {
	Text       string `json:"text"`
	SurveyID   int    `json:"surveyId"`
	QuestionID int    `json:"questionId"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

// SubmitAnswersResponse — body 200 dari submit.
// VideoAdded false berarti video dilewati (sudah ada / upload gagal),
// bukan error: jawaban teks tetap tersimpan.
type SubmitAnswersResponse struct {
	Message    string                    `json:"message"`
	Answers    []answerModel.AnswerModel `json:"answers"`
	VideoAdded bool                      `json:"videoAdded"`
}

// AnswerWithAuthor — baris jawaban + nama penjawab untuk listing.
type AnswerWithAuthor struct {
	AnswerID       int       `json:"answer_id"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"created_at"`
	AuthorID       int       `json:"authorId"`
	SurveyID       int       `json:"surveyId"`
	QuestionID     int       `json:"questionId"`
	AuthorName     string    `json:"author_name"`
	AuthorLastName string    `json:"author_last_name"`
}
