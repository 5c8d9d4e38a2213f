package model

import (
	"time"
)

// AnswerModel merepresentasikan tabel answers.
// Unique index (question_id, author_id, survey_id) menjamin maksimal satu
// jawaban per pertanyaan per responder — upsert menimpa teks lama, bukan
// menambah baris (dua submit paralel identik tidak bisa duplikat).
type AnswerModel struct {
	AnswerID   int       `gorm:"column:answer_id;primaryKey;autoIncrement" json:"answer_id"`
	Text       string    `gorm:"column:text;type:text;not null" json:"text"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	AuthorID   int       `gorm:"column:author_id;not null;uniqueIndex:uq_answers_question_author_survey,priority:2" json:"authorId"`
	SurveyID   int       `gorm:"column:survey_id;not null;uniqueIndex:uq_answers_question_author_survey,priority:3" json:"surveyId"`
	QuestionID int       `gorm:"column:question_id;not null;uniqueIndex:uq_answers_question_author_survey,priority:1" json:"questionId"`
}

func (AnswerModel) TableName() string {
	return "answers"
}
