package model

import (
	"time"

	questionModel "surveyku_backend/internals/features/surveys/question/model"
)

// SurveyModel merepresentasikan tabel surveys. Satu survey dimiliki satu
// asker dan punya banyak questions (insert nested lewat relasi ini).
type SurveyModel struct {
	SurveyID    int       `gorm:"column:survey_id;primaryKey;autoIncrement" json:"survey_id"`
	Title       string    `gorm:"column:title;size:255;not null" json:"title"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	AuthorID    int       `gorm:"column:author_id;not null;index" json:"authorId"`

	Questions []questionModel.QuestionModel `gorm:"foreignKey:SurveyID;references:SurveyID" json:"questions,omitempty"`
}

func (SurveyModel) TableName() string {
	return "surveys"
}
