package model

// QuestionModel merepresentasikan tabel questions.
type QuestionModel struct {
	QuestionID int    `gorm:"column:question_id;primaryKey;autoIncrement" json:"question_id"`
	Title      string `gorm:"column:title;size:255;not null" json:"title"`
	Category   string `gorm:"column:category;size:50;not null" json:"category"`
	SurveyID   int    `gorm:"column:survey_id;not null;index" json:"surveyId"`
	AuthorID   int    `gorm:"column:author_id;not null;index" json:"authorId"`
}

func (QuestionModel) TableName() string {
	return "questions"
}
